package types

import (
	"math"
	"strconv"
	"strings"
)

type NumberKind uint8

const (
	NumberNone NumberKind = iota
	NumberInt
	NumberFloat
	// NumberText keeps hex, binary and symbolic values (INF, NaN) verbatim.
	NumberText
)

// Number is a numeric-or-pattern scalar. The zero value is unset.
type Number struct {
	Kind  NumberKind
	Int   int64
	Float float64
	Text  string
}

func Int(v int64) Number     { return Number{Kind: NumberInt, Int: v} }
func Float(v float64) Number { return Number{Kind: NumberFloat, Float: v} }
func NumberPattern(text string) Number {
	return Number{Kind: NumberText, Text: text}
}

func (n Number) IsZero() bool { return n.Kind == NumberNone }

// ParseNumber reads XML text. Decimal integers become NumberInt, decimal
// reals NumberFloat; 0x/0b/0 prefixed and symbolic values stay as text.
func ParseNumber(text string) (Number, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Number{}, invalidArgument("empty numerical value")
	}
	if isPatternNumber(text) {
		return NumberPattern(text), nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(v), nil
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return Float(v), nil
	}
	return Number{}, invalidArgument("invalid numerical value %q", text)
}

func isPatternNumber(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	switch strings.ToUpper(unsigned) {
	case "INF", "NAN":
		return true
	}
	lower := strings.ToLower(unsigned)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") {
		return len(lower) > 2
	}
	// Octal literals like 0777 are kept as written.
	if len(unsigned) > 1 && unsigned[0] == '0' && !strings.ContainsAny(unsigned, ".eE") {
		return true
	}
	return false
}

// String renders the canonical XML text.
func (n Number) String() string {
	switch n.Kind {
	case NumberInt:
		return strconv.FormatInt(n.Int, 10)
	case NumberFloat:
		return FormatFloat(n.Float)
	case NumberText:
		return n.Text
	default:
		return ""
	}
}

// FormatFloat renders the shortest round-trip decimal form. Integral
// values keep a trailing ".0" so they read back as floats.
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	text := strconv.FormatFloat(v, format, -1, 64)
	if format == 'f' && !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// ParseFloatText reads a float field. Integral text is accepted.
func ParseFloatText(text string) (float64, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalidArgument("invalid float value %q", text)
	}
	return v, nil
}

func ParseIntText(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, invalidArgument("invalid integer value %q", text)
	}
	return v, nil
}

func ParseBoolText(text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, invalidArgument("invalid boolean value %q", text)
	}
}
