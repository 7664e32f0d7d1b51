package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autosar-arxml/internal/types"
)

// Value builder tags. A []any literal starting with one of these builds
// the matching composite value from the remaining items.
const (
	ValueArray  = "ARRAY"
	ValueRecord = "RECORD"
)

// Labeled attaches a SHORT-LABEL to a value literal.
type Labeled struct {
	Label string
	Value any
}

// BuildValue turns a nested literal into a value specification:
//
//	BuildValue([]any{"RECORD", Labeled{"Speed", 1.5}, []any{"ARRAY", 1, 2}})
//
// Numbers become NUMERICAL-VALUE-SPECIFICATION, strings become
// TEXT-VALUE-SPECIFICATION and booleans become 1 or 0. Value
// specifications pass through unchanged.
func BuildValue(literal any) (types.ValueSpecification, error) {
	return buildValue(literal, "")
}

func buildValue(literal any, label string) (types.ValueSpecification, error) {
	switch v := literal.(type) {
	case Labeled:
		if label != "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("value is labeled twice: %q and %q", label, v.Label))
		}
		return buildValue(v.Value, v.Label)
	case types.ValueSpecification:
		if label != "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("cannot label an existing value specification with %q", label))
		}
		return v, nil
	case []any:
		return buildComposite(v, label)
	case string:
		return &types.TextValue{Label: label, Value: v}, nil
	case bool:
		if v {
			return &types.NumericalValue{Label: label, Value: types.Int(1)}, nil
		}
		return &types.NumericalValue{Label: label, Value: types.Int(0)}, nil
	case types.Number:
		return &types.NumericalValue{Label: label, Value: v}, nil
	case int:
		return numerical(label, types.Int(int64(v))), nil
	case int8:
		return numerical(label, types.Int(int64(v))), nil
	case int16:
		return numerical(label, types.Int(int64(v))), nil
	case int32:
		return numerical(label, types.Int(int64(v))), nil
	case int64:
		return numerical(label, types.Int(v)), nil
	case uint8:
		return numerical(label, types.Int(int64(v))), nil
	case uint16:
		return numerical(label, types.Int(int64(v))), nil
	case uint32:
		return numerical(label, types.Int(int64(v))), nil
	case uint:
		return unsigned(label, uint64(v))
	case uint64:
		return unsigned(label, v)
	case float32:
		// Widen through the shortest decimal form so 0.1 stays 0.1.
		widened, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
		return numerical(label, types.Float(widened)), nil
	case float64:
		return numerical(label, types.Float(v)), nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("cannot build a value specification from %T", literal))
	}
}

func numerical(label string, value types.Number) types.ValueSpecification {
	return &types.NumericalValue{Label: label, Value: value}
}

func unsigned(label string, v uint64) (types.ValueSpecification, error) {
	if v > math.MaxInt64 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsigned value %d overflows a 64-bit integer", v))
	}
	return numerical(label, types.Int(int64(v))), nil
}

func buildComposite(items []any, label string) (types.ValueSpecification, error) {
	if len(items) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("composite value literal is empty, expected ARRAY or RECORD first")
	}
	tag, _ := items[0].(string)
	if tag != ValueArray && tag != ValueRecord {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("composite value literal must start with ARRAY or RECORD, got %v", items[0]))
	}
	children := make([]types.ValueSpecification, 0, len(items)-1)
	for i, item := range items[1:] {
		child, err := buildValue(item, "")
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s item %d", tag, i)).
				WithCause(err)
		}
		children = append(children, child)
	}
	if tag == ValueArray {
		return &types.ArrayValue{Label: label, Elements: children}, nil
	}
	return &types.RecordValue{Label: label, Fields: children}, nil
}
