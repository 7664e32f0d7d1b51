package types

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func invalidArgument(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf(format, args...))
}

func alreadyExists(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf(format, args...))
}

func failedPrecondition(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf(format, args...))
}

// UnsupportedCategoryError reports a category value with no modeled layout.
func UnsupportedCategoryError(owner string, category string) error {
	return failedPrecondition("unsupported category %q in %s", category, owner)
}

// ParseError locates a reader failure inside an ARXML file.
type ParseError struct {
	File   string
	Line   int
	Tag    string
	Parent string
	// Path is the absolute path of the nearest identifiable ancestor.
	Path string
	Msg  string
	// Err is the underlying failure, when there is one.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
	} else if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Tag != "" {
		fmt.Fprintf(&b, " (tag <%s>", e.Tag)
		if e.Parent != "" {
			fmt.Fprintf(&b, " under <%s>", e.Parent)
		}
		b.WriteString(")")
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " near %s", e.Path)
	}
	return b.String()
}

func notFound(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf(format, args...))
}

func (e *ParseError) Unwrap() error { return e.Err }
