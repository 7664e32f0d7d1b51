package adapters

import (
	"bytes"
	"strconv"
	"strings"

	"autosar-arxml/internal/types"
)

const xmlIndent = "  "

type xmlAttr struct {
	name  string
	value string
}

// xmlWriter emits indented XML, two spaces per level.
type xmlWriter struct {
	buf   bytes.Buffer
	depth int
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func (w *xmlWriter) declaration() {
	w.buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	w.buf.WriteByte('\n')
}

func (w *xmlWriter) startLine() {
	for i := 0; i < w.depth; i++ {
		w.buf.WriteString(xmlIndent)
	}
}

func (w *xmlWriter) tag(name string, attrs []xmlAttr) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, attr := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(attr.name)
		w.buf.WriteString(`="`)
		w.buf.WriteString(attrEscaper.Replace(attr.value))
		w.buf.WriteByte('"')
	}
}

func (w *xmlWriter) begin(name string, attrs ...xmlAttr) {
	w.startLine()
	w.tag(name, attrs)
	w.buf.WriteString(">\n")
	w.depth++
}

func (w *xmlWriter) end(name string) {
	w.depth--
	w.startLine()
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">\n")
}

// empty writes a self-closing tag.
func (w *xmlWriter) empty(name string, attrs ...xmlAttr) {
	w.startLine()
	w.tag(name, attrs)
	w.buf.WriteString("/>\n")
}

func (w *xmlWriter) leaf(name string, text string, attrs ...xmlAttr) {
	w.startLine()
	w.tag(name, attrs)
	w.buf.WriteByte('>')
	w.buf.WriteString(textEscaper.Replace(text))
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteString(">\n")
}

// Optional scalar helpers: unset values write nothing.

func (w *xmlWriter) text(name string, value string) {
	if value != "" {
		w.leaf(name, value)
	}
}

func (w *xmlWriter) intPtr(name string, value *int) {
	if value != nil {
		w.leaf(name, strconv.Itoa(*value))
	}
}

func (w *xmlWriter) floatPtr(name string, value *float64) {
	if value != nil {
		w.leaf(name, types.FormatFloat(*value))
	}
}

func (w *xmlWriter) boolPtr(name string, value *bool) {
	if value != nil {
		w.leaf(name, strconv.FormatBool(*value))
	}
}

func (w *xmlWriter) number(name string, value types.Number) {
	if !value.IsZero() {
		w.leaf(name, value.String())
	}
}

func (w *xmlWriter) ref(name string, ref types.Reference) {
	if ref == nil || ref.IsZero() {
		return
	}
	w.leaf(name, ref.Value(), xmlAttr{name: "DEST", value: string(ref.Dest())})
}

func (w *xmlWriter) output() []byte {
	return w.buf.Bytes()
}
