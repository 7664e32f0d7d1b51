package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// xmlNode is one element of a parsed document. Tags and attribute lookups
// use local names.
type xmlNode struct {
	tag      string
	attrs    []xml.Attr
	text     string
	line     int
	parent   *xmlNode
	children []*xmlNode
	// leaf is set once the node has been read as text.
	leaf bool
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, attr := range n.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// value is the trimmed character data of a leaf element. Use it for
// names, numbers, enums and references.
func (n *xmlNode) value() string {
	n.leaf = true
	return strings.TrimSpace(n.text)
}

// rawValue is the character data of a leaf element as written. Free text
// keeps its surrounding whitespace.
func (n *xmlNode) rawValue() string {
	n.leaf = true
	return n.text
}

func (n *xmlNode) child(tag string) *xmlNode {
	for _, child := range n.children {
		if child.tag == tag {
			return child
		}
	}
	return nil
}

func parseXMLTree(data []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var root *xmlNode
	var current *xmlNode
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := dec.InputPos()
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("malformed XML near line " + strconv.Itoa(line)).
				WithCause(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			node := &xmlNode{tag: t.Name.Local, attrs: t.Attr, line: line, parent: current}
			if current == nil {
				if root != nil {
					return nil, errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg("XML document has more than one root element")
				}
				root = node
			} else {
				if len(current.children) == 0 {
					current.text = text.String()
				}
				current.children = append(current.children, node)
			}
			current = node
			text.Reset()
		case xml.EndElement:
			if current == nil {
				continue
			}
			if len(current.children) == 0 {
				current.text = text.String()
			}
			text.Reset()
			current = current.parent
		case xml.CharData:
			if current != nil {
				text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("XML document has no root element")
	}
	return root, nil
}
