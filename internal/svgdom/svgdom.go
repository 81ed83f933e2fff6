// Package svgdom provides a minimal mutable element tree for SVG
// fragments: token-based parsing, in-place mutation, and serialization
// that preserves attribute and child order.
//
// The tree is deliberately small. It resolves the default SVG and
// xlink namespaces back to their conventional prefixes and otherwise
// treats names as opaque strings; the compositing engine only needs
// tag names, ordered attributes, and child manipulation.
package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Namespace URIs folded back to conventional prefixes on output.
const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
	xmlNS   = "http://www.w3.org/XML/1998/namespace"
)

// ErrNoRootElement is returned when the input has no element at all.
var ErrNoRootElement = errors.New("svgdom: no root element")

// Attr is a single attribute. Order within an element is preserved.
type Attr struct {
	Key   string
	Value string
}

// Node is one node in the tree: *Element, Text, or Comment.
type Node interface {
	node()
}

// Element is a named element with ordered attributes and children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Element) node() {}

// Text is a character-data node, stored verbatim.
type Text struct {
	Data string
}

func (Text) node() {}

// Comment is an XML comment node.
type Comment struct {
	Data string
}

func (Comment) node() {}

// Parse parses an SVG fragment and returns its root element.
// Leading processing instructions and comments outside the root are
// discarded.
func Parse(s string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrNoRootElement
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseElement(dec, start)
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{Name: localName(start.Name)}
	for _, a := range start.Attr {
		el.Attrs = append(el.Attrs, Attr{Key: attrName(a.Name), Value: a.Value})
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			return el, nil
		case xml.CharData:
			el.Children = append(el.Children, Text{Data: string(t)})
		case xml.Comment:
			el.Children = append(el.Children, Comment{Data: string(t)})
		}
	}
}

// localName maps a resolved element name back to its serialized form.
func localName(n xml.Name) string {
	return n.Local
}

// attrName maps a resolved attribute name back to its serialized form.
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	case xlinkNS:
		return "xlink:" + n.Local
	case xmlNS:
		return "xml:" + n.Local
	default:
		return n.Local
	}
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// HasAttr returns true if the attribute is present, even when empty.
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.Attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, keeping its position if already present.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// DelAttr removes an attribute if present.
func (e *Element) DelAttr(key string) {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// Elements returns the child elements, skipping text and comments.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, n := range e.Children {
		if c, ok := n.(*Element); ok {
			out = append(out, c)
		}
	}
	return out
}

// AppendChild adds a node at the end of the child list.
func (e *Element) AppendChild(n Node) {
	e.Children = append(e.Children, n)
}

// PrependChild adds a node at the start of the child list.
func (e *Element) PrependChild(n Node) {
	e.Children = append([]Node{n}, e.Children...)
}

// ReplaceChild replaces old with the given nodes, keeping its
// position. It returns false if old is not a direct child.
func (e *Element) ReplaceChild(old Node, repl ...Node) bool {
	for i, n := range e.Children {
		if n == old {
			rest := make([]Node, 0, len(e.Children)-1+len(repl))
			rest = append(rest, e.Children[:i]...)
			rest = append(rest, repl...)
			rest = append(rest, e.Children[i+1:]...)
			e.Children = rest
			return true
		}
	}
	return false
}

// RemoveChild removes a direct child. It returns false if absent.
func (e *Element) RemoveChild(n Node) bool {
	return e.ReplaceChild(n)
}

// WrapChild replaces a direct child with wrapper and moves the child
// inside it. It returns false if the child is not found.
func (e *Element) WrapChild(child Node, wrapper *Element) bool {
	if !e.ReplaceChild(child, wrapper) {
		return false
	}
	wrapper.Children = append(wrapper.Children, child)
	return true
}

// String serializes the element.
func (e *Element) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

// InnerXML serializes the element's children without the outer tags.
func (e *Element) InnerXML() string {
	var b strings.Builder
	for _, n := range e.Children {
		writeNode(&b, n)
	}
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, n := range e.Children {
		writeNode(b, n)
	}
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}

func writeNode(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Element:
		t.writeTo(b)
	case Text:
		b.WriteString(escapeText(t.Data))
	case Comment:
		b.WriteString("<!--")
		b.WriteString(t.Data)
		b.WriteString("-->")
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
func escapeText(s string) string { return textEscaper.Replace(s) }
