// Package sedoc converts an s-expression document markup into HTML.
//
// A document is an immutable tree of nodes. Custom ("macro") tags are
// rewritten by a Transformer into terminal HTML tags, and the resulting
// terminal tree is serialized by Render. Embedded code listings are
// tokenized and converted into highlighted spans along the way.
package sedoc

import (
	"strconv"
	"strings"
)

// A Node is either an *Inner element or a *Text leaf.
// Trees are built once and never mutated in place: transformation and
// rendering both produce new values.
type Node interface {
	node()
}

// Inner is an element node: a tag, an ordered attribute list and an
// ordered list of children.
type Inner struct {
	Tag      string
	Attr     []Attribute
	Children []Node
}

func (*Inner) node() {}

// Text is a leaf carrying raw text. The value is rendered verbatim,
// without escaping; callers escape before constructing the node if they
// need to.
type Text struct {
	Value string
}

func (*Text) node() {}

// An Attribute is a key-value pair. Attributes keep their insertion
// order, and duplicate keys are allowed: all of them are rendered, and
// the first occurrence wins on lookup.
type Attribute struct {
	Key string
	Val string
}

// Ident marks a value in a tree literal as an identifier rather than a
// string. Identifiers are converted to their textual name when parsed,
// so `Ident("utf-8")` and `"utf-8"` produce the same attribute value.
type Ident string

// AttrValue returns the value of the first attribute with the given key.
func (n *Inner) AttrValue(key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Elem builds an element node. It is a convenience for expansion
// functions that assemble trees by hand.
func Elem(tag string, attrs []Attribute, children ...Node) *Inner {
	return &Inner{Tag: tag, Attr: attrs, Children: children}
}

// Txt builds a text leaf.
func Txt(value string) *Text {
	return &Text{Value: value}
}

// String returns a compact representation of the node for logs and
// error messages. It is not the rendered form.
func (n *Inner) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	sb.WriteString("> (")
	sb.WriteString(strconv.Itoa(len(n.Children)))
	sb.WriteString(" children)")
	return sb.String()
}

func (n *Text) String() string {
	return strconv.Quote(n.Value)
}
