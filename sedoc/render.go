package sedoc

import (
	"bytes"
	"fmt"
)

// A ByteRenderer accumulates the rendered output. The Render methods
// accept strings, byte slices, runes and integers and append their
// textual form to the buffer.
type ByteRenderer struct {
	bytes.Buffer
}

func (r *ByteRenderer) Render(inputs ...any) {
	for _, s := range inputs {
		switch v := s.(type) {
		case string:
			r.WriteString(v)
		case []byte:
			r.Write(v)
		case byte:
			r.WriteByte(v)
		case rune:
			r.WriteRune(v)
		case int:
			fmt.Fprintf(r, "%d", v)
		default:
			panic(fmt.Errorf("attempting to render an object of type %T", v))
		}
	}
}

func (r *ByteRenderer) Renderln(inputs ...any) {
	r.Render(inputs...)
	r.Render("\n")
}

func (r *ByteRenderer) CloneBytes() []byte {
	return bytes.Clone(r.Bytes())
}

// Render serializes a fully terminal tree to HTML markup.
//
// The tree must contain only terminal tags; that is the postcondition
// of Transform, and Render performs no additional validation. Text
// values are written verbatim, without escaping. Attributes are emitted
// in declared order, duplicates included. Self-closing elements render
// as <tag attrs /> and their children are ignored entirely.
func Render(n Node) []byte {
	br := &ByteRenderer{}
	renderNode(n, br)
	return br.CloneBytes()
}

// RenderTo is like Render but appends to an existing ByteRenderer.
func RenderTo(n Node, br *ByteRenderer) {
	renderNode(n, br)
}

func renderNode(n Node, br *ByteRenderer) {

	switch n := n.(type) {

	case *Text:
		br.Render(n.Value)

	case *Inner:
		br.Render("<", n.Tag)
		for _, a := range n.Attr {
			br.Render(" ", a.Key, `="`, a.Val, `"`)
		}

		if IsSelfClosing(n.Tag) {
			br.Render(" />")
			return
		}

		br.Render(">")

		// We visit depth-first the children of the node
		for _, child := range n.Children {
			renderNode(child, br)
		}

		br.Render("</", n.Tag, ">")

	}

}
