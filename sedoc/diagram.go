package sedoc

import (
	"context"
	"fmt"

	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"
)

// ExpandDiagram rewrites a diagram macro into a figure holding the SVG
// generated from its D2 source text. The SVG is embedded inline; no
// asset files are written. The "caption" attribute, when present,
// becomes the figcaption text.
func ExpandDiagram(attrs []Attribute, children []Node) (Node, error) {

	if len(children) != 1 {
		return nil, &MalformedListingError{Children: len(children)}
	}
	text, ok := children[0].(*Text)
	if !ok {
		return nil, &MalformedListingError{Children: len(children)}
	}

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, fmt.Errorf("creating text ruler: %w", err)
	}

	defaultLayout := func(ctx context.Context, g *d2graph.Graph) error {
		return d2dagrelayout.Layout(ctx, g, nil)
	}
	diagram, _, err := d2lib.Compile(context.Background(), text.Value, &d2lib.CompileOptions{
		Layout: defaultLayout,
		Ruler:  ruler,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling diagram: %w", err)
	}

	body, err := d2svg.Render(diagram, &d2svg.RenderOpts{
		Pad:     d2svg.DEFAULT_PADDING,
		ThemeID: d2themescatalog.NeutralDefault.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering diagram: %w", err)
	}

	figure := Elem("figure", nil, Txt(string(body)))

	if caption, ok := firstValue(attrs, "caption"); ok {
		figure.Children = append(figure.Children, Elem("figcaption", nil, Txt(caption)))
	}

	return figure, nil
}
