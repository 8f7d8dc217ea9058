package sedoc

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/hesusruiz/vcutils/yaml"
)

// highlightMacro builds the highlight expansion with the chroma style
// taken from the configuration (key "sedoc.codeStyle").
func highlightMacro(config *yaml.YAML) ExpandFunc {
	styleName := "github"
	if config != nil {
		styleName = config.String("sedoc.codeStyle", styleName)
	}
	return func(attrs []Attribute, children []Node) (Node, error) {
		return expandHighlight(styleName, attrs, children)
	}
}

// expandHighlight rewrites a highlight macro into a div wrapping a pre
// with the chroma-highlighted HTML of its listing text. The language is
// taken from the "lang" attribute; without one, chroma analyses the
// content and falls back to plain text.
func expandHighlight(styleName string, attrs []Attribute, children []Node) (Node, error) {

	if len(children) != 1 {
		return nil, &MalformedListingError{Children: len(children)}
	}
	text, ok := children[0].(*Text)
	if !ok {
		return nil, &MalformedListingError{Children: len(children)}
	}

	// Determine lexer.
	lang, _ := firstValue(attrs, "lang")
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Analyse(text.Value)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	s := styles.Get(styleName)

	f := hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))

	it, err := l.Tokenise(nil, text.Value)
	if err != nil {
		return nil, fmt.Errorf("tokenising listing: %w", err)
	}

	rb := &bytes.Buffer{}
	if err := f.Format(rb, s, it); err != nil {
		return nil, fmt.Errorf("formatting listing: %w", err)
	}

	pre := Elem("pre",
		[]Attribute{{Key: "class", Val: "nohighlight precolor"}},
		Txt(rb.String()),
	)

	return Elem("div", []Attribute{{Key: "class", Val: "codecolor"}}, pre), nil
}
