package sedoc

import (
	"github.com/hesusruiz/vcutils/yaml"
)

// StdMacros returns the standard expansion mapping: the document and
// section macros, the s-expression code-listing macro, the chroma-based
// highlight macro and the D2 diagram macro.
//
// config may be nil, in which case all configurable values fall back to
// their defaults.
func StdMacros(config *yaml.YAML) map[string]ExpandFunc {
	return map[string]ExpandFunc{
		"doc":          ExpandDoc,
		"sect":         ExpandSection,
		"code-listing": ExpandCodeListing,
		"highlight":    highlightMacro(config),
		"diagram":      ExpandDiagram,
	}
}

// ExpandDoc rewrites a document macro into the html/head/body skeleton.
// The value of the "title" attribute becomes the page title, and the
// original children are moved unchanged into the body, where later
// transform passes expand them.
func ExpandDoc(attrs []Attribute, children []Node) (Node, error) {

	title, _ := firstValue(attrs, "title")

	head := Elem("head", nil,
		Elem("meta", []Attribute{{Key: "charset", Val: "utf-8"}}),
		Elem("title", nil, Txt(title)),
	)

	body := Elem("body", nil, children...)

	return Elem("html", nil, head, body), nil
}

// ExpandSection rewrites a sect macro into a terminal section element.
// The "ref" attribute becomes the element id, and each original child
// is wrapped individually in a paragraph. The macro tag is deliberately
// distinct from the section element it produces: the output must be
// terminal or expansion would never reach a fixpoint.
func ExpandSection(attrs []Attribute, children []Node) (Node, error) {

	section := &Inner{Tag: "section"}

	if ref, ok := firstValue(attrs, "ref"); ok {
		section.Attr = []Attribute{{Key: "id", Val: ref}}
	}

	for _, child := range children {
		section.Children = append(section.Children, Elem("p", nil, child))
	}

	return section, nil
}

// ExpandCodeListing rewrites a code-listing macro into a terminal code
// element whose children are the highlighted token spans of the listing
// text.
//
// The macro requires exactly one text child; any other shape fails with
// a *MalformedListingError. A scan failure of the listing text aborts
// the expansion with the tokenizer's error.
func ExpandCodeListing(attrs []Attribute, children []Node) (Node, error) {

	if len(children) != 1 {
		return nil, &MalformedListingError{Children: len(children)}
	}
	text, ok := children[0].(*Text)
	if !ok {
		return nil, &MalformedListingError{Children: len(children)}
	}

	tokens, err := Tokenize(text.Value)
	if err != nil {
		return nil, err
	}

	return &Inner{
		Tag:      "code",
		Attr:     []Attribute{{Key: "class", Val: "listing"}},
		Children: TokensToNodes(tokens),
	}, nil
}

// firstValue scans the ordered attribute list and returns the value of
// the first attribute with the given name. Duplicate names are allowed
// in a document; the first occurrence wins.
func firstValue(attrs []Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
