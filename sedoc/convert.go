package sedoc

// TokenNode maps a single token to its highlighted tree fragment. It is
// total over all token types:
//
//   - a line break becomes a self-closing <br /> element,
//   - a whitespace run of n spaces becomes a "whitespace" span holding
//     n non-breaking-space text leaves,
//   - delimiters, symbols and numbers become spans classed "delim",
//     "symbol" and "number" wrapping their source text.
func TokenNode(tok Token) Node {

	switch tok.Type {

	case LineBreakToken:
		return &Inner{Tag: "br"}

	case WhitespaceToken:
		children := make([]Node, tok.Count)
		for i := range children {
			children[i] = &Text{Value: "&nbsp;"}
		}
		return span("whitespace", children...)

	case LeftDelimToken:
		return span("delim", &Text{Value: "("})

	case RightDelimToken:
		return span("delim", &Text{Value: ")"})

	case SymbolToken:
		return span("symbol", &Text{Value: tok.Text})

	case NumberToken:
		return span("number", &Text{Value: tok.Text})

	}

	panic("unreachable: unknown token type " + tok.Type.String())
}

// TokensToNodes converts a token sequence element-wise, preserving
// order. The result is the children list of a highlighted code element.
func TokensToNodes(tokens []Token) []Node {
	nodes := make([]Node, len(tokens))
	for i, tok := range tokens {
		nodes[i] = TokenNode(tok)
	}
	return nodes
}

func span(class string, children ...Node) *Inner {
	return &Inner{
		Tag:      "span",
		Attr:     []Attribute{{Key: "class", Val: class}},
		Children: children,
	}
}
