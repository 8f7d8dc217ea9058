package sedoc

import (
	"reflect"
	"testing"
)

func TestTokenNode(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want Node
	}{
		{
			name: "line break",
			tok:  Token{Type: LineBreakToken},
			want: &Inner{Tag: "br"},
		},
		{
			name: "left delimiter",
			tok:  Token{Type: LeftDelimToken},
			want: &Inner{
				Tag:      "span",
				Attr:     []Attribute{{Key: "class", Val: "delim"}},
				Children: []Node{&Text{Value: "("}},
			},
		},
		{
			name: "right delimiter",
			tok:  Token{Type: RightDelimToken},
			want: &Inner{
				Tag:      "span",
				Attr:     []Attribute{{Key: "class", Val: "delim"}},
				Children: []Node{&Text{Value: ")"}},
			},
		},
		{
			name: "symbol",
			tok:  Token{Type: SymbolToken, Text: "lambda"},
			want: &Inner{
				Tag:      "span",
				Attr:     []Attribute{{Key: "class", Val: "symbol"}},
				Children: []Node{&Text{Value: "lambda"}},
			},
		},
		{
			name: "number",
			tok:  Token{Type: NumberToken, Text: "42"},
			want: &Inner{
				Tag:      "span",
				Attr:     []Attribute{{Key: "class", Val: "number"}},
				Children: []Node{&Text{Value: "42"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenNode(tt.tok)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenNode(%v) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenNodeWhitespaceRun(t *testing.T) {
	// A run of n spaces must yield a span with exactly n
	// non-breaking-space text children.
	for _, n := range []int{1, 2, 3, 7, 40} {
		got := TokenNode(Token{Type: WhitespaceToken, Count: n})

		span, ok := got.(*Inner)
		if !ok || span.Tag != "span" {
			t.Fatalf("TokenNode(whitespace %d) = %v, want a span", n, got)
		}
		if class, _ := span.AttrValue("class"); class != "whitespace" {
			t.Errorf("whitespace span class = %q, want %q", class, "whitespace")
		}
		if len(span.Children) != n {
			t.Fatalf("whitespace span has %d children, want %d", len(span.Children), n)
		}
		for i, child := range span.Children {
			text, ok := child.(*Text)
			if !ok || text.Value != "&nbsp;" {
				t.Errorf("whitespace child %d = %v, want &nbsp; text", i, child)
			}
		}
	}
}

func TestTokensToNodesRendering(t *testing.T) {
	tokens, err := Tokenize("(+ 1 2)")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}

	br := &ByteRenderer{}
	for _, n := range TokensToNodes(tokens) {
		RenderTo(n, br)
	}

	want := `<span class="delim">(</span>` +
		`<span class="symbol">+</span>` +
		`<span class="whitespace">&nbsp;</span>` +
		`<span class="number">1</span>` +
		`<span class="whitespace">&nbsp;</span>` +
		`<span class="number">2</span>` +
		`<span class="delim">)</span>`

	if got := br.String(); got != want {
		t.Errorf("rendered tokens = %q, want %q", got, want)
	}
}
