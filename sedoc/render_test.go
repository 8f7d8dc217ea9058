package sedoc

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "text is written verbatim without escaping",
			node: &Text{Value: `a < b && "c"`},
			want: `a < b && "c"`,
		},
		{
			name: "element with attributes and children",
			node: Elem("a",
				[]Attribute{{Key: "href", Val: "#intro"}, {Key: "class", Val: "xref"}},
				Txt("Introduction"),
			),
			want: `<a href="#intro" class="xref">Introduction</a>`,
		},
		{
			name: "duplicate attributes are all emitted in order",
			node: Elem("div",
				[]Attribute{{Key: "class", Val: "one"}, {Key: "class", Val: "two"}},
			),
			want: `<div class="one" class="two"></div>`,
		},
		{
			name: "empty element renders open and close tags",
			node: Elem("p", nil),
			want: "<p></p>",
		},
		{
			name: "self-closing element",
			node: Elem("br", nil),
			want: "<br />",
		},
		{
			name: "self-closing element with attributes",
			node: Elem("meta", []Attribute{{Key: "charset", Val: "utf-8"}}),
			want: `<meta charset="utf-8" />`,
		},
		{
			name: "nested tree renders depth-first",
			node: Elem("ul", nil,
				Elem("li", nil, Txt("one")),
				Elem("li", nil, Txt("two")),
			),
			want: "<ul><li>one</li><li>two</li></ul>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Render(tt.node)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSelfClosingIgnoresChildren(t *testing.T) {
	// Children of void elements are never rendered, whatever they are.
	for _, tag := range []string{"br", "hr", "meta", "link", "img"} {
		node := Elem(tag, nil, Txt("hidden"), Elem("p", nil, Txt("also hidden")))
		want := "<" + tag + " />"
		if got := string(Render(node)); got != want {
			t.Errorf("Render(%s with children) = %q, want %q", tag, got, want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, tag := range []string{"html", "body", "h3", "p", "span", "section", "br"} {
		if !IsTerminal(tag) {
			t.Errorf("IsTerminal(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"doc", "code-listing", "highlight", "x-note", ""} {
		if IsTerminal(tag) {
			t.Errorf("IsTerminal(%q) = true, want false", tag)
		}
	}
}
