package sedoc

import "testing"

func TestAttrValueFirstWins(t *testing.T) {
	n := Elem("div", []Attribute{
		{Key: "class", Val: "first"},
		{Key: "id", Val: "d1"},
		{Key: "class", Val: "second"},
	})

	got, ok := n.AttrValue("class")
	if !ok || got != "first" {
		t.Errorf("AttrValue(class) = %q, %v; want %q, true", got, ok, "first")
	}

	if _, ok := n.AttrValue("missing"); ok {
		t.Errorf("AttrValue(missing) = true, want false")
	}
}

func TestInnerString(t *testing.T) {
	n := Elem("section", []Attribute{{Key: "id", Val: "s1"}}, Txt("a"), Txt("b"))

	want := `<section id="s1"> (2 children)`
	if got := n.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
