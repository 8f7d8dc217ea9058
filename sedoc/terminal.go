package sedoc

// terminalElements is the fixed set of tags the renderer can emit
// directly. Any other tag must be rewritten by an expansion function
// before rendering.
var terminalElements = []string{
	"html", "head", "title", "meta", "link", "style", "body",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"p", "ul", "ol", "li", "a", "code", "em", "cite", "pre",
	"br", "hr", "img", "span", "div", "section", "figure", "figcaption",
}

// voidElements never render their children, even when the children list
// is non-empty.
var voidElements = []string{
	"br", "hr", "img", "link", "meta",
}

func contains(set []string, tagName string) bool {
	for _, el := range set {
		if tagName == el {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the tag is directly renderable.
func IsTerminal(tagName string) bool {
	return contains(terminalElements, tagName)
}

// IsSelfClosing returns true if the tag is in the set of 'void' tags.
func IsSelfClosing(tagName string) bool {
	return contains(voidElements, tagName)
}
