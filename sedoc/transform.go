package sedoc

// An ExpandFunc rewrites a macro tag. It receives the attributes and
// the original, unexpanded children of the node being rewritten and
// returns a replacement tree, which may itself contain further macro
// tags.
type ExpandFunc func(attrs []Attribute, children []Node) (Node, error)

// DefaultMaxDepth bounds how many nested expansions a single node may
// trigger before the transform fails. It converts a cyclic expansion
// mapping into a reported error instead of stack exhaustion.
const DefaultMaxDepth = 64

// A Transformer rewrites every macro tag in a tree using its expansion
// mapping, until only terminal tags remain. The mapping is fixed for
// the lifetime of the Transformer and is never mutated by a pass.
type Transformer struct {
	expansions map[string]ExpandFunc
	maxDepth   int
}

// NewTransformer creates a Transformer with the given expansion
// mapping and the default expansion depth limit.
func NewTransformer(expansions map[string]ExpandFunc) *Transformer {
	return &Transformer{
		expansions: expansions,
		maxDepth:   DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the expansion depth limit.
func (t *Transformer) SetMaxDepth(depth int) {
	t.maxDepth = depth
}

// Transform rewrites the tree until every tag is terminal:
//
//   - text leaves pass through unchanged,
//   - terminal elements are rebuilt with the same tag and attributes
//     and recursively transformed children,
//   - macro elements are looked up in the expansion mapping; a missing
//     entry fails with *UnknownTagError, otherwise the expansion runs
//     on the original children and its result is transformed again.
//
// The last step is expansion to fixpoint, not single substitution: a
// document-level macro may expand into head and body macros that expand
// further. The input tree is never modified.
func (t *Transformer) Transform(n Node) (Node, error) {
	return t.transform(n, 0)
}

func (t *Transformer) transform(n Node, depth int) (Node, error) {

	switch n := n.(type) {

	case *Text:
		return n, nil

	case *Inner:

		if IsTerminal(n.Tag) {
			var children []Node
			if len(n.Children) > 0 {
				children = make([]Node, len(n.Children))
				for i, child := range n.Children {
					transformed, err := t.transform(child, depth)
					if err != nil {
						return nil, err
					}
					children[i] = transformed
				}
			}
			return &Inner{Tag: n.Tag, Attr: n.Attr, Children: children}, nil
		}

		if depth >= t.maxDepth {
			return nil, &ExpansionDepthError{Tag: n.Tag, Depth: t.maxDepth}
		}

		expand, ok := t.expansions[n.Tag]
		if !ok {
			return nil, &UnknownTagError{Tag: n.Tag}
		}

		expanded, err := expand(n.Attr, n.Children)
		if err != nil {
			return nil, err
		}

		return t.transform(expanded, depth+1)

	}

	// A Node implementation outside this package
	panic("unreachable: unknown node variant")
}

// Transform rewrites every macro tag in the tree with the supplied
// expansion mapping, using the default depth limit. See
// Transformer.Transform.
func Transform(n Node, expansions map[string]ExpandFunc) (Node, error) {
	return NewTransformer(expansions).Transform(n)
}
