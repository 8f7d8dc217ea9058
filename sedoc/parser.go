package sedoc

// ParseTree converts a nested-list literal into a document tree.
//
// The literal is either a plain string, producing a *Text leaf, or a
// []any of the shape
//
//	[]any{tag, attrList, child1, child2, ...}
//
// where tag is a string (or Ident), attrList is a []any of two-element
// []any{name, value} pairs, and each child is again a valid literal.
// Attribute names and values may be strings or Idents; identifiers are
// normalized to their textual name.
//
// Any literal not matching one of these shapes fails with an
// *InvalidFormError carrying the offending value, and no partial tree
// is produced.
func ParseTree(v any) (Node, error) {

	switch v := v.(type) {

	case string:
		return &Text{Value: v}, nil

	case Ident:
		return &Text{Value: string(v)}, nil

	case []any:
		return parseInner(v)

	}

	return nil, &InvalidFormError{Value: v}
}

func parseInner(form []any) (Node, error) {

	// The shortest valid element form is (tag attribute-list)
	if len(form) < 2 {
		return nil, &InvalidFormError{Value: form}
	}

	tag, ok := name(form[0])
	if !ok {
		return nil, &InvalidFormError{Value: form[0]}
	}

	attrs, err := parseAttrList(form[1])
	if err != nil {
		return nil, err
	}

	node := &Inner{Tag: tag, Attr: attrs}

	for _, childForm := range form[2:] {
		child, err := ParseTree(childForm)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

func parseAttrList(v any) ([]Attribute, error) {

	list, ok := v.([]any)
	if !ok {
		return nil, &InvalidFormError{Value: v}
	}

	var attrs []Attribute
	for _, pairForm := range list {

		pair, ok := pairForm.([]any)
		if !ok || len(pair) != 2 {
			return nil, &InvalidFormError{Value: pairForm}
		}

		key, ok := name(pair[0])
		if !ok {
			return nil, &InvalidFormError{Value: pair[0]}
		}
		val, ok := name(pair[1])
		if !ok {
			return nil, &InvalidFormError{Value: pair[1]}
		}

		attrs = append(attrs, Attribute{Key: key, Val: val})
	}

	return attrs, nil
}

// name accepts the two literal spellings of an identifier-or-string
// position and returns its textual value.
func name(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case Ident:
		return string(v), true
	}
	return "", false
}
