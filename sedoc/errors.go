package sedoc

import "fmt"

// All errors in this package are fatal: there is no recovery, no retry
// and no partial output. Each one carries enough context to diagnose
// the offending input without re-running with extra instrumentation.

// InvalidFormError is returned by ParseTree when a literal does not
// match the expected (tag attribute-list children...) or text shape.
type InvalidFormError struct {
	Value any
}

func (e *InvalidFormError) Error() string {
	return fmt.Sprintf("invalid form: %#v", e.Value)
}

// UnknownTagError is returned by a Transformer when it finds a
// non-terminal tag with no registered expansion function.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag: %q", e.Tag)
}

// ExpansionDepthError is returned when macro expansion does not reach
// terminal tags within the configured depth limit. Mutually recursive
// expansion mappings are a programming error; the limit converts them
// into a reported failure instead of stack exhaustion.
type ExpansionDepthError struct {
	Tag   string
	Depth int
}

func (e *ExpansionDepthError) Error() string {
	return fmt.Sprintf("expansion of tag %q exceeded depth limit %d", e.Tag, e.Depth)
}

// MalformedListingError is returned by the code-listing macro when its
// children are anything other than exactly one text node.
type MalformedListingError struct {
	Children int
}

func (e *MalformedListingError) Error() string {
	return fmt.Sprintf("code listing must contain exactly one text node, got %d children", e.Children)
}

// InvalidCharacterError is returned by Tokenize when it encounters a
// character outside all recognized classes. Pos is the byte offset in
// the input.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}
