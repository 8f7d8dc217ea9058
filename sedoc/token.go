package sedoc

import "strconv"

// A TokenType is the type of a Token.
type TokenType uint32

const (
	// LeftDelimToken is a single '(' character.
	LeftDelimToken TokenType = iota
	// RightDelimToken is a single ')' character.
	RightDelimToken
	// LineBreakToken is a single newline character.
	LineBreakToken
	// WhitespaceToken is a run of one or more space characters.
	WhitespaceToken
	// SymbolToken is an identifier.
	SymbolToken
	// NumberToken is a run of decimal digits.
	NumberToken
)

// String returns a string representation of the TokenType.
func (t TokenType) String() string {
	switch t {
	case LeftDelimToken:
		return "LeftDelim"
	case RightDelimToken:
		return "RightDelim"
	case LineBreakToken:
		return "LineBreak"
	case WhitespaceToken:
		return "Whitespace"
	case SymbolToken:
		return "Symbol"
	case NumberToken:
		return "Number"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// A Token is a classified lexical unit produced by Tokenize. Text
// carries the matched input for symbols and numbers, Count the run
// length for whitespace, and Pos the byte offset where the token
// starts. Tokens are immutable once produced.
type Token struct {
	Type  TokenType
	Text  string
	Count int
	Pos   int
}

// String returns a string representation of the Token.
func (t Token) String() string {
	switch t.Type {
	case LeftDelimToken:
		return "("
	case RightDelimToken:
		return ")"
	case LineBreakToken:
		return `\n`
	case WhitespaceToken:
		return "Whitespace(" + strconv.Itoa(t.Count) + ")"
	case SymbolToken:
		return "Symbol(" + t.Text + ")"
	case NumberToken:
		return "Number(" + t.Text + ")"
	}
	return "Invalid(" + strconv.Itoa(int(t.Type)) + ")"
}
