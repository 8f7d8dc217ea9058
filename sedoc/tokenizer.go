package sedoc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans raw code text into a sequence of lexical tokens, left
// to right with longest-match rules. It is a pure function: equal
// inputs always produce equal token sequences.
//
// An unrecognized character fails the whole scan with an
// *InvalidCharacterError; no token is skipped silently and no partial
// sequence is returned.
func Tokenize(text string) ([]Token, error) {

	var tokens []Token

	for pos := 0; pos < len(text); {

		r, size := utf8.DecodeRuneInString(text[pos:])

		switch {

		case r == '(':
			tokens = append(tokens, Token{Type: LeftDelimToken, Pos: pos})
			pos += size

		case r == ')':
			tokens = append(tokens, Token{Type: RightDelimToken, Pos: pos})
			pos += size

		case r == '\n':
			tokens = append(tokens, Token{Type: LineBreakToken, Pos: pos})
			pos += size

		case r == ' ':
			// Only the space character counts as whitespace here;
			// tabs and other whitespace are not recognized.
			end := pos
			for end < len(text) && text[end] == ' ' {
				end++
			}
			tokens = append(tokens, Token{Type: WhitespaceToken, Count: end - pos, Pos: pos})
			pos = end

		case isSymbolStart(r):
			end := pos + size
			for end < len(text) {
				r, size := utf8.DecodeRuneInString(text[end:])
				if !isSymbolStart(r) && !isDigit(r) {
					break
				}
				end += size
			}
			tokens = append(tokens, Token{Type: SymbolToken, Text: text[pos:end], Pos: pos})
			pos = end

		case isDigit(r):
			end := pos
			for end < len(text) && isDigit(rune(text[end])) {
				end++
			}
			tokens = append(tokens, Token{Type: NumberToken, Text: text[pos:end], Pos: pos})
			pos = end

		default:
			return nil, &InvalidCharacterError{Char: r, Pos: pos}

		}

	}

	return tokens, nil
}

const symbolPunctuation = "!$%^&*-_=+:<>/?"

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(symbolPunctuation, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
