// Package shell implements the input-parsing pipeline: tokenizer,
// escape/quote expander, glob resolver and command-line assembler. The
// stages are explicit and independently testable; only the glob stage
// consults the filesystem.
package shell

import (
	"strings"
	"unicode"
)

// TokenKind distinguishes structural tokens from ordinary words so an
// expanded word that merely looks like an operator is never re-read as
// one.
type TokenKind int

const (
	// TokenWord is ordinary token text, quote and brace delimiters still
	// attached; the expander strips them later.
	TokenWord TokenKind = iota
	// TokenSeparator is a top-level ";".
	TokenSeparator
	// TokenRedirect is a fused redirect operator such as ">", ">>" or
	// "2>>".
	TokenRedirect
)

// Token is one unit of raw input text.
type Token struct {
	Kind TokenKind
	Text string
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// nearestQuote returns the innermost open quote, 0 when none.
func nearestQuote(stack []rune) rune {
	for i := len(stack) - 1; i >= 0; i-- {
		if isQuote(stack[i]) {
			return stack[i]
		}
	}
	return 0
}

// braceBelowQuote reports whether an open brace sits beneath the
// innermost quote, i.e. it was opened outside the quote.
func braceBelowQuote(stack []rune) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		if isQuote(stack[i]) {
			return false
		}
		if stack[i] == '{' {
			return true
		}
	}
	return false
}

// Tokenize splits a raw input line into words, separators and redirect
// operators. Quote and brace delimiters are retained verbatim; escape
// pairs are carried through whole. Tokenizing errors abort the entire
// line: no partial token list is returned.
func Tokenize(line string) ([]Token, error) {
	var tokens []Token
	var cur strings.Builder

	// Open grouping delimiters, innermost last. Quotes and braces both
	// live here: quotes group inside braces and braces are tracked inside
	// quotes for the balance rules.
	var stack []rune

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenWord, Text: cur.String()})
			cur.Reset()
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		quote := nearestQuote(stack)

		switch {
		case c == '\\':
			if quote != 0 {
				// Inside quotes a backslash only escapes the quote that
				// would otherwise close the span.
				cur.WriteRune(c)
				if i+1 < len(runes) && runes[i+1] == quote {
					cur.WriteRune(runes[i+1])
					i++
				}
				continue
			}
			if i+1 >= len(runes) {
				return nil, ErrTrailingBackslash
			}
			cur.WriteRune(c)
			cur.WriteRune(runes[i+1])
			i++

		case isQuote(c):
			cur.WriteRune(c)
			switch {
			case quote == c:
				// Close the span. Braces opened inside it are forgiven.
				for len(stack) > 0 {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					if top == c {
						break
					}
				}
			case quote != 0:
				// The other quote kind is literal inside a span.
			default:
				stack = append(stack, c)
			}

		case c == '{':
			cur.WriteRune(c)
			stack = append(stack, c)

		case c == '}':
			switch {
			case len(stack) > 0 && stack[len(stack)-1] == '{':
				cur.WriteRune(c)
				stack = stack[:len(stack)-1]
			case quote != 0 && braceBelowQuote(stack):
				return nil, ErrMismatchedBrace
			case quote != 0:
				cur.WriteRune(c)
			default:
				return nil, ErrMismatchedBrace
			}

		case len(stack) > 0:
			// Grouped: whitespace, separators and redirects are literal.
			cur.WriteRune(c)

		case unicode.IsSpace(c):
			flush()

		case c == ';':
			flush()
			tokens = append(tokens, Token{Kind: TokenSeparator, Text: ";"})

		case c == '>':
			// Fuse an immediately preceding all-digit token as the stream
			// identifier.
			prefix := ""
			if cur.Len() > 0 && isAllDigits(cur.String()) {
				prefix = cur.String()
				cur.Reset()
			} else {
				flush()
			}

			run := 1
			for i+run < len(runes) && runes[i+run] == '>' {
				run++
			}
			op := ">"
			if run > 1 {
				op = ">>"
			}
			tokens = append(tokens, Token{Kind: TokenRedirect, Text: prefix + op})

			// Greedy two-then-remainder: extra symbols start the next
			// token as literal text.
			if run > 2 {
				cur.WriteString(strings.Repeat(">", run-2))
			}
			i += run - 1

		default:
			cur.WriteRune(c)
		}
	}

	if quote := nearestQuote(stack); quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if len(stack) > 0 {
		return nil, ErrUnbalancedBraces
	}

	flush()
	return tokens, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
