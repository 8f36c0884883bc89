package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTexts(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "a b c", []string{"a", "b", "c"}},
		{"collapsed whitespace", "  a \t b  ", []string{"a", "b"}},
		{"single quotes kept", "a 'b c' d", []string{"a", "'b c'", "d"}},
		{"double quotes kept", `a "b c"`, []string{"a", `"b c"`}},
		{"other quote literal inside", `"it's"`, []string{`"it's"`}},
		{"escaped space joins", `a\ b`, []string{`a\ b`}},
		{"escaped semicolon", `a\;b`, []string{`a\;b`}},
		{"escaped quote", `a\'b`, []string{`a\'b`}},
		{"separators", "a;b", []string{"a", ";", "b"}},
		{"spaced separators", "a ; b", []string{"a", ";", "b"}},
		{"consecutive separators", "a;;;b", []string{"a", ";", ";", ";", "b"}},
		{"semicolon in quotes", "'a;b'", []string{"'a;b'"}},
		{"brace group", "{a b}", []string{"{a b}"}},
		{"brace keeps separators", "{a;b>c}", []string{"{a;b>c}"}},
		{"nested braces", "{a{b}c}", []string{"{a{b}c}"}},
		{"brace in quotes unclosed ok", "'{'", []string{"'{'"}},
		{"quote closes over inner brace", `"{a"`, []string{`"{a"`}},
		{"redirect", "a > b", []string{"a", ">", "b"}},
		{"redirect append", "a >> b", []string{"a", ">>", "b"}},
		{"redirect with stream", "a 2> b", []string{"a", "2>", "b"}},
		{"redirect stream append", "2>>log", []string{"2>>", "log"}},
		{"redirect hugging word", "a>b", []string{"a", ">", "b"}},
		{"word ending in digits", "a2>b", []string{"a2", ">", "b"}},
		{"triple gt splits", "a>>>b", []string{"a", ">>", ">b"}},
		{"escaped gt", `a \> b`, []string{"a", `\>`, "b"}},
		{"gt in quotes", `">"`, []string{`">"`}},
		{"empty line", "", nil},
		{"only whitespace", "   ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tokenTexts(tokens))
		})
	}
}

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize("a ; b 2> c")
	require.NoError(t, err)

	kinds := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		TokenWord, TokenSeparator, TokenWord, TokenRedirect, TokenWord,
	}, kinds)
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"trailing backslash", `a\`, ErrTrailingBackslash},
		{"unterminated single", "'a", ErrUnterminatedQuote},
		{"unterminated double", `"a`, ErrUnterminatedQuote},
		{"unbalanced brace", "{a", ErrUnbalancedBraces},
		{"stray close brace", "a}", ErrMismatchedBrace},
		{"outer brace closed in quote", `{a"}"`, ErrMismatchedBrace},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.line)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, tokens, "no partial token list on error")
		})
	}
}
