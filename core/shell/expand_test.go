package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vshell/vsh/core/environ"
)

func testEnv() environ.Env {
	return environ.NewMapEnvOf(map[string]string{
		"a":    "b",
		"name": "world",
		"HOME": "/home/user",
	})
}

func TestExpand(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  string
	}{
		{"plain", "abc", "abc"},
		{"single quotes stripped", "'b c'", "b c"},
		{"double quotes stripped", `"b c"`, "b c"},
		{"escaped dollar", `\$`, "$"},
		{"escaped backslash", `\\`, `\`},
		{"escaped space", `a\ b`, "a b"},
		{"escaped semicolon", `\;`, ";"},
		{"escaped tilde", `\~`, "~"},
		{"escaped quote", `\'`, "'"},
		{"escaped braces", `\{\}`, "{}"},
		{"backslash before plain char kept", `a\xb`, `a\xb`},
		{"variable", "$a", "b"},
		{"variable run", "$name!", "world!"},
		{"unset variable empty", "$missing", ""},
		{"variable in double quotes", `"x$a"`, "xb"},
		{"no variable in single quotes", "'$a'", "$a"},
		{"adjacent variables", "$a$a", "bb"},
		{"home alone", "~", "/home/user"},
		{"home prefix", "~/notes", "/home/user/notes"},
		{"tilde mid-token literal", "a~", "a~"},
		{"tilde without slash literal", "~x", "~x"},
		{"quoted tilde literal", "'~'", "~"},
		{"brace group joins", "{a b}", "a b"},
		{"brace group variable", "{$a}", "b"},
		{"brace keeps quotes", "{'a'}", "'a'"},
		{"brace keeps inner braces", "{{x}}", "{x}"},
		{"dquote backslash literal", `"a\b"`, `a\b`},
		{"dquote escaped quote", `"a\""`, `a"`},
		{"squote escaped quote", `'a\'b'`, "a'b"},
		{"squote backslash literal", `'a\b'`, `a\b`},
		{"quoted wildcard literal", "'*'", "*"},
		{"brace wildcard literal", "{*}", "*"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Expand(tc.token, testEnv())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.False(t, ContainsGlob(got))
		})
	}
}

func TestExpandMarksWildcards(t *testing.T) {
	cases := []struct {
		token  string
		unmark string
	}{
		{"a?", "a?"},
		{"*", "*"},
		{"a*/b?", "a*/b?"},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := Expand(tc.token, testEnv())
			require.NoError(t, err)
			assert.True(t, ContainsGlob(got))
			assert.Equal(t, tc.unmark, Unmark(got))
		})
	}
}

func TestExpandEscapedWildcardIsLiteral(t *testing.T) {
	got, err := Expand(`a\*`, testEnv())
	require.NoError(t, err)
	assert.Equal(t, "a*", got)
	assert.False(t, ContainsGlob(got))
}

func TestExpandVariableValueIsLiteral(t *testing.T) {
	env := environ.NewMapEnvOf(map[string]string{"g": "*"})

	// Wildcards arriving through substitution are data, not patterns.
	got, err := Expand("$g", env)
	require.NoError(t, err)
	assert.Equal(t, "*", got)
	assert.False(t, ContainsGlob(got))
}

func TestExpandBareDollar(t *testing.T) {
	for _, token := range []string{"$", `"$"`, "{$}"} {
		t.Run(token, func(t *testing.T) {
			_, err := Expand(token, testEnv())
			assert.ErrorIs(t, err, ErrBareDollar)
		})
	}
}
