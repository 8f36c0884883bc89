package shell

import (
	"strings"
	"unicode"

	"github.com/vshell/vsh/core/environ"
)

// Glob markers. Unescaped wildcard characters are rewritten to these
// private-use runes so the glob stage can tell shell-significant
// wildcards from user-typed literals after all other expansion has run.
const (
	markQuestion = '\uE000'
	markStar     = '\uE001'
)

// escapable is the set of shell-meaningful characters a backslash strips
// down to a literal outside of quotes. Whitespace belongs to the set too.
const escapable = `\;~$>?*'"{}`

func isEscapable(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(escapable, r)
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// ContainsGlob reports whether expanded text carries glob markers.
func ContainsGlob(s string) bool {
	return strings.ContainsRune(s, markQuestion) || strings.ContainsRune(s, markStar)
}

// Unmark renders marked text back to its user-visible form, for error
// messages and round trips.
func Unmark(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case markQuestion:
			return '?'
		case markStar:
			return '*'
		default:
			return r
		}
	}, s)
}

// Expand resolves one raw token to its literal text: backslash escapes,
// quote and brace spans, $variable substitution against env, and home
// substitution for a leading unquoted "~". Wildcards that survive
// unquoted and unescaped come back as glob markers; resolving those
// against the filesystem is the glob stage's job.
func Expand(token string, env environ.Env) (string, error) {
	runes := []rune(token)
	var out []rune

	i := 0
	// Home substitution applies only to a lone "~" or a leading "~/",
	// and only when the "~" is neither quoted, grouped nor escaped.
	if len(runes) > 0 && runes[0] == '~' && (len(runes) == 1 || runes[1] == '/') {
		out = append(out, []rune(env.UserHomeDir())...)
		i = 1
	}

	var quote rune
	braceDepth := 0

	// readVar consumes a $name reference starting at i and appends its
	// value. A bare "$" with no name characters is an error.
	readVar := func() error {
		j := i + 1
		for j < len(runes) && isNameRune(runes[j]) {
			j++
		}
		if j == i+1 {
			return ErrBareDollar
		}
		out = append(out, []rune(env.Getenv(string(runes[i+1:j])))...)
		i = j - 1
		return nil
	}

	for ; i < len(runes); i++ {
		c := runes[i]

		switch {
		case c == '\\':
			if i+1 >= len(runes) {
				// The tokenizer rejects trailing backslashes; tolerate one
				// here for direct callers.
				out = append(out, c)
				continue
			}
			next := runes[i+1]
			switch {
			case quote != 0:
				// In quotes the backslash is literal except before the
				// closing quote character.
				if next == quote {
					out = append(out, next)
					i++
				} else {
					out = append(out, c)
				}
			case isEscapable(next):
				out = append(out, next)
				i++
			default:
				// Only shell-meaningful characters need escaping; keep
				// both characters otherwise.
				out = append(out, c, next)
				i++
			}

		case quote == '\'':
			if c == '\'' {
				quote = 0
			} else {
				out = append(out, c)
			}

		case quote == '"':
			switch c {
			case '"':
				quote = 0
			case '$':
				if err := readVar(); err != nil {
					return "", err
				}
			default:
				out = append(out, c)
			}

		case braceDepth > 0:
			// Brace groups substitute variables like double quotes but
			// keep nested quotes and braces literal.
			switch c {
			case '{':
				braceDepth++
				out = append(out, c)
			case '}':
				braceDepth--
				if braceDepth > 0 {
					out = append(out, c)
				}
			case '$':
				if err := readVar(); err != nil {
					return "", err
				}
			default:
				out = append(out, c)
			}

		default:
			switch c {
			case '\'', '"':
				quote = c
			case '{':
				braceDepth = 1
			case '$':
				if err := readVar(); err != nil {
					return "", err
				}
			case '?':
				out = append(out, markQuestion)
			case '*':
				out = append(out, markStar)
			default:
				out = append(out, c)
			}
		}
	}

	return string(out), nil
}
