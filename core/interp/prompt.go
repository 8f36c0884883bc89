package interp

import (
	"strings"

	"github.com/vshell/vsh/core/environ"
	"github.com/vshell/vsh/core/vpath"
)

// DefaultPrompt is used when the prompt variable is unset.
const DefaultPrompt = `\u@\h:\w\$ `

// Prompt renders the prompt template from the environment. Recognized
// escapes are \u (user), \h (hostname), \w (working directory with the
// home directory collapsed to ~), \$ and \\.
func (s *Session) Prompt() string {
	ps1 := s.Env.Getenv(environ.KeyPrompt)
	if ps1 == "" {
		ps1 = DefaultPrompt
	}

	var out strings.Builder
	runes := []rune(ps1)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			out.WriteRune(runes[i])
			continue
		}

		i++
		switch runes[i] {
		case 'u':
			out.WriteString(s.Env.Getenv(environ.KeyUser))
		case 'h':
			out.WriteString(s.Env.Getenv(environ.KeyHostname))
		case 'w':
			out.WriteString(s.promptDir())
		case '$':
			out.WriteString("$")
		case '\\':
			out.WriteString(`\`)
		default:
			out.WriteRune('\\')
			out.WriteRune(runes[i])
		}
	}
	return out.String()
}

func (s *Session) promptDir() string {
	rendered := s.cwd.Display()

	home := s.Env.UserHomeDir()
	if home == "" {
		return rendered
	}

	hp := vpath.New(home)
	switch {
	case s.cwd.Equal(hp):
		return "~"
	case hp.IsAncestorOf(s.cwd):
		return "~" + strings.TrimPrefix(rendered, hp.Display())
	default:
		return rendered
	}
}
