// Package commands holds the builtin commands the interpreter dispatches
// to. Each file registers one builtin through init.
package commands

import (
	"github.com/fatih/color"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// AllCommands holds every registered builtin keyed by name.
var AllCommands = make(map[string]interp.CommandFunc)

func register(name string, cmd interp.CommandFunc) {
	AllCommands[name] = cmd
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
	ColorBoldCyan = color.New(color.FgCyan, color.Bold)
)

// ColorPrinter decides whether listings are colorized, honoring a
// --color=always|auto|never option with auto meaning "when interactive".
type ColorPrinter struct {
	enabled bool
}

// Init reads the --color option off the invocation.
func (c *ColorPrinter) Init(s *interp.Session, args *shell.InputArgs) {
	mode, ok := args.Option("color")
	if !ok {
		mode = colorAuto
	}

	switch mode {
	case colorAlways:
		c.enabled = true
	case colorNever:
		c.enabled = false
	default:
		c.enabled = s.Interactive
	}
}

// Sprint renders text in the given color when enabled.
func (c *ColorPrinter) Sprint(col *color.Color, text string) string {
	if !c.enabled {
		return text
	}
	return col.Sprint(text)
}
