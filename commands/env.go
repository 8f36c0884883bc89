package commands

import (
	"fmt"
	"strings"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Env prints the environment, or sets variables from NAME=VALUE arguments.
func Env(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		for _, entry := range s.Env.Environ() {
			fmt.Fprintln(s.Stdout(), entry)
		}
		return interp.ExitSuccess
	}

	for _, arg := range args.Args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			fmt.Fprintf(s.Stderr(), "env: invalid assignment %q\n", arg)
			return interp.ExitFailure
		}
		if err := s.Env.Setenv(name, value); err != nil {
			fmt.Fprintf(s.Stderr(), "env: %v\n", err)
			return interp.ExitFailure
		}
	}
	return interp.ExitSuccess
}

var _ interp.CommandFunc = Env

func init() {
	register("env", Env)
}
