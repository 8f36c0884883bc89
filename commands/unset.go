package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Unset removes variables from the environment.
func Unset(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		fmt.Fprintln(s.Stderr(), "unset: missing operand")
		return interp.ExitFailure
	}

	for _, name := range args.Args {
		if err := s.Env.Unsetenv(name); err != nil {
			fmt.Fprintf(s.Stderr(), "unset: %v\n", err)
			return interp.ExitFailure
		}
	}
	return interp.ExitSuccess
}

var _ interp.CommandFunc = Unset

func init() {
	register("unset", Unset)
}
