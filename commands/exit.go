package commands

import (
	"fmt"
	"strconv"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Exit marks the session as finished, with an optional exit code.
func Exit(s *interp.Session, args *shell.InputArgs) int {
	s.Exited = true

	if len(args.Args) == 0 {
		return interp.ExitSuccess
	}
	code, err := strconv.Atoi(args.Args[0])
	if err != nil {
		fmt.Fprintf(s.Stderr(), "exit: %q: numeric argument required\n", args.Args[0])
		return interp.ExitSyntax
	}
	return code
}

var _ interp.CommandFunc = Exit

func init() {
	register("exit", Exit)
}
