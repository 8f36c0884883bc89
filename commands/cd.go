package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vpath"
)

// Cd changes the working directory, defaulting to the home directory.
func Cd(s *interp.Session, args *shell.InputArgs) int {
	var target vpath.Path
	switch len(args.Args) {
	case 0:
		home := s.Env.UserHomeDir()
		if home == "" {
			fmt.Fprintln(s.Stderr(), "cd: no home directory set")
			return interp.ExitFailure
		}
		target = vpath.New(home)
	case 1:
		target = s.Resolve(args.Args[0])
	default:
		fmt.Fprintln(s.Stderr(), "cd: too many arguments")
		return interp.ExitFailure
	}

	if err := s.Chdir(target); err != nil {
		fmt.Fprintf(s.Stderr(), "cd: %v\n", err)
		return interp.ExitFailure
	}
	return interp.ExitSuccess
}

var _ interp.CommandFunc = Cd

func init() {
	register("cd", Cd)
}
