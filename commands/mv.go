package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Mv moves files and directory trees. With an existing directory
// destination, sources move into it under their own names.
func Mv(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) < 2 {
		fmt.Fprintln(s.Stderr(), "mv: missing operand")
		return interp.ExitFailure
	}

	sources := args.Args[:len(args.Args)-1]
	destArg := args.Args[len(args.Args)-1]
	dest := s.Resolve(destArg)
	destIsDir := isDirectory(s, dest)

	if len(sources) > 1 && !destIsDir {
		fmt.Fprintf(s.Stderr(), "mv: target %q is not a directory\n", destArg)
		return interp.ExitFailure
	}

	code := interp.ExitSuccess
	for _, srcArg := range sources {
		src := s.Resolve(srcArg)
		target := dest
		if destIsDir {
			target = dest.Join(src.Name())
		}

		if err := s.FS.Move(src, target); err != nil {
			fmt.Fprintf(s.Stderr(), "mv: %v\n", err)
			code = interp.ExitFailure
		}
	}
	return code
}

var _ interp.CommandFunc = Mv

func init() {
	register("mv", Mv)
}
