package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
)

// Rm removes files, and directories when -r is given. Missing operands
// are reported; missing files are an error unless -f is given.
func Rm(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		fmt.Fprintln(s.Stderr(), "rm: missing operand")
		return interp.ExitFailure
	}
	recursive := args.HasOption("r", "R", "recursive")
	force := args.HasOption("f", "force")

	code := interp.ExitSuccess
	for _, arg := range args.Args {
		target := s.Resolve(arg)

		node, ok := s.FS.Get(target)
		if !ok {
			if !force {
				fmt.Fprintf(s.Stderr(), "rm: cannot remove %q: no such file or directory\n", arg)
				code = interp.ExitFailure
			}
			continue
		}

		if _, isDir := node.(*vfs.Directory); isDir {
			if !recursive {
				fmt.Fprintf(s.Stderr(), "rm: cannot remove %q: is a directory\n", arg)
				code = interp.ExitFailure
				continue
			}
			if target.IsRoot() {
				fmt.Fprintln(s.Stderr(), "rm: refusing to remove the root directory")
				code = interp.ExitFailure
				continue
			}
		}

		s.FS.Remove(target)
	}
	return code
}

var _ interp.CommandFunc = Rm

func init() {
	register("rm", Rm)
}
