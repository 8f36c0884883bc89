package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// Cp copies files, and directory trees when -r is given. With an existing
// directory destination, sources copy into it under their own names.
func Cp(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) < 2 {
		fmt.Fprintln(s.Stderr(), "cp: missing operand")
		return interp.ExitFailure
	}
	recursive := args.HasOption("r", "R", "recursive")

	sources := args.Args[:len(args.Args)-1]
	destArg := args.Args[len(args.Args)-1]
	dest := s.Resolve(destArg)
	destIsDir := isDirectory(s, dest)

	if len(sources) > 1 && !destIsDir {
		fmt.Fprintf(s.Stderr(), "cp: target %q is not a directory\n", destArg)
		return interp.ExitFailure
	}

	code := interp.ExitSuccess
	for _, srcArg := range sources {
		src := s.Resolve(srcArg)
		target := dest
		if destIsDir {
			target = dest.Join(src.Name())
		}

		if err := s.FS.Copy(src, target, recursive); err != nil {
			fmt.Fprintf(s.Stderr(), "cp: %v\n", err)
			code = interp.ExitFailure
		}
	}
	return code
}

func isDirectory(s *interp.Session, p vpath.Path) bool {
	node, ok := s.FS.Get(p)
	if !ok {
		return false
	}
	_, isDir := node.(*vfs.Directory)
	return isDir
}

var _ interp.CommandFunc = Cp

func init() {
	register("cp", Cp)
}
