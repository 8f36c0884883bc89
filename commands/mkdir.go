package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
)

// Mkdir creates directories. The -p option creates missing parents and
// tolerates directories that already exist.
func Mkdir(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		fmt.Fprintln(s.Stderr(), "mkdir: missing operand")
		return interp.ExitFailure
	}
	makeParents := args.HasOption("p", "parents")

	code := interp.ExitSuccess
	for _, arg := range args.Args {
		target := s.Resolve(arg).AsDir()
		if makeParents && s.FS.Has(target) {
			continue
		}
		if err := s.FS.Add(target, vfs.NewDirectory(), makeParents); err != nil {
			fmt.Fprintf(s.Stderr(), "mkdir: cannot create directory %q: %v\n", arg, err)
			code = interp.ExitFailure
		}
	}
	return code
}

var _ interp.CommandFunc = Mkdir

func init() {
	register("mkdir", Mkdir)
}
