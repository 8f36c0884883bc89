package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
)

// Cat concatenates files to standard output.
func Cat(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		fmt.Fprintln(s.Stderr(), "cat: missing operand")
		return interp.ExitFailure
	}

	code := interp.ExitSuccess
	for _, arg := range args.Args {
		stream, err := s.FS.Open(s.Resolve(arg), vfs.ModeRead)
		if err != nil {
			fmt.Fprintf(s.Stderr(), "cat: %v\n", err)
			code = interp.ExitFailure
			continue
		}
		fmt.Fprint(s.Stdout(), stream.ReadAll())
	}
	return code
}

var _ interp.CommandFunc = Cat

func init() {
	register("cat", Cat)
}
