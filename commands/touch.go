package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
)

// Touch creates empty files. Existing files are left as they are, since
// there are no timestamps to refresh.
func Touch(s *interp.Session, args *shell.InputArgs) int {
	if len(args.Args) == 0 {
		fmt.Fprintln(s.Stderr(), "touch: missing operand")
		return interp.ExitFailure
	}

	code := interp.ExitSuccess
	for _, arg := range args.Args {
		target := s.Resolve(arg)
		if s.FS.Has(target) {
			continue
		}
		if err := s.FS.Add(target, vfs.NewFile(""), false); err != nil {
			fmt.Fprintf(s.Stderr(), "touch: cannot touch %q: %v\n", arg, err)
			code = interp.ExitFailure
		}
	}
	return code
}

var _ interp.CommandFunc = Touch

func init() {
	register("touch", Touch)
}
