package commands

import (
	"fmt"
	"strings"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Echo writes its arguments to standard output. The -n option suppresses
// the trailing newline.
func Echo(s *interp.Session, args *shell.InputArgs) int {
	line := strings.Join(args.Args, " ")
	if args.HasOption("n") {
		fmt.Fprint(s.Stdout(), line)
	} else {
		fmt.Fprintln(s.Stdout(), line)
	}
	return interp.ExitSuccess
}

var _ interp.CommandFunc = Echo

func init() {
	register("echo", Echo)
}
