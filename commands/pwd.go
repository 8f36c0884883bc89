package commands

import (
	"fmt"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
)

// Pwd prints the working directory.
func Pwd(s *interp.Session, args *shell.InputArgs) int {
	fmt.Fprintln(s.Stdout(), s.Getwd().Display())
	return interp.ExitSuccess
}

var _ interp.CommandFunc = Pwd

func init() {
	register("pwd", Pwd)
}
