package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
)

// Ls lists directory contents. Entries starting with a dot are hidden
// unless -a is given; directories render with a trailing slash.
func Ls(s *interp.Session, args *shell.InputArgs) int {
	listAll := args.HasOption("a", "all")

	var printer ColorPrinter
	printer.Init(s, args)

	targets := args.Args
	if len(targets) == 0 {
		targets = []string{"."}
	}
	sort.Strings(targets)
	showNames := len(targets) > 1

	code := interp.ExitSuccess
	for ti, target := range targets {
		node, ok := s.FS.Get(s.Resolve(target))
		if !ok {
			fmt.Fprintf(s.Stderr(), "ls: cannot access %s: no such file or directory\n", target)
			code = interp.ExitFailure
			continue
		}

		dir, isDir := node.(*vfs.Directory)
		if !isDir {
			fmt.Fprintln(s.Stdout(), target)
			continue
		}

		if showNames {
			if ti > 0 {
				fmt.Fprintln(s.Stdout())
			}
			fmt.Fprintf(s.Stdout(), "%s:\n", target)
		}

		for _, name := range dir.Names() {
			if !listAll && strings.HasPrefix(name, ".") {
				continue
			}
			child, _ := dir.Child(name)
			fmt.Fprintln(s.Stdout(), printer.Sprint(entryColor(child), vfs.DisplayName(name, child)))
		}
	}
	return code
}

func entryColor(n vfs.Node) *color.Color {
	switch n.(type) {
	case *vfs.Directory:
		return ColorBoldBlue
	case *vfs.NullFile:
		return ColorBoldCyan
	default:
		return color.New(color.FgHiWhite)
	}
}

var _ interp.CommandFunc = Ls

func init() {
	register("ls", Ls)
}
