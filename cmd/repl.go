package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"

	"github.com/vshell/vsh/commands"
	"github.com/vshell/vsh/core/config"
	"github.com/vshell/vsh/core/interp"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// replCmd is the explicit spelling of the default behavior.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runREPL serves an interactive session on the process terminal until the
// user exits or input closes.
func runREPL(cfg *config.Configuration) error {
	env := cfg.Environment()
	fs, err := cfg.NewFilesystem()
	if err != nil {
		return err
	}

	session := interp.NewSession(env, fs, commands.AllCommands, os.Stdout, os.Stderr)
	session.Interactive = true

	rl, err := readline.NewEx(&readline.Config{
		Prompt: session.Prompt(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	printMotd(session)

	for !session.Exited {
		rl.SetPrompt(session.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err

		case len(line) == 0:
			continue
		}

		session.Run(line)
	}
	return nil
}

// printMotd shows /etc/motd when the image carries one.
func printMotd(session *interp.Session) {
	stream, err := session.FS.Open(vpath.New("/etc/motd"), vfs.ModeRead)
	if err != nil {
		return
	}
	fmt.Fprint(session.Stdout(), stream.ReadAll())
}
