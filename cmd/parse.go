package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vpath"
)

// parseCmd parses a command line against the configured filesystem and
// prints the result, which is handy for debugging quoting and globs.
var parseCmd = &cobra.Command{
	Use:   "parse LINE...",
	Short: "Parse a command line and print the structured result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fs, err := cfg.NewFilesystem()
		if err != nil {
			return err
		}
		env := cfg.Environment()

		// Globs resolve against the configured home directory.
		home := vpath.New(cfg.Home).AsDir()
		parser := shell.NewParser(env, fs, func() vpath.Path { return home })
		parsed, err := parser.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
