package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vshell/vsh/core/config"
)

// initCmd writes the default configuration somewhere editable.
var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Write the default configuration to a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := config.Initialize(afero.NewOsFs(), dir)
		if err != nil {
			return fmt.Errorf("initializing %s: %w", dir, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
