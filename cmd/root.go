package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vshell/vsh/core/config"
	"github.com/vshell/vsh/core/logger"
)

var cfgPath string

// loadConfig reads the configuration named by --config, or falls back to
// the embedded default when the flag was not given.
func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command; without a subcommand it starts an
// interactive shell.
var rootCmd = &cobra.Command{
	Use:   "vsh",
	Short: "A shell over an in-memory filesystem",
	Long: `vsh is an interactive shell whose whole filesystem lives in memory.
Nothing it does touches the host; every session starts from the
configured filesystem image.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.Initialize(os.Stderr, cfg.LogLevel)
		return runREPL(cfg)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file or directory (default: built in)")
}
