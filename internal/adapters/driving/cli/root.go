// Package cli provides the cobra command-line interface for orgsite.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/meta-pytorch/orgsite/internal/config"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

var (
	verbose bool
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "orgsite",
	Short: "Search and browse the meta-pytorch project docs",
	Long: `orgsite indexes the organization's project corpus and searches it
from the command line or an interactive terminal UI. It also generates
the site's JSON artifacts and lists project cards with GitHub stars.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default orgsite.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
