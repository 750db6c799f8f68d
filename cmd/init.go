package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/landing/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize landing configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the landing page and writes the config file (landing.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
