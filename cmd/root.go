package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "Content-driven landing page renderer",
	Long: `Landing builds a marketing page from a structured content document (YAML)
and a prose document (Markdown). It renders the hero, feature, testimonial and
call-to-action sections into a page shell with a navigation drawer, and can
serve the result locally with live reload.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "landing.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
