package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the landing version and fetch user agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		short, _ := cmd.Flags().GetBool("short")
		out := cmd.OutOrStdout()
		if short {
			fmt.Fprintln(out, Version)
			return nil
		}
		fmt.Fprintln(out, versionLine())
		fmt.Fprintf(out, "user agent: %s\n", userAgent())
		return nil
	},
}

func versionLine() string {
	line := "landing " + Version
	if Commit != "" {
		line += " (" + Commit + ")"
	}
	return fmt.Sprintf("%s %s/%s %s", line, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
