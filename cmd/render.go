package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [section...]",
	Short: "Render the landing page to HTML",
	Long: `Fetches the content and prose documents, renders the selected sections
(the config's sections when none are given) and writes the complete page.
Unknown section names are reported and skipped.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "output file (defaults to stdout)")
	renderCmd.Flags().String("base", "", "base URL for relative content URLs (e.g. http://localhost:8080/)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var base *url.URL
	if raw, _ := cmd.Flags().GetString("base"); raw != "" {
		base, err = url.Parse(raw)
		if err != nil || !base.IsAbs() {
			return fmt.Errorf("--base must be an absolute URL, got %q", raw)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := newBuilder(cfg, args, false, newLogger(true))
	p, err := builder.Build(ctx, base)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	for _, w := range p.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}

	out, err := p.HTML()
	if err != nil {
		return fmt.Errorf("serializing page: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Rendered %d section(s) to %s\n", p.Mounted, outPath)
	return nil
}
