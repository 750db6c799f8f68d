package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ziadkadry99/landing/internal/config"
	"github.com/ziadkadry99/landing/internal/fetch"
	"github.com/ziadkadry99/landing/internal/page"
)

// loadConfig loads and validates the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `landing init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger writes diagnostics to stderr. Quiet loggers drop them unless
// --verbose is set.
func newLogger(quiet bool) *log.Logger {
	if quiet && !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// pageOptions maps the config onto the page builder.
func pageOptions(cfg *config.Config, sections []string, liveReload bool) page.Options {
	if len(sections) == 0 {
		sections = cfg.Sections
	}
	nav := make([]page.NavLink, len(cfg.Nav))
	for i, l := range cfg.Nav {
		nav[i] = page.NavLink{Label: l.Label, To: l.To}
	}
	proseID := ""
	if cfg.MarkdownURL != "" && len(cfg.MarkdownTarget) > 1 && cfg.MarkdownTarget[0] == '#' {
		proseID = cfg.MarkdownTarget[1:]
	}
	return page.Options{
		ContentURL:     cfg.ContentURL,
		MarkdownURL:    cfg.MarkdownURL,
		MarkdownTarget: cfg.MarkdownTarget,
		Sections:       sections,
		Shell: page.ShellOptions{
			Title:       cfg.Title,
			Stylesheets: cfg.Stylesheets,
			Nav:         nav,
			MountID:     cfg.MountID,
			ProseID:     proseID,
			LiveReload:  liveReload,
		},
	}
}

func newBuilder(cfg *config.Config, sections []string, liveReload bool, logger *log.Logger) *page.Builder {
	client := fetch.New(cfg.FetchTimeout(), userAgent())
	return page.NewBuilder(pageOptions(cfg, sections, liveReload), client, logger)
}

func userAgent() string {
	return "landing/" + Version
}
