package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/landing/internal/section"
)

// contentCandidates are files probed in the content directory to prefill the wizard.
var contentCandidates = []string{"landing.yml", "landing.yaml", "page.yml", "page.yaml"}

// detectContent looks for an existing content document and prose file.
func detectContent(dir string) (contentFile, proseFile string) {
	for _, name := range contentCandidates {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			contentFile = name
			break
		}
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*.md"))
	if len(matches) > 0 {
		proseFile = filepath.Base(matches[0])
	}
	return contentFile, proseFile
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to landing! Let's configure your page.")
	fmt.Println()

	cfg := DefaultConfig()

	contentFile, proseFile := detectContent(cfg.Server.ContentDir)
	if contentFile != "" {
		fmt.Printf("Found content document: %s/%s\n\n", cfg.Server.ContentDir, contentFile)
		cfg.ContentURL = "/content/" + contentFile
	}

	// 1. Page title.
	title, err := (&promptui.Prompt{Label: "Page title", Default: cfg.Title}).Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 2. Content document URL.
	contentURL, err := (&promptui.Prompt{
		Label:    "Content document URL (YAML)",
		Default:  cfg.ContentURL,
		Validate: required,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("content url: %w", err)
	}
	cfg.ContentURL = contentURL

	// 3. Prose document URL.
	proseDefault := ""
	if proseFile != "" {
		proseDefault = "/content/" + proseFile
	}
	markdownURL, err := (&promptui.Prompt{
		Label:   "Prose document URL (Markdown, leave blank for none)",
		Default: proseDefault,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("markdown url: %w", err)
	}
	cfg.MarkdownURL = strings.TrimSpace(markdownURL)

	// 4. Sections, in page order.
	var selected []string
	for _, name := range section.Names() {
		_, err := (&promptui.Prompt{Label: "Render " + name, IsConfirm: true, Default: "y"}).Run()
		if errors.Is(err, promptui.ErrAbort) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		selected = append(selected, name)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("at least one section must be selected")
	}
	cfg.Sections = selected

	// 5. Server port.
	portStr, err := (&promptui.Prompt{
		Label:    "Port for landing serve",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validPort,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 6. Live reload.
	_, err = (&promptui.Prompt{Label: "Reload browsers when content changes", IsConfirm: true}).Run()
	switch {
	case err == nil:
		cfg.Server.LiveReload = true
	case !errors.Is(err, promptui.ErrAbort):
		return nil, fmt.Errorf("live reload: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func validPort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
