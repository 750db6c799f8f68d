package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/landing/internal/section"
)

// EnvPrefix marks environment overrides, e.g. LANDING_CONTENT_URL or LANDING_SERVER_PORT.
const EnvPrefix = "LANDING_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LANDING_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LANDING_MOUNT_ID -> mount_id,
	// LANDING_SERVER_PORT -> server.port.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "server_"); ok {
		return "server." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentURL == "" {
		return fmt.Errorf("content_url is required")
	}

	if c.MountID == "" {
		return fmt.Errorf("mount_id is required")
	}

	if len(c.Sections) == 0 {
		return fmt.Errorf("sections must list at least one renderer")
	}
	for _, name := range c.Sections {
		if _, err := section.Parse(name); err != nil {
			return fmt.Errorf("invalid sections entry: %w (must be one of %s)", err, strings.Join(section.Names(), ", "))
		}
	}

	if c.MarkdownURL != "" && c.MarkdownTarget == "" {
		return fmt.Errorf("markdown_target is required when markdown_url is set")
	}

	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("fetch_timeout_seconds must be non-negative")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if _, err := c.Server.Base(); err != nil {
		return err
	}

	for _, pattern := range c.Server.StaticInclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid server.static_include pattern %q", pattern)
		}
	}

	for i, link := range c.Nav {
		if link.Label == "" || link.To == "" {
			return fmt.Errorf("nav[%d] needs both label and to", i)
		}
	}

	return nil
}
