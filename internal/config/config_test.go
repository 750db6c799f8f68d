package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/landing/internal/section"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "landing", cfg.MountID)
	assert.Equal(t, "#prose", cfg.MarkdownTarget)
	assert.Equal(t, section.Names(), cfg.Sections)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
	assert.Equal(t, "30s", cfg.FetchTimeout().String())
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landing.yml")

	original := DefaultConfig()
	original.Title = "Acme"
	original.ContentURL = "https://cdn.example.com/landing.yml"
	original.MarkdownURL = "https://cdn.example.com/about.md"
	original.Sections = []string{"renderCTA", "renderHeroSection"}
	original.Nav = []NavLink{{Label: "Docs", To: "/docs"}}
	original.Server.Port = 9000
	original.Server.LiveReload = true

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Title, loaded.Title)
	assert.Equal(t, original.ContentURL, loaded.ContentURL)
	assert.Equal(t, original.MarkdownURL, loaded.MarkdownURL)
	assert.Equal(t, original.Sections, loaded.Sections)
	assert.Equal(t, original.Nav, loaded.Nav)
	assert.Equal(t, 9000, loaded.Server.Port)
	assert.True(t, loaded.Server.LiveReload)
}

func TestLoadMissingFile(t *testing.T) {
	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().ContentURL, cfg.ContentURL)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("LANDING_MOUNT_ID", "page")
	t.Setenv("LANDING_SERVER_PORT", "9999")
	t.Setenv("LANDING_SERVER_LIVE_RELOAD", "true")
	t.Setenv("LANDING_SERVER_BASE_URL", "http://content.internal:8000/")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "page", loaded.MountID)
	assert.Equal(t, 9999, loaded.Server.Port)
	assert.True(t, loaded.Server.LiveReload)
	assert.Equal(t, "http://content.internal:8000/", loaded.Server.BaseURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"LANDING_TITLE", "title"},
		{"LANDING_CONTENT_URL", "content_url"},
		{"LANDING_SERVER_PORT", "server.port"},
		{"LANDING_SERVER_STATIC_DIR", "server.static_dir"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envKey(tt.input), tt.input)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty content url", func(c *Config) { c.ContentURL = "" }},
		{"empty mount id", func(c *Config) { c.MountID = "" }},
		{"no sections", func(c *Config) { c.Sections = nil }},
		{"unknown section", func(c *Config) { c.Sections = []string{"renderHeroSection", "renderFooter"} }},
		{"markdown without target", func(c *Config) { c.MarkdownURL = "/about.md"; c.MarkdownTarget = "" }},
		{"negative timeout", func(c *Config) { c.FetchTimeoutSeconds = -1 }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"bad glob", func(c *Config) { c.Server.StaticInclude = []string{"**/*.{css"} }},
		{"relative base url", func(c *Config) { c.Server.BaseURL = "/site/" }},
		{"non-http base url", func(c *Config) { c.Server.BaseURL = "file:///srv/site" }},
		{"nav without target", func(c *Config) { c.Nav = []NavLink{{Label: "Home"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestServerBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 9090
	base, err := cfg.Server.Base()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9090/", base.String())

	cfg.Server.BaseURL = "https://cdn.example.com/site/"
	base, err = cfg.Server.Base()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/site/", base.String())
	assert.NoError(t, cfg.Validate())
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validPort("8080"))
	assert.Error(t, validPort("0"))
	assert.Error(t, validPort("http"))
	assert.Error(t, required("  "))
}

func TestDetectContent(t *testing.T) {
	dir := t.TempDir()
	contentFile, proseFile := detectContent(dir)
	assert.Empty(t, contentFile)
	assert.Empty(t, proseFile)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "landing.yaml"), []byte("hero: {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte("# About"), 0644))

	contentFile, proseFile = detectContent(dir)
	assert.Equal(t, "landing.yaml", contentFile)
	assert.Equal(t, "about.md", proseFile)
}
