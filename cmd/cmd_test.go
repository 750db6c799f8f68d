package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/landing/internal/config"
)

func TestPageOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MarkdownURL = "/content/about.md"
	cfg.Nav = []config.NavLink{{Label: "Docs", To: "/docs"}}

	opts := pageOptions(cfg, nil, true)
	assert.Equal(t, cfg.Sections, opts.Sections)
	assert.Equal(t, "prose", opts.Shell.ProseID)
	assert.Equal(t, "landing", opts.Shell.MountID)
	assert.True(t, opts.Shell.LiveReload)
	require.Len(t, opts.Shell.Nav, 1)
	assert.Equal(t, "Docs", opts.Shell.Nav[0].Label)

	opts = pageOptions(cfg, []string{"renderCTA"}, false)
	assert.Equal(t, []string{"renderCTA"}, opts.Sections)

	// No prose article without a prose document or with a non-id target.
	cfg.MarkdownURL = ""
	assert.Empty(t, pageOptions(cfg, nil, false).Shell.ProseID)
	cfg.MarkdownURL = "/content/about.md"
	cfg.MarkdownTarget = "main .prose"
	assert.Empty(t, pageOptions(cfg, nil, false).Shell.ProseID)
}

func TestExistingDirs(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, []string{dir}, existingDirs(dir, filepath.Join(dir, "missing"), ""))
}

func TestRenderCommand(t *testing.T) {
	files := http.StripPrefix("/content/", http.FileServer(http.Dir("../testdata/site")))
	var agents []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agents = append(agents, r.Header.Get("User-Agent"))
		files.ServeHTTP(w, r)
	}))
	defer ts.Close()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Title = "Acme"
	cfg.MarkdownURL = "/content/about.md"
	cfgPath := filepath.Join(dir, "landing.yml")
	require.NoError(t, cfg.Save(cfgPath))

	outPath := filepath.Join(dir, "index.html")
	rootCmd.SetArgs([]string{"render", "--config", cfgPath, "--base", ts.URL + "/", "--out", outPath, "renderHeroSection", "renderCTA"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<title>Acme</title>")
	hero := strings.Index(out, "Ship docs people read")
	cta := strings.Index(out, "Read the docs")
	require.True(t, hero > 0 && cta > 0)
	assert.Less(t, hero, cta)
	assert.NotContains(t, out, "We replaced a CMS")
	assert.Contains(t, out, `<h1 id="about">About</h1>`)

	require.Len(t, agents, 2)
	for _, ua := range agents {
		assert.Equal(t, "landing/"+Version, ua)
	}
}

func TestVersionCommand(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)
	Version, Commit = "1.4.0", "abc123"

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "landing 1.4.0 (abc123) ")
	assert.Contains(t, buf.String(), "user agent: landing/1.4.0")

	buf.Reset()
	rootCmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "1.4.0\n", buf.String())
	require.NoError(t, versionCmd.Flags().Set("short", "false"))
}

func TestRenderCommandRejectsRelativeBase(t *testing.T) {
	rootCmd.SetArgs([]string{"render", "--config", filepath.Join(t.TempDir(), "landing.yml"), "--base", "/relative"})
	assert.Error(t, rootCmd.Execute())
}
