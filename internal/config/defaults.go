package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ziadkadry99/landing/internal/section"
)

// DefaultStaticInclude are the asset globs served from the static directory.
var DefaultStaticInclude = []string{
	"**/*.css",
	"**/*.js",
	"**/*.{png,jpg,jpeg,gif,svg,webp,ico}",
	"**/*.{woff,woff2}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:               "Landing",
		ContentURL:          "/content/landing.yml",
		MarkdownTarget:      "#prose",
		MountID:             "landing",
		Sections:            section.Names(),
		Stylesheets:         []string{"/static/landing.css"},
		FetchTimeoutSeconds: 30,
		Server: ServerConfig{
			Port:          8080,
			StaticDir:     "static",
			StaticInclude: append([]string(nil), DefaultStaticInclude...),
			ContentDir:    "content",
		},
	}
}

// FetchTimeout returns the per-request fetch timeout; zero means none.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Base returns the URL relative content and prose URLs are resolved against
// when serving. Without base_url it is the loopback address on Port.
func (s ServerConfig) Base() (*url.URL, error) {
	if s.BaseURL == "" {
		return &url.URL{Scheme: "http", Host: fmt.Sprintf("127.0.0.1:%d", s.Port), Path: "/"}, nil
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server.base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("server.base_url must be an absolute http(s) URL, got %q", s.BaseURL)
	}
	return u, nil
}
