package config

// Config is the top-level landing configuration, corresponding to landing.yml.
type Config struct {
	Title               string       `yaml:"title" koanf:"title"`
	ContentURL          string       `yaml:"content_url" koanf:"content_url"`
	MarkdownURL         string       `yaml:"markdown_url" koanf:"markdown_url"`
	MarkdownTarget      string       `yaml:"markdown_target" koanf:"markdown_target"`
	MountID             string       `yaml:"mount_id" koanf:"mount_id"`
	Sections            []string     `yaml:"sections" koanf:"sections"`
	Stylesheets         []string     `yaml:"stylesheets" koanf:"stylesheets"`
	Nav                 []NavLink    `yaml:"nav" koanf:"nav"`
	FetchTimeoutSeconds int          `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	Server              ServerConfig `yaml:"server" koanf:"server"`
}

// NavLink is an entry in the drawer navigation.
type NavLink struct {
	Label string `yaml:"label" koanf:"label"`
	To    string `yaml:"to" koanf:"to"`
}

// ServerConfig holds settings for `landing serve`.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	StaticDir       string   `yaml:"static_dir" koanf:"static_dir"`
	StaticInclude   []string `yaml:"static_include" koanf:"static_include"`
	ContentDir      string   `yaml:"content_dir" koanf:"content_dir"`
	LiveReload      bool     `yaml:"live_reload" koanf:"live_reload"`
	// BaseURL resolves relative content_url and markdown_url values. Empty
	// means the server's own loopback address.
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}
