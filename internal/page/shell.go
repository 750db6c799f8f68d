package page

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/drawer"
)

// NavLink is an entry in the drawer navigation.
type NavLink struct {
	Label string
	To    string
}

// ShellOptions describe the static page around the mounted sections.
type ShellOptions struct {
	Title       string
	Stylesheets []string
	Nav         []NavLink
	MountID     string
	ProseID     string
	LiveReload  bool
}

type shellData struct {
	ShellOptions
	DrawerScript template.JS
	ReloadScript template.JS
}

const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- range .Stylesheets}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
<button class="drawer-icon" type="button" aria-label="Menu">&#9776;</button>
<nav class="drawer">
{{- range .Nav}}
<a href="{{.To}}">{{.Label}}</a>
{{- end}}
</nav>
<div class="overlay"></div>
<main class="content">
<div id="{{.MountID}}"></div>
{{- if .ProseID}}
<article id="{{.ProseID}}"></article>
{{- end}}
</main>
<script>{{.DrawerScript}}</script>
{{- if .LiveReload}}
<script>{{.ReloadScript}}</script>
{{- end}}
</body>
</html>
`

// reloadScript reconnects to /live and reloads the page when told to.
const reloadScript = `(function() {
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/live");
  ws.onmessage = function(ev) { if (ev.data === "reload") { location.reload(); } };
})();`

var shell = template.Must(template.New("shell").Parse(shellTemplate))

// Shell builds the page document that sections are mounted into.
func Shell(opts ShellOptions) (*html.Node, error) {
	if opts.MountID == "" {
		return nil, fmt.Errorf("shell: mount id is required")
	}
	var buf bytes.Buffer
	err := shell.Execute(&buf, shellData{
		ShellOptions: opts,
		DrawerScript: template.JS(drawer.Script),
		ReloadScript: template.JS(reloadScript),
	})
	if err != nil {
		return nil, fmt.Errorf("executing shell template: %w", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parsing shell: %w", err)
	}
	return doc, nil
}
