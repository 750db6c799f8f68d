// Package content decodes the structured landing page document.
package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports a document that is malformed, lacks fields a renderer
// needs, or carries link targets that cannot be placed in a page.
type ParseError struct {
	Source  string
	Missing []string
	Invalid []string
	Err     error
}

func (e *ParseError) Error() string {
	var problems []string
	if len(e.Missing) > 0 {
		problems = append(problems, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		problems = append(problems, "unsafe link "+strings.Join(e.Invalid, ", "))
	}
	if len(problems) > 0 {
		return fmt.Sprintf("parsing %s: %s", e.Source, strings.Join(problems, "; "))
	}
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Getter fetches a remote document as text.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// Parse decodes YAML into a Document. source names the input in errors.
func Parse(source string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &doc, nil
}

// Load fetches url and parses the result. Fetch failures are returned as is.
func Load(ctx context.Context, g Getter, url string) (*Document, error) {
	body, err := g.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return Parse(url, []byte(body))
}

// SafeURL reports whether raw may be used as a link target: relative, or
// absolute with an http, https or mailto scheme.
func SafeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

// Require collects missing-field and invalid-field paths during validation.
type Require struct {
	missing []string
	invalid []string
}

// Text records path when value is blank.
func (r *Require) Text(path, value string) {
	if strings.TrimSpace(value) == "" {
		r.missing = append(r.missing, path)
	}
}

// Present records path when ok is false.
func (r *Require) Present(path string, ok bool) {
	if !ok {
		r.missing = append(r.missing, path)
	}
}

// Link records path as missing when value is blank and as invalid when it
// is not a SafeURL.
func (r *Require) Link(path, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		r.missing = append(r.missing, path)
	case !SafeURL(value):
		r.invalid = append(r.invalid, path)
	}
}

// Missing returns the recorded paths in the order they were checked.
func (r *Require) Missing() []string { return r.missing }

// Invalid returns the paths recorded by Link as unsafe.
func (r *Require) Invalid() []string { return r.invalid }

// Err returns a ParseError for source when anything was missing or invalid, or nil.
func (r *Require) Err(source string) error {
	if len(r.missing) == 0 && len(r.invalid) == 0 {
		return nil
	}
	return &ParseError{Source: source, Missing: r.missing, Invalid: r.invalid}
}
