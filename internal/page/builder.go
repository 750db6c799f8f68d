package page

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/dom"
	"github.com/ziadkadry99/landing/internal/drawer"
	"github.com/ziadkadry99/landing/internal/markdown"
	"github.com/ziadkadry99/landing/internal/section"
)

// Options configure a Builder.
type Options struct {
	ContentURL     string
	MarkdownURL    string
	MarkdownTarget string
	Sections       []string
	Shell          ShellOptions
}

// Page is a built landing page.
type Page struct {
	Doc     *html.Node
	Mounted int
	// Warnings are failures that left the page usable: unknown renderer
	// names and prose that could not be loaded.
	Warnings []error
}

// HTML serializes the page.
func (p *Page) HTML() (string, error) {
	return dom.Render(p.Doc)
}

// Builder produces complete pages: shell, sections, prose and drawer.
type Builder struct {
	opts      Options
	getter    content.Getter
	assembler *Assembler
	markdown  *markdown.Renderer
	logger    *log.Logger
}

// NewBuilder creates a Builder. A nil logger uses log.Default().
func NewBuilder(opts Options, g content.Getter, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		opts:      opts,
		getter:    g,
		assembler: NewAssembler(g, logger),
		markdown:  markdown.New(),
		logger:    logger,
	}
}

// Build assembles a page. Relative content URLs are resolved against base,
// which may be nil when all URLs are absolute.
func (b *Builder) Build(ctx context.Context, base *url.URL) (*Page, error) {
	doc, err := Shell(b.opts.Shell)
	if err != nil {
		return nil, err
	}
	if _, err := drawer.BindDocument(doc); err != nil {
		return nil, fmt.Errorf("shell markup: %w", err)
	}

	contentURL, err := resolve(base, b.opts.ContentURL)
	if err != nil {
		return nil, err
	}
	mounted, err := b.assembler.Render(ctx, doc, contentURL, b.opts.Shell.MountID, b.opts.Sections...)
	if Aborted(err) {
		return nil, err
	}
	p := &Page{Doc: doc, Mounted: mounted, Warnings: unwrapAll(err)}

	if b.opts.MarkdownURL != "" {
		mdURL, err := resolve(base, b.opts.MarkdownURL)
		if err != nil {
			return nil, err
		}
		if err := b.markdown.Inject(ctx, b.getter, doc, mdURL, b.opts.MarkdownTarget); err != nil {
			b.logger.Printf("page: prose %s not loaded: %v", mdURL, err)
			p.Warnings = append(p.Warnings, err)
		}
	}
	return p, nil
}

// Aborted reports whether err from Assembler.Render stopped the render, as
// opposed to only carrying skipped renderer names.
func Aborted(err error) bool {
	for _, e := range unwrapAll(err) {
		var unknown *section.UnknownRendererError
		if !errors.As(e, &unknown) {
			return true
		}
	}
	return false
}

func unwrapAll(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func resolve(base *url.URL, raw string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if base == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return base.ResolveReference(ref).String(), nil
}
