// Package markdown turns prose documents into sanitized HTML and mounts them
// into a page tree.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/dom"
)

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

var classNames = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)

// Renderer converts Markdown to HTML. Raw HTML in the source is passed
// through goldmark and then stripped down by the sanitizer, so the output
// is safe to mount regardless of input.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New creates a Renderer with GFM, heading ids and class-based highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(classNames).OnElements("pre", "code", "span")

	return &Renderer{md: md, policy: policy}
}

// Render converts src to sanitized HTML.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Inject fetches url, renders it and replaces the children of the element
// matched by selector. The target is left untouched on any failure.
func (r *Renderer) Inject(ctx context.Context, g content.Getter, root *html.Node, url, selector string) error {
	target, err := dom.Query(root, selector)
	if err != nil {
		return err
	}
	if target == nil {
		return &dom.MissingElementError{Selector: selector}
	}

	src, err := g.Get(ctx, url)
	if err != nil {
		return err
	}

	clean, err := r.Render([]byte(src))
	if err != nil {
		return err
	}

	nodes, err := html.ParseFragment(strings.NewReader(clean), target)
	if err != nil {
		return fmt.Errorf("parsing rendered markdown: %w", err)
	}
	dom.ReplaceChildren(target, nodes...)
	return nil
}

// WriteHighlightCSS writes the stylesheet for the classes emitted on code blocks.
func WriteHighlightCSS(w io.Writer) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(HighlightStyle))
}
