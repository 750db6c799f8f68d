// Package page assembles landing pages: a static shell, the content sections
// mounted into it, and the prose article.
package page

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/dom"
	"github.com/ziadkadry99/landing/internal/section"
)

// Assembler fetches a content document and mounts the selected sections.
type Assembler struct {
	getter content.Getter
	logger *log.Logger
}

// NewAssembler creates an Assembler. A nil logger uses log.Default().
func NewAssembler(g content.Getter, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{getter: g, logger: logger}
}

// Render loads url and appends one fragment per known name, in the given
// order, to the element with id targetID under root. Unknown names are
// reported and skipped. A fetch, parse or validation failure, or a missing
// target, aborts before anything is mounted.
//
// It returns the number of fragments mounted and every error encountered.
func (a *Assembler) Render(ctx context.Context, root *html.Node, url, targetID string, names ...string) (int, error) {
	renderID := uuid.NewString()
	var errs []error
	report := func(err error) {
		a.logger.Printf("page[%s]: %v", renderID, err)
		errs = append(errs, err)
	}

	kinds := make([]section.Kind, 0, len(names))
	for _, name := range names {
		k, err := section.Parse(name)
		if err != nil {
			report(err)
			continue
		}
		kinds = append(kinds, k)
	}

	doc, err := content.Load(ctx, a.getter, url)
	if err != nil {
		report(err)
		return 0, errors.Join(errs...)
	}
	if err := section.Validate(url, doc, kinds...); err != nil {
		report(err)
		return 0, errors.Join(errs...)
	}

	mount := dom.ByID(root, targetID)
	if mount == nil {
		report(&dom.MissingElementError{Selector: "#" + targetID})
		return 0, errors.Join(errs...)
	}

	for _, k := range kinds {
		mount.AppendChild(k.Render(doc))
	}
	a.logger.Printf("page[%s]: mounted %d section(s) from %s", renderID, len(kinds), url)
	return len(kinds), errors.Join(errs...)
}
