// Package section maps regions of a content document to detached HTML
// fragments. The set of renderers is closed: callers select them by Kind,
// and external string names are resolved once with Parse.
package section

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/content"
)

// Kind identifies one of the built-in section renderers.
type Kind int

const (
	Hero Kind = iota
	FeatureSections
	GeneralFeatures
	Testimonials
	CTA

	numKinds
)

// UnknownRendererError reports a renderer name outside the built-in set.
type UnknownRendererError struct {
	Name string
}

func (e *UnknownRendererError) Error() string {
	return fmt.Sprintf("renderer %q not found", e.Name)
}

// RenderFunc builds a detached fragment from a document.
type RenderFunc func(*content.Document) *html.Node

type entry struct {
	name   string
	check  func(*content.Document, *content.Require)
	render RenderFunc
}

// table is indexed by Kind.
var table = [numKinds]entry{
	Hero:            {"renderHeroSection", (*content.Document).CheckHero, renderHero},
	FeatureSections: {"renderFeatureSections", (*content.Document).CheckSections, renderFeatureSections},
	GeneralFeatures: {"renderGeneralFeatures", (*content.Document).CheckFeatures, renderGeneralFeatures},
	Testimonials:    {"renderTestimonials", (*content.Document).CheckTestimonials, renderTestimonials},
	CTA:             {"renderCTA", (*content.Document).CheckCTA, renderCTA},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		if table[k].render == nil {
			panic(fmt.Sprintf("section: no renderer for kind %d", int(k)))
		}
		m[table[k].name] = k
	}
	return m
}()

// All returns every renderer in its canonical page order.
func All() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Names returns the external names of every renderer in canonical order.
func Names() []string {
	names := make([]string, numKinds)
	for i := range names {
		names[i] = table[i].name
	}
	return names
}

// Parse resolves an external renderer name.
func Parse(name string) (Kind, error) {
	k, ok := byName[name]
	if !ok {
		return 0, &UnknownRendererError{Name: name}
	}
	return k, nil
}

// Valid reports whether k is one of the built-in renderers.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the external name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return table[k].name
}

// Render builds the fragment for k. It does not validate the document; call
// Validate first. An invalid Kind renders nothing and returns nil.
func (k Kind) Render(doc *content.Document) *html.Node {
	if !k.Valid() {
		return nil
	}
	return table[k].render(doc)
}

// Validate checks that doc has every field the given renderers need and
// returns a *content.ParseError listing the missing paths. An invalid Kind
// is reported as an *UnknownRendererError before the document is checked.
func Validate(source string, doc *content.Document, kinds ...Kind) error {
	var r content.Require
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return &UnknownRendererError{Name: k.String()}
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		table[k].check(doc, &r)
	}
	return r.Err(source)
}
