package section

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/dom"
)

// Class names below are consumed by the landing stylesheet; keep them stable.

func renderHero(doc *content.Document) *html.Node {
	hero := doc.Hero
	return dom.Append(dom.Element("div", "landing-hero"),
		dom.TextElement("h1", "", hero.Title),
		dom.TextElement("p", "", hero.Description),
		image("hero-image", hero.Image, "Landing Image"),
	)
}

func renderFeatureSections(doc *content.Document) *html.Node {
	sections := dom.Element("div", "")
	for _, s := range doc.Sections {
		sectionDiv := dom.Append(dom.Element("div", "landing-section"),
			dom.TextElement("h2", "", s.Title),
			dom.TextElement("p", "", s.Description),
		)
		for _, f := range s.Features {
			sectionDiv.AppendChild(card(f.Name, f.Description, f.Icon))
		}
		sections.AppendChild(sectionDiv)
	}
	return sections
}

func renderGeneralFeatures(doc *content.Document) *html.Node {
	features := doc.Features
	grid := dom.Element("div", "data-grid")
	for _, item := range features.Items {
		grid.AppendChild(card(item.Title, item.Description, item.Icon))
	}
	return dom.Append(dom.Element("div", "landing-general-features"),
		dom.TextElement("h2", "", features.Title),
		dom.TextElement("p", "", features.Description),
		grid,
	)
}

func renderTestimonials(doc *content.Document) *html.Node {
	testimonials := doc.Testimonials
	columns := dom.Element("div", "data-columns")
	for _, item := range testimonials.Items {
		author := dom.Append(dom.Element("div", "testimonial-author"),
			image("testimonial-avatar", item.Author.Avatar.Src, item.Author.Name),
			dom.TextElement("span", "", item.Author.Name),
		)
		columns.AppendChild(dom.Append(dom.Element("div", "testimonial-card"),
			dom.TextElement("p", "", item.Quote),
			author,
		))
	}
	return dom.Append(dom.Element("div", "landing-section"),
		dom.TextElement("h2", "", testimonials.Title),
		dom.TextElement("p", "", testimonials.Description),
		columns,
	)
}

func renderCTA(doc *content.Document) *html.Node {
	cta := doc.CTA
	div := dom.Append(dom.Element("div", "landing-cta"),
		dom.TextElement("h2", "", cta.Title),
		dom.TextElement("p", "", cta.Description),
	)
	for _, link := range cta.Links {
		a := dom.TextElement("a", "cta-button", link.Label)
		dom.SetAttr(a, "href", ctaHref(link.To))
		dom.SetAttr(a, "target", "_blank")
		dom.SetAttr(a, "rel", "noopener noreferrer")
		div.AppendChild(a)
	}
	return div
}

// unsafeHref replaces link targets with a disallowed scheme, matching html/template.
const unsafeHref = "#ZgotmplZ"

func ctaHref(to string) string {
	if !content.SafeURL(to) {
		return unsafeHref
	}
	return to
}

// card is the feature card shared by the feature sections and the general grid.
func card(title, description, icon string) *html.Node {
	return dom.Append(dom.Element("div", "landing-card"),
		dom.TextElement("h3", "", title),
		dom.TextElement("p", "", description),
		image("landing-feature-pic", icon, ""),
	)
}

// image leaves src off when empty so the browser shows nothing rather than
// requesting the page URL again.
func image(class, src, alt string) *html.Node {
	img := dom.Element("img", class)
	if src != "" {
		dom.SetAttr(img, "src", src)
	}
	if alt != "" {
		dom.SetAttr(img, "alt", alt)
	}
	return img
}
