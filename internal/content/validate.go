package content

import "fmt"

// Titles, names, quotes and link fields are required for a selected region.
// Descriptions, image fields (hero.image, icons, avatars) and empty
// sequences are allowed.

func (d *Document) CheckHero(r *Require) {
	r.Present("hero", d.Hero != nil)
	if d.Hero == nil {
		return
	}
	r.Text("hero.title", d.Hero.Title)
}

func (d *Document) CheckSections(r *Require) {
	r.Present("sections", d.Sections != nil)
	for i, s := range d.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		r.Text(prefix+".title", s.Title)
		for j, f := range s.Features {
			r.Text(fmt.Sprintf("%s.features[%d].name", prefix, j), f.Name)
		}
	}
}

func (d *Document) CheckFeatures(r *Require) {
	r.Present("features", d.Features != nil)
	if d.Features == nil {
		return
	}
	r.Text("features.title", d.Features.Title)
	for i, item := range d.Features.Items {
		r.Text(fmt.Sprintf("features.items[%d].title", i), item.Title)
	}
}

func (d *Document) CheckTestimonials(r *Require) {
	r.Present("testimonials", d.Testimonials != nil)
	if d.Testimonials == nil {
		return
	}
	r.Text("testimonials.title", d.Testimonials.Title)
	for i, item := range d.Testimonials.Items {
		prefix := fmt.Sprintf("testimonials.items[%d]", i)
		r.Text(prefix+".quote", item.Quote)
		r.Text(prefix+".author.name", item.Author.Name)
	}
}

func (d *Document) CheckCTA(r *Require) {
	r.Present("cta", d.CTA != nil)
	if d.CTA == nil {
		return
	}
	r.Text("cta.title", d.CTA.Title)
	for i, l := range d.CTA.Links {
		prefix := fmt.Sprintf("cta.links[%d]", i)
		r.Link(prefix+".to", l.To)
		r.Text(prefix+".label", l.Label)
	}
}
