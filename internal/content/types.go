package content

// Document is the structured landing page copy. Every region is optional at
// decode time; renderers validate the regions they read before rendering.
type Document struct {
	Hero         *Hero            `yaml:"hero"`
	Sections     []FeatureSection `yaml:"sections"`
	Features     *Features        `yaml:"features"`
	Testimonials *Testimonials    `yaml:"testimonials"`
	CTA          *CTA             `yaml:"cta"`
}

// Hero is the page header block.
type Hero struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// FeatureSection is one titled group of feature cards.
type FeatureSection struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Features    []Feature `yaml:"features"`
}

// Feature is a card inside a FeatureSection.
type Feature struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Features is the general-features grid.
type Features struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Items       []FeatureItem `yaml:"items"`
}

// FeatureItem is a card inside the general-features grid.
type FeatureItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Testimonials is the quotes block.
type Testimonials struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Items       []Testimonial `yaml:"items"`
}

// Testimonial is a single quote and its author.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author Author `yaml:"author"`
}

type Author struct {
	Name   string `yaml:"name"`
	Avatar Avatar `yaml:"avatar"`
}

type Avatar struct {
	Src string `yaml:"src"`
}

// CTA is the call-to-action block.
type CTA struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Links       []Link `yaml:"links"`
}

// Link is a call-to-action button target.
type Link struct {
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}
