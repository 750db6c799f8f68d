package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
hero:
  title: Ship faster
  description: One page, many sections.
  image: /img/hero.png
sections:
  - title: Build
    description: Tools for builders
    features:
      - name: Fast
        description: Really fast
        icon: /img/fast.svg
      - name: Small
        description: Tiny footprint
        icon: /img/small.svg
features:
  title: Everything included
  items:
    - title: Logs
      icon: /img/logs.svg
testimonials:
  title: People say
  items:
    - quote: It works.
      author:
        name: Sam
        avatar:
          src: /img/sam.png
cta:
  title: Get started
  links:
    - to: https://example.com/signup
      label: Sign up
    - to: https://example.com/docs
      label: Docs
`

type stubGetter struct {
	body string
	err  error
	urls []string
}

func (s *stubGetter) Get(_ context.Context, url string) (string, error) {
	s.urls = append(s.urls, url)
	return s.body, s.err
}

func TestParse(t *testing.T) {
	doc, err := Parse("sample", []byte(sampleYAML))
	require.NoError(t, err)

	require.NotNil(t, doc.Hero)
	assert.Equal(t, "Ship faster", doc.Hero.Title)
	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Features, 2)
	assert.Equal(t, "Small", doc.Sections[0].Features[1].Name)
	assert.Equal(t, "/img/sam.png", doc.Testimonials.Items[0].Author.Avatar.Src)
	require.Len(t, doc.CTA.Links, 2)
	assert.Equal(t, "Docs", doc.CTA.Links[1].Label)
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse("empty", nil)
	require.NoError(t, err)
	assert.Nil(t, doc.Hero)
	assert.Nil(t, doc.Sections)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("broken.yml", []byte("hero: [unclosed"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.yml", pe.Source)
	assert.NotNil(t, pe.Err)
	assert.Empty(t, pe.Missing)
}

func TestLoad(t *testing.T) {
	g := &stubGetter{body: sampleYAML}
	doc, err := Load(context.Background(), g, "http://host/landing.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://host/landing.yml"}, g.urls)
	assert.Equal(t, "Get started", doc.CTA.Title)
}

func TestLoadPassesFetchErrorThrough(t *testing.T) {
	fetchErr := errors.New("boom")
	_, err := Load(context.Background(), &stubGetter{err: fetchErr}, "http://host/landing.yml")
	assert.Same(t, fetchErr, err)
}

func TestChecksOnCompleteDocument(t *testing.T) {
	doc, err := Parse("sample", []byte(sampleYAML))
	require.NoError(t, err)

	var r Require
	doc.CheckHero(&r)
	doc.CheckSections(&r)
	doc.CheckFeatures(&r)
	doc.CheckTestimonials(&r)
	doc.CheckCTA(&r)
	assert.Empty(t, r.Missing())
	assert.NoError(t, r.Err("sample"))
}

func TestChecksReportMissingPaths(t *testing.T) {
	doc, err := Parse("partial", []byte(`
sections:
  - title: ""
    features:
      - description: no name
cta:
  title: Go
  links:
    - label: nowhere
`))
	require.NoError(t, err)

	var r Require
	doc.CheckHero(&r)
	doc.CheckSections(&r)
	doc.CheckCTA(&r)

	assert.Equal(t, []string{
		"hero",
		"sections[0].title",
		"sections[0].features[0].name",
		"cta.links[0].to",
	}, r.Missing())

	err = r.Err("partial")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "missing hero, sections[0].title")
}

func TestCheckCTARejectsUnsafeLinks(t *testing.T) {
	doc, err := Parse("links", []byte(`
cta:
  title: Go
  links:
    - to: /signup
      label: Relative
    - to: " JavaScript:alert(1)"
      label: Script
    - to: https://example.com
      label: Absolute
    - to: "data:text/html,<b>x</b>"
      label: Data
`))
	require.NoError(t, err)

	var r Require
	doc.CheckCTA(&r)
	assert.Empty(t, r.Missing())
	assert.Equal(t, []string{"cta.links[1].to", "cta.links[3].to"}, r.Invalid())

	err = r.Err("links")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "unsafe link cta.links[1].to, cta.links[3].to")
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"/signup", true},
		{"#pricing", true},
		{"https://example.com/a?b=c", true},
		{"HTTP://EXAMPLE.COM", true},
		{"mailto:team@example.com", true},
		{"javascript:alert(1)", false},
		{"  javascript:alert(1)", false},
		{"java\tscript:alert(1)", false},
		{"vbscript:msgbox", false},
		{"data:text/html,x", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeURL(tt.raw), tt.raw)
	}
}

func TestOptionalFieldsAreNotRequired(t *testing.T) {
	doc, err := Parse("minimal", []byte(`
hero:
  title: Only a title
features:
  title: Grid
  items: []
`))
	require.NoError(t, err)

	var r Require
	doc.CheckHero(&r)
	doc.CheckFeatures(&r)
	assert.Empty(t, r.Missing())
}
