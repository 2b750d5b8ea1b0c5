package sitemeta

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PageMeta builds head metadata for a page. An empty pageTitle yields the
// bare site title; otherwise the page title is suffixed with the site title.
func (s *Site) PageMeta(pageTitle string) PageMeta {
	title := s.meta.Title
	if t := strings.TrimSpace(pageTitle); t != "" {
		title = t + " | " + s.meta.Title
	}
	return PageMeta{
		Title:       title,
		Description: s.meta.Description,
		OGType:      "website",
	}
}

// HeadTags returns a component writing the title, description and
// OpenGraph tags for p. Empty page fields fall back to the site values.
func (s *Site) HeadTags(p PageMeta) templ.Component {
	if p.Title == "" {
		p.Title = s.meta.Title
	}
	if p.Description == "" {
		p.Description = s.meta.Description
	}
	if p.OGType == "" {
		p.OGType = "website"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<title>" + templ.EscapeString(p.Title) + "</title>\n")
		writeMeta(&b, "name", "description", p.Description)
		writeMeta(&b, "name", "author", s.meta.Author)
		writeMeta(&b, "property", "og:title", p.Title)
		writeMeta(&b, "property", "og:description", p.Description)
		writeMeta(&b, "property", "og:locale", s.meta.OGLocale)
		writeMeta(&b, "property", "og:type", p.OGType)
		if p.URL != "" {
			writeMeta(&b, "property", "og:url", p.URL)
			b.WriteString(`<link rel="canonical" href="` + templ.EscapeString(p.URL) + "\">\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeMeta(b *strings.Builder, attr, key, content string) {
	b.WriteString(`<meta ` + attr + `="` + key + `" content="` + templ.EscapeString(content) + "\">\n")
}

// WebsiteJSONLD returns a Schema.org WebSite JSON-LD string for the site.
func (s *Site) WebsiteJSONLD() string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        s.meta.Title,
		"description": s.meta.Description,
		"inLanguage":  s.meta.Lang,
		"author": map[string]string{
			"@type": "Person",
			"name":  s.meta.Author,
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
