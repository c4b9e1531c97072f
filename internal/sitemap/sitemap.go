// Package sitemap renders the crawler artifacts of the site: sitemap.xml and
// robots.txt.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/temoto/robotstxt"

	"llmboard/pkg/types"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Page is a fixed top-level entry.
type Page struct {
	Path     string
	Priority float64
}

// StaticPages are listed before the per-model pages.
var StaticPages = []Page{
	{Path: "/", Priority: 1.0},
	{Path: "/red-teaming", Priority: 0.9},
	{Path: "/test-your-llm", Priority: 0.7},
}

// ModelPriority is the priority of every /model/<id> entry.
const ModelPriority = 0.8

// ModelPath is the site path of a model detail page.
func ModelPath(id string) string { return "/model/" + id }

// CanonicalURL joins base and path, making sure the path starts with a slash
// and has no trailing slash (the root path stays "/").
func CanonicalURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	switch {
	case path == "" || path == "/":
		return base + "/"
	case !strings.HasPrefix(path, "/"):
		path = "/" + path
	}
	return base + strings.TrimRight(path, "/")
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []entry  `xml:"url"`
}

type entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Generate renders sitemap.xml for the static pages and every record with
// a non-empty id, in dataset order.
func Generate(base string, models []types.Model, now time.Time) ([]byte, error) {
	lastmod := now.UTC().Format("2006-01-02")
	set := urlset{Xmlns: Namespace}
	add := func(path string, prio float64) {
		set.URLs = append(set.URLs, entry{
			Loc:        CanonicalURL(base, path),
			LastMod:    lastmod,
			ChangeFreq: "weekly",
			Priority:   fmt.Sprintf("%.1f", prio),
		})
	}
	for _, p := range StaticPages {
		add(p.Path, p.Priority)
	}
	for _, m := range models {
		if m.ID == "" {
			continue
		}
		add(ModelPath(m.ID), ModelPriority)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots renders robots.txt and parses it back to make sure crawlers will
// read it the way it was meant: pages open, API closed, sitemap advertised.
func Robots(base string) ([]byte, error) {
	sitemapURL := CanonicalURL(base, "/sitemap.xml")
	var buf bytes.Buffer
	buf.WriteString("User-agent: *\n")
	buf.WriteString("Allow: /\n")
	buf.WriteString("Disallow: /api/\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Sitemap: %s\n", sitemapURL)
	b := buf.Bytes()
	if err := verifyRobots(b, sitemapURL); err != nil {
		return nil, err
	}
	return b, nil
}

func verifyRobots(b []byte, sitemapURL string) error {
	robots, err := robotstxt.FromBytes(b)
	if err != nil {
		return fmt.Errorf("robots.txt: parse: %w", err)
	}
	if !robots.TestAgent(ModelPath("probe"), "*") {
		return fmt.Errorf("robots.txt: model pages are not crawlable")
	}
	if robots.TestAgent("/api/models", "*") {
		return fmt.Errorf("robots.txt: api is crawlable")
	}
	for _, s := range robots.Sitemaps {
		if s == sitemapURL {
			return nil
		}
	}
	return fmt.Errorf("robots.txt: sitemap %s not advertised", sitemapURL)
}
