// Package content serves the static editorial pages of the site. Pages are
// markdown files embedded in the binary and rendered to HTML once.
package content

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"llmboard/pkg/types"
)

//go:embed pages/*.md
var pagesFS embed.FS

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

type notFoundError struct{ slug string }

func (e notFoundError) Error() string { return "page not found: " + e.slug }

func (e notFoundError) StatusCode() int { return http.StatusNotFound }

// IsNotFound reports whether err is an unknown page slug.
func IsNotFound(err error) bool {
	_, ok := err.(notFoundError)
	return ok
}

// Library holds rendered pages keyed by slug.
type Library struct {
	pages map[string]types.PageResponse
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the library built from the embedded pages.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(pagesFS, "pages")
		if err != nil {
			defaultErr = err
			return
		}
		defaultLib, defaultErr = Load(sub)
	})
	return defaultLib, defaultErr
}

// Load renders every *.md file at the root of fsys. The slug is the file name
// without extension; the title is the first level-one heading.
func Load(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}
	lib := &Library{pages: map[string]types.PageResponse{}}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		src, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", e.Name(), err)
		}
		var buf bytes.Buffer
		if err := markdown.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render page %s: %w", e.Name(), err)
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		lib.pages[slug] = types.PageResponse{Slug: slug, Title: title(src, slug), HTML: buf.String()}
	}
	return lib, nil
}

func title(src []byte, fallback string) string {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return fallback
}

// Page returns a rendered page.
func (l *Library) Page(slug string) (types.PageResponse, error) {
	p, ok := l.pages[slug]
	if !ok {
		return types.PageResponse{}, notFoundError{slug: slug}
	}
	return p, nil
}

// Slugs lists the available pages in lexical order.
func (l *Library) Slugs() []string {
	out := make([]string, 0, len(l.pages))
	for s := range l.pages {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
