package catalog

import (
	"fmt"
	"math"
	"strings"

	"llmboard/internal/content"
	"llmboard/internal/insights"
	"llmboard/internal/sitemap"
	"llmboard/internal/table"
	"llmboard/pkg/types"
)

// ParseQuery validates raw table parameters. An empty field or order falls
// back to the default view.
func ParseQuery(term, field, order string) (table.Query, error) {
	q := table.DefaultQuery()
	q.Term = strings.TrimSpace(term)
	if field != "" {
		f, ok := table.ParseField(field)
		if !ok {
			return q, ErrInvalidInput(fmt.Sprintf("unknown sort field: %s (one of %s)", field, fieldList()))
		}
		q.Field = f
	}
	o, ok := table.ParseOrder(order)
	if !ok {
		return q, ErrInvalidInput("order must be asc or desc: " + order)
	}
	q.Order = o
	return q, nil
}

func fieldList() string {
	fields := table.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// List returns the filtered and sorted table view. The returned slice is
// shared with the view cache and must not be modified.
func (c *Catalog) List(term, field, order string) (types.ModelsResponse, error) {
	q, err := ParseQuery(term, field, order)
	if err != nil {
		return types.ModelsResponse{}, err
	}
	s, err := c.current()
	if err != nil {
		return types.ModelsResponse{}, err
	}
	// Only unfiltered views are memoised; search terms are unbounded.
	var models []types.Model
	if q.Term == "" {
		key := fmt.Sprintf("list\x00%d\x00%s\x00%s", s.gen, q.Field, q.Order)
		models = c.memo(key, func() any { return table.Apply(s.models, q) }).([]types.Model)
	} else {
		models = table.Apply(s.models, q)
	}
	return types.ModelsResponse{
		Models: models,
		Shown:  len(models),
		Total:  len(s.models),
		Sort:   string(q.Field),
		Order:  string(q.Order),
	}, nil
}

func (c *Catalog) memo(key string, build func() any) any {
	if v, ok := c.views.Get(key); ok {
		viewCacheTotal.WithLabelValues("hit").Inc()
		return v
	}
	viewCacheTotal.WithLabelValues("miss").Inc()
	v := build()
	c.views.SetDefault(key, v)
	return v
}

// Get returns one record.
func (c *Catalog) Get(id string) (types.Model, error) {
	s, err := c.current()
	if err != nil {
		return types.Model{}, err
	}
	m, ok := s.find(id)
	if !ok {
		return types.Model{}, ErrModelNotFound(id)
	}
	return m, nil
}

// Detail returns the record with its radar, use-case ratings and safety card.
func (c *Catalog) Detail(id string) (types.ModelDetail, error) {
	m, err := c.Get(id)
	if err != nil {
		return types.ModelDetail{}, err
	}
	return insights.Detail(m), nil
}

// Cost estimates a request of the given token counts against a model.
func (c *Catalog) Cost(id string, inputTokens, outputTokens float64) (types.CostEstimate, error) {
	for _, n := range []float64{inputTokens, outputTokens} {
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return types.CostEstimate{}, ErrInvalidInput("token counts must be finite and non-negative")
		}
	}
	m, err := c.Get(id)
	if err != nil {
		return types.CostEstimate{}, err
	}
	return insights.Cost(m, inputTokens, outputTokens), nil
}

// RedTeaming returns the safety showcase.
func (c *Catalog) RedTeaming() (types.RedTeamingResponse, error) {
	s, err := c.current()
	if err != nil {
		return types.RedTeamingResponse{}, err
	}
	key := fmt.Sprintf("redteam\x00%d", s.gen)
	cards := c.memo(key, func() any { return insights.RedTeaming(s.models) }).([]types.SafetyCard)
	return types.RedTeamingResponse{Models: cards}, nil
}

// Page returns a rendered content page.
func (c *Catalog) Page(slug string) (types.PageResponse, error) {
	lib := c.pages
	if lib == nil {
		var err error
		if lib, err = content.Default(); err != nil {
			return types.PageResponse{}, err
		}
	}
	return lib.Page(slug)
}

// Sitemap renders sitemap.xml for the current snapshot. lastmod is the time
// the snapshot was loaded.
func (c *Catalog) Sitemap() ([]byte, error) {
	s, err := c.current()
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("sitemap\x00%d", s.gen)
	if v, ok := c.views.Get(key); ok {
		viewCacheTotal.WithLabelValues("hit").Inc()
		return v.([]byte), nil
	}
	viewCacheTotal.WithLabelValues("miss").Inc()
	b, err := sitemap.Generate(c.cfg.BaseURL, s.models, s.loadedAt)
	if err != nil {
		return nil, err
	}
	c.views.SetDefault(key, b)
	return b, nil
}

// Robots renders robots.txt.
func (c *Catalog) Robots() ([]byte, error) {
	return sitemap.Robots(c.cfg.BaseURL)
}
