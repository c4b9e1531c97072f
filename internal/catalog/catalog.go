package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"llmboard/internal/content"
	"llmboard/internal/dataset"
	"llmboard/internal/leads"
	"llmboard/internal/scoring"
	"llmboard/pkg/types"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultViewTTL       = 5 * time.Minute
	defaultWatchDebounce = 500 * time.Millisecond
)

// State represents the lifecycle of the loaded dataset.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Config encapsulates all tunables for Catalog construction.
type Config struct {
	// DatasetPath is the models JSON file. Empty serves the bundled dataset.
	DatasetPath string
	// BaseURL is the public origin used for sitemap and robots output.
	BaseURL string
	// RecomputeRanks derives both ranks on every load instead of trusting
	// the ranks stored in the file.
	RecomputeRanks bool
	// ViewTTL bounds how long derived views are memoised.
	ViewTTL time.Duration
	// WatchDebounce coalesces bursts of file events before a reload.
	WatchDebounce time.Duration
	Logger        zerolog.Logger
	// Pages defaults to the embedded content library.
	Pages *content.Library
	// LeadSink receives accepted leads. Defaults to a LogSink on Logger.
	LeadSink leads.Sink
}

// Catalog serves leaderboard views from an immutable dataset snapshot.
type Catalog struct {
	cfg   Config
	log   zerolog.Logger
	snap  atomic.Pointer[snapshot]
	views *cache.Cache
	pages *content.Library
	leads *leads.Intake
	start time.Time
	now   func() time.Time

	// mu serialises loads and guards gen and lastErr.
	mu      sync.Mutex
	gen     uint64
	lastErr string
}

// New constructs a Catalog. Nothing is loaded until Load is called.
func New(cfg Config) *Catalog {
	if cfg.ViewTTL <= 0 {
		cfg.ViewTTL = defaultViewTTL
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = defaultWatchDebounce
	}
	sink := cfg.LeadSink
	if sink == nil {
		sink = leads.LogSink{Logger: cfg.Logger}
	}
	return &Catalog{
		cfg:   cfg,
		log:   cfg.Logger.With().Str("component", "catalog").Logger(),
		views: cache.New(cfg.ViewTTL, 2*cfg.ViewTTL),
		pages: cfg.Pages,
		leads: leads.NewIntake(sink),
		start: time.Now(),
		now:   time.Now,
	}
}

// Source names where the dataset comes from.
func (c *Catalog) Source() string {
	if c.cfg.DatasetPath == "" {
		return dataset.EmbeddedSource
	}
	return c.cfg.DatasetPath
}

// Load reads and publishes the dataset. On failure the previously published
// snapshot, if any, stays in place.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	models, err := c.read()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		c.lastErr = err.Error()
		reloadsTotal.WithLabelValues("error").Inc()
		return err
	}

	if c.cfg.RecomputeRanks {
		ranks := scoring.AssignRanks(models)
		if top := scoring.Top(ranks.Operational, 1); len(top) == 1 {
			c.log.Debug().Str("id", top[0].ID).Float64("score", top[0].Score).Msg("operational leader")
		}
		if top := scoring.Top(ranks.Safety, 1); len(top) == 1 {
			c.log.Debug().Str("id", top[0].ID).Float64("score", top[0].Score).Msg("safety leader")
		}
	}
	c.gen++
	s := newSnapshot(models, c.gen, c.Source(), c.now())
	c.snap.Store(s)
	c.lastErr = ""
	reloadsTotal.WithLabelValues("ok").Inc()
	observeSnapshot(s)

	op, safety := s.counts()
	c.log.Info().
		Str("source", s.source).
		Uint64("generation", s.gen).
		Int("records", len(s.models)).
		Int("operational_ranked", op).
		Int("safety_ranked", safety).
		Bool("recomputed", c.cfg.RecomputeRanks).
		Msg("dataset loaded")
	return nil
}

func (c *Catalog) read() ([]types.Model, error) {
	if c.cfg.DatasetPath == "" {
		return dataset.Embedded()
	}
	return dataset.Load(c.cfg.DatasetPath)
}

// Ready reports whether a dataset snapshot has been published.
func (c *Catalog) Ready() bool { return c.snap.Load() != nil }

func (c *Catalog) current() (*snapshot, error) {
	s := c.snap.Load()
	if s == nil {
		return nil, notReadyError{}
	}
	return s, nil
}

// ListModels returns a copy of every record in dataset order.
func (c *Catalog) ListModels() []types.Model {
	s := c.snap.Load()
	if s == nil {
		return []types.Model{}
	}
	return dataset.Clone(s.models)
}

// SubmitLead validates and stores a lead.
func (c *Catalog) SubmitLead(ctx context.Context, req types.LeadRequest) (types.LeadResponse, error) {
	resp, err := c.leads.Submit(ctx, req)
	if err != nil {
		if !leads.IsValidation(err) {
			return resp, fmt.Errorf("store lead: %w", err)
		}
		return resp, err
	}
	return resp, nil
}
