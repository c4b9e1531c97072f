package boardctl

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"llmboard/internal/catalog"
	"llmboard/internal/common/fsutil"
	"llmboard/internal/cutoff"
	"llmboard/internal/dataset"
	"llmboard/internal/scoring"
	"llmboard/internal/sitemap"
	"llmboard/internal/table"
	"llmboard/pkg/types"
)

const topN = 10

// loadModels reads --dataset, or the bundled dataset when none is given.
func loadModels(cfg *Config) ([]types.Model, string, error) {
	if cfg.Dataset == "" {
		models, err := dataset.Embedded()
		return models, dataset.EmbeddedSource, err
	}
	models, err := dataset.Load(cfg.Dataset)
	return models, cfg.Dataset, err
}

func requireDataset(cfg *Config, cmd string) error {
	if cfg.Dataset == "" {
		return fmt.Errorf("%s requires --dataset (the bundled dataset is read-only)", cmd)
	}
	return nil
}

func runRanks(log zerolog.Logger, cfg *Config, dryRun bool) error {
	if err := requireDataset(cfg, "ranks"); err != nil {
		return err
	}
	models, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	sum := scoring.AssignRanks(models)
	log.Info().
		Int("records", len(models)).
		Int("operational_ranked", len(sum.Operational)).
		Int("safety_ranked", len(sum.Safety)).
		Msg("ranks assigned")
	logTop(log, "operational", sum.Operational)
	logTop(log, "safety", sum.Safety)

	if dryRun {
		log.Info().Msg("dry run, dataset not written")
		return nil
	}
	if err := dataset.Save(cfg.Dataset, models); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Dataset).Msg("dataset updated")
	return nil
}

func logTop(log zerolog.Logger, dimension string, list []scoring.Scored) {
	for _, s := range scoring.Top(list, topN) {
		log.Info().
			Str("dimension", dimension).
			Int("rank", s.Rank).
			Str("id", s.ID).
			Str("name", s.Name).
			Float64("score", s.Score).
			Msg("top")
	}
}

func runCutoffs(log zerolog.Logger, cfg *Config, csvPath string, dryRun bool) error {
	if err := requireDataset(cfg, "cutoffs"); err != nil {
		return err
	}
	models, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	src, err := cutoff.LoadFile(csvPath)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", src.Len()).Str("csv", csvPath).Msg("cutoff source loaded")

	rep := cutoff.Apply(models, src)
	for _, m := range rep.Exact {
		log.Debug().Str("model", m.Name).Str("cutoff", m.Cutoff).Msg("exact match")
	}
	for _, m := range rep.Fuzzy {
		log.Info().Str("model", m.Name).Str("source", m.Source).Str("cutoff", m.Cutoff).Msg("partial name match")
	}
	for _, m := range rep.Unmatched {
		log.Info().Str("model", m.Name).Msg("no cutoff found, set to " + cutoff.NotAvailable)
	}
	log.Info().
		Int("updated", rep.Updated()).
		Int("exact", len(rep.Exact)).
		Int("partial", len(rep.Fuzzy)).
		Int("unmatched", len(rep.Unmatched)).
		Msg("cutoffs backfilled")

	if rep.Updated() == 0 {
		log.Info().Msg("no placeholder cutoffs, dataset unchanged")
		return nil
	}
	if dryRun {
		log.Info().Msg("dry run, dataset not written")
		return nil
	}
	if err := dataset.Save(cfg.Dataset, models); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Dataset).Msg("dataset updated")
	return nil
}

func runSitemap(log zerolog.Logger, cfg *Config, outDir, baseURL string) error {
	models, source, err := loadModels(cfg)
	if err != nil {
		return err
	}
	dir, err := fsutil.ExpandHome(outDir)
	if err != nil {
		return err
	}
	sm, err := sitemap.Generate(baseURL, models, cfg.Now())
	if err != nil {
		return err
	}
	robots, err := sitemap.Robots(baseURL)
	if err != nil {
		return err
	}
	smPath := filepath.Join(dir, "sitemap.xml")
	if err := fsutil.WriteAtomic(smPath, sm); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	robotsPath := filepath.Join(dir, "robots.txt")
	if err := fsutil.WriteAtomic(robotsPath, robots); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}
	log.Info().
		Str("dataset", source).
		Str("sitemap", smPath).
		Str("robots", robotsPath).
		Int("models", countIDs(models)).
		Msg("crawler artifacts written")
	return nil
}

func countIDs(models []types.Model) int {
	n := 0
	for _, m := range models {
		if m.ID != "" {
			n++
		}
	}
	return n
}

func runValidate(log zerolog.Logger, cfg *Config, strict bool) error {
	models, source, err := loadModels(cfg)
	if err != nil {
		return err
	}
	fresh := dataset.Clone(models)
	sum := scoring.AssignRanks(fresh)

	stale := 0
	for i := range models {
		if !sameRank(models[i].OperationalRank, fresh[i].OperationalRank) || !sameRank(models[i].SafetyRank, fresh[i].SafetyRank) {
			stale++
			log.Warn().
				Str("id", models[i].ID).
				Str("operational", rankString(models[i].OperationalRank)+" -> "+rankString(fresh[i].OperationalRank)).
				Str("safety", rankString(models[i].SafetyRank)+" -> "+rankString(fresh[i].SafetyRank)).
				Msg("stored rank differs from derived rank")
		}
	}
	log.Info().
		Str("dataset", source).
		Int("records", len(models)).
		Int("operational_ranked", len(sum.Operational)).
		Int("safety_ranked", len(sum.Safety)).
		Int("stale_ranks", stale).
		Msg("dataset valid")
	if strict && stale > 0 {
		return fmt.Errorf("%d record(s) have stale ranks; run boardctl ranks", stale)
	}
	return nil
}

func sameRank(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func rankString(r *int) string {
	if r == nil {
		return "-"
	}
	return strconv.Itoa(*r)
}

func runList(out io.Writer, cfg *Config, term, field, order string, limit int) error {
	q, err := catalog.ParseQuery(term, field, order)
	if err != nil {
		return err
	}
	models, _, err := loadModels(cfg)
	if err != nil {
		return err
	}
	rows := table.Apply(models, q)
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSAFETY\tID\tNAME\tDEVELOPER\tARENA\tINPUT $/M\tOUTPUT $/M\tLICENSE")
	for _, m := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rankString(m.OperationalRank), rankString(m.SafetyRank), m.ID, m.Name, m.Developer,
			m.CodeLMArena, m.InputCost, m.OutputCost, m.License)
	}
	return tw.Flush()
}
