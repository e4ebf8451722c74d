// Package pipeline runs one batch ingestion: discover export files, parse
// and normalize them, categorize the result and refresh the category cache.
package pipeline

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pawelciurka/money-insights/internal/categorize"
	"github.com/pawelciurka/money-insights/internal/config"
	"github.com/pawelciurka/money-insights/internal/model"
	"github.com/pawelciurka/money-insights/internal/normalize"
	"github.com/pawelciurka/money-insights/internal/parser"
	"github.com/pawelciurka/money-insights/internal/rules"
	"github.com/pawelciurka/money-insights/internal/scanner"
)

// Result is the pipeline's output: the canonical transaction table, the
// resolved category vocabulary and cache-effectiveness stats.
type Result struct {
	Transactions []model.Transaction
	Categories   []string
	Stats        categorize.Stats
	RuleSet      *rules.RuleSet
}

// Pipeline holds the explicitly constructed collaborators of one run.
type Pipeline struct {
	cfg      *config.Config
	registry *parser.Registry
	log      zerolog.Logger
}

// New creates a Pipeline with the default parser registry.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		registry: parser.DefaultRegistry(),
		log:      log,
	}
}

// Run executes one synchronous batch: scan, parse, normalize, categorize.
// The cache is read once at the start and rewritten once at the end.
func (p *Pipeline) Run() (*Result, error) {
	files, err := scanner.Scan(p.cfg.Input.Dir, p.log)
	if err != nil {
		return nil, err
	}

	opts := normalize.Options{
		DateOffset: time.Duration(p.cfg.Normalize.DateOffsetMinutes) * time.Minute,
	}

	var txns []model.Transaction
	for _, f := range files {
		pr := p.registry.Get(f.SourceType)
		if pr == nil {
			return nil, fmt.Errorf("no parser registered for source type %s", f.SourceType)
		}

		records, err := parser.ParseFile(pr, f.Path)
		if err != nil {
			return nil, err
		}

		fileTxns, err := normalize.Normalize(records, f.Path, f.SourceType, opts)
		if err != nil {
			return nil, err
		}

		p.log.Info().Str("file", f.Path).Str("source_type", string(f.SourceType)).
			Int("transactions", len(fileTxns)).Msg("parsed export file")
		txns = append(txns, fileTxns...)
	}

	if p.cfg.Normalize.DedupeByID {
		txns = dedupeByID(txns)
	}

	set, err := rules.Load(p.cfg.Rules.Path, true)
	if err != nil {
		return nil, err
	}

	cache := categorize.NewCache(p.cfg.Cache.Path)
	cache.Read()

	stats, err := categorize.Apply(txns, set, cache)
	if err != nil {
		return nil, err
	}

	p.log.Info().Int("recomputed", stats.Recomputed).Int("from_cache", stats.FromCache).
		Msg("categories assigned")

	return &Result{
		Transactions: txns,
		Categories:   set.Categories(),
		Stats:        stats,
		RuleSet:      set,
	}, nil
}

// dedupeByID drops transactions whose id was already seen, keeping the
// first occurrence in file discovery order. Duplicate exports of the same
// statement produce identical native ids.
func dedupeByID(txns []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txns))
	out := txns[:0]
	for _, t := range txns {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
