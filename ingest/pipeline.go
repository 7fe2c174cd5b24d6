package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/osservatorio/observer/core"
	"github.com/osservatorio/observer/store"
	"github.com/osservatorio/observer/synthesis"
)

// Fetcher yields candidate news items. Implementations swallow per-feed
// failures; an empty result is a valid outcome.
type Fetcher interface {
	Fetch(ctx context.Context) []*core.RawNewsItem
}

// Synthesizer turns one raw item into a curated article.
type Synthesizer interface {
	Synthesize(ctx context.Context, item *core.RawNewsItem, glossary []core.GlossaryTerm) (*core.GeneratedArticle, error)
}

// Indexer rebuilds the search index from the full archive.
type Indexer interface {
	Rebuild(ctx context.Context, articles []*core.Article) error
}

// Stats summarizes one ingestion cycle.
type Stats struct {
	Fetched   int
	Skipped   int // already in the archive
	Failed    int // synthesis or persistence failures
	Created   int
	Reindexed bool
}

// Pipeline runs ingestion cycles. Items are processed sequentially; only
// the model call and page scraping block for long, both bounded by their
// own timeouts.
type Pipeline struct {
	fetcher     Fetcher
	store       store.Store
	synthesizer Synthesizer
	indexer     Indexer
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(fetcher Fetcher, st store.Store, synthesizer Synthesizer, indexer Indexer, opts ...Option) (*Pipeline, error) {
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if st == nil {
		return nil, ErrStoreRequired
	}
	if synthesizer == nil {
		return nil, ErrSynthesizerRequired
	}
	if indexer == nil {
		return nil, ErrIndexerRequired
	}

	p := &Pipeline{
		fetcher:     fetcher,
		store:       st,
		synthesizer: synthesizer,
		indexer:     indexer,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "pipeline")
	return p, nil
}

// RunCycle executes one full ingestion cycle and reports what happened.
// Per-item failures are logged and skipped; the cycle itself only fails
// when the archive cannot be read for the index rebuild.
func (p *Pipeline) RunCycle(ctx context.Context) (*Stats, error) {
	started := time.Now()
	stats := &Stats{}

	items := p.fetcher.Fetch(ctx)
	stats.Fetched = len(items)
	p.logger.Info("fetched raw items", "count", len(items))

	glossary, err := p.store.GlossaryTerms(ctx)
	if err != nil {
		// The synthesizer falls back to its built-in glossary.
		p.logger.Warn("failed to load glossary, using built-in terms", "error", err)
		glossary = nil
	}

	for _, item := range items {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		switch p.processItem(ctx, item, glossary) {
		case itemCreated:
			stats.Created++
		case itemSkipped:
			stats.Skipped++
		case itemFailed:
			stats.Failed++
		}
	}

	if stats.Created > 0 {
		if err := p.reindex(ctx); err != nil {
			p.logger.Error("index rebuild failed, previous index still serving", "error", err)
		} else {
			stats.Reindexed = true
		}
	}

	p.logger.Info("ingestion cycle complete",
		"fetched", stats.Fetched,
		"created", stats.Created,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"reindexed", stats.Reindexed,
		"elapsed", time.Since(started).Round(time.Millisecond))
	return stats, nil
}

type itemOutcome int

const (
	itemCreated itemOutcome = iota
	itemSkipped
	itemFailed
)

func (p *Pipeline) processItem(ctx context.Context, item *core.RawNewsItem, glossary []core.GlossaryTerm) itemOutcome {
	logger := p.logger.With("source", item.SourceName, "link", item.Link)

	exists, err := p.store.ExistsBySource(ctx, item.Link)
	if err != nil {
		logger.Error("dedup check failed, skipping item", "error", err)
		return itemFailed
	}
	if exists {
		logger.Debug("already in archive, skipping")
		return itemSkipped
	}

	if err := core.ValidateRawNewsItem(item); err != nil {
		logger.Warn("invalid raw item, skipping", "error", err)
		return itemFailed
	}

	logger.Info("synthesizing article", "title", item.Title)
	gen, err := p.synthesizer.Synthesize(ctx, item, glossary)
	if err != nil {
		if synthErr, ok := synthesis.AsError(err); ok && synthErr.Kind == synthesis.KindMalformed {
			logger.Warn("model produced unrecoverable output, skipping item",
				"error", err, "rawLength", len(synthErr.RawResponse))
		} else {
			logger.Error("synthesis failed, skipping item", "error", err)
		}
		return itemFailed
	}

	article, err := p.store.CreateArticle(ctx, gen, item)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateSource) {
			logger.Debug("raced with another writer, skipping")
			return itemSkipped
		}
		logger.Error("failed to persist article, skipping item", "error", err)
		return itemFailed
	}

	logger.Info("created article",
		"slug", article.Slug,
		"category", article.CategoryName())
	return itemCreated
}

// reindex rebuilds the search index from the full archive snapshot.
func (p *Pipeline) reindex(ctx context.Context) error {
	articles, err := p.store.ListArticles(ctx)
	if err != nil {
		return err
	}
	return p.indexer.Rebuild(ctx, articles)
}

// Reindex is the standalone rebuild entry point used at startup and by
// the reindex command.
func (p *Pipeline) Reindex(ctx context.Context) error {
	return p.reindex(ctx)
}
