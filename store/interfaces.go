package store

import (
	"context"

	"github.com/osservatorio/observer/core"
)

// Store is the canonical article store.
// Implementations must be safe for concurrent use.
type Store interface {
	// CreateArticle persists a generated article together with the source
	// metadata of the raw item it came from. It resolves or creates the
	// category, derives a unique slug from the title (appending a short
	// hash of the source link on collision), and stamps timestamps.
	// Returns ErrDuplicateSource if the source URL is already present.
	CreateArticle(ctx context.Context, gen *core.GeneratedArticle, item *core.RawNewsItem) (*core.Article, error)

	// ExistsBySource reports whether an article with the given source URL
	// already exists. This is the pipeline's sole idempotence check.
	ExistsBySource(ctx context.Context, sourceURL string) (bool, error)

	// ListArticles returns all articles, newest first. Used to feed full
	// index rebuilds; the result is a complete snapshot.
	ListArticles(ctx context.Context) ([]*core.Article, error)

	// GetArticles retrieves articles by ID, preserving the input order.
	// Missing IDs are skipped without error.
	GetArticles(ctx context.Context, ids ...core.ID) ([]*core.Article, error)

	// GlossaryTerms returns the terminology overrides rendered into the
	// synthesis system prompt. An empty slice means callers should fall
	// back to the built-in glossary.
	GlossaryTerms(ctx context.Context) ([]core.GlossaryTerm, error)

	// Close releases the underlying connection.
	Close() error
}
