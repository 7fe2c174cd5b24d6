package store

import (
	"context"
	"sync"
	"time"

	"github.com/osservatorio/observer/core"
)

// Memory is an in-memory Store for tests and database-free local runs.
// It applies the same slug and dedup semantics as the production store.
type Memory struct {
	mu         sync.RWMutex
	closed     bool
	nextID     core.ID
	articles   []*core.Article
	bySource   map[string]*core.Article
	bySlug     map[string]*core.Article
	categories map[string]*core.Category
	glossary   []core.GlossaryTerm
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:     1,
		bySource:   map[string]*core.Article{},
		bySlug:     map[string]*core.Article{},
		categories: map[string]*core.Category{},
	}
}

// SetGlossary replaces the glossary returned by GlossaryTerms.
func (m *Memory) SetGlossary(terms []core.GlossaryTerm) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.glossary = terms
}

func (m *Memory) CreateArticle(ctx context.Context, gen *core.GeneratedArticle, item *core.RawNewsItem) (*core.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if _, ok := m.bySource[item.Link]; ok {
		return nil, ErrDuplicateSource
	}

	category := m.categories[string(gen.Category)]
	if category == nil {
		category = NewCategory(gen.Category)
		category.ID = m.nextID
		m.nextID++
		m.categories[string(gen.Category)] = category
	}

	slug := core.Slugify(gen.Title)
	if _, taken := m.bySlug[slug]; taken {
		slug = core.SlugWithSuffix(slug, item.Link)
	}

	now := time.Now().UTC()
	article := &core.Article{
		ID:          m.nextID,
		Title:       gen.Title,
		TitleEN:     gen.TitleEN,
		Slug:        slug,
		Summary:     gen.Summary,
		SummaryEN:   gen.SummaryEN,
		Content:     gen.Content,
		ContentEN:   gen.ContentEN,
		Category:    category,
		SourceURL:   item.Link,
		SourceName:  item.SourceName,
		Credibility: item.Credibility,
		ImageURL:    item.ImageURL,
		AIGenerated: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.nextID++

	m.articles = append(m.articles, article)
	m.bySource[article.SourceURL] = article
	m.bySlug[article.Slug] = article
	return article, nil
}

func (m *Memory) ExistsBySource(ctx context.Context, sourceURL string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return false, ErrClosed
	}
	_, ok := m.bySource[sourceURL]
	return ok, nil
}

func (m *Memory) ListArticles(ctx context.Context) ([]*core.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	// Newest first. Insertion order is creation order.
	out := make([]*core.Article, 0, len(m.articles))
	for i := len(m.articles) - 1; i >= 0; i-- {
		out = append(out, m.articles[i])
	}
	return out, nil
}

func (m *Memory) GetArticles(ctx context.Context, ids ...core.ID) ([]*core.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	byID := make(map[core.ID]*core.Article, len(m.articles))
	for _, a := range m.articles {
		byID[a.ID] = a
	}

	out := make([]*core.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *Memory) GlossaryTerms(ctx context.Context) ([]core.GlossaryTerm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	return m.glossary, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
