package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osservatorio/observer/core"
)

func sampleGenerated(title string) *core.GeneratedArticle {
	return &core.GeneratedArticle{
		Title:    title,
		Summary:  "Sommario.",
		Content:  "## Sezione\n\nTesto.",
		Category: core.CategoryLLM,
	}
}

func sampleItem(link string) *core.RawNewsItem {
	return &core.RawNewsItem{
		Title:       "Raw title",
		Text:        "Raw body text.",
		Link:        link,
		SourceName:  "Example Blog",
		Credibility: 4,
		ImageURL:    "https://example.com/hero.png",
	}
}

func TestMemoryCreateArticle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	article, err := m.CreateArticle(ctx, sampleGenerated("Nuovo modello in arrivo"), sampleItem("https://example.com/a"))
	require.NoError(t, err)

	assert.NotZero(t, article.ID)
	assert.Equal(t, "nuovo-modello-in-arrivo", article.Slug)
	assert.Equal(t, "https://example.com/a", article.SourceURL)
	assert.Equal(t, "Example Blog", article.SourceName)
	assert.Equal(t, 4, article.Credibility)
	assert.True(t, article.AIGenerated)
	assert.False(t, article.CreatedAt.IsZero())

	require.NotNil(t, article.Category)
	assert.Equal(t, "LLM", article.Category.Name)
	assert.Equal(t, "llm", article.Category.Slug)
	assert.NotEmpty(t, article.Category.Icon)
}

func TestMemoryCategoryReuse(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.CreateArticle(ctx, sampleGenerated("Primo"), sampleItem("https://example.com/1"))
	require.NoError(t, err)
	second, err := m.CreateArticle(ctx, sampleGenerated("Secondo"), sampleItem("https://example.com/2"))
	require.NoError(t, err)

	assert.Equal(t, first.Category.ID, second.Category.ID)
}

func TestMemorySlugCollision(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.CreateArticle(ctx, sampleGenerated("Stesso titolo"), sampleItem("https://example.com/1"))
	require.NoError(t, err)
	second, err := m.CreateArticle(ctx, sampleGenerated("Stesso titolo"), sampleItem("https://example.com/2"))
	require.NoError(t, err)

	assert.Equal(t, "stesso-titolo", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "stesso-titolo-")
}

func TestMemoryDuplicateSource(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.CreateArticle(ctx, sampleGenerated("Uno"), sampleItem("https://example.com/same"))
	require.NoError(t, err)

	_, err = m.CreateArticle(ctx, sampleGenerated("Due"), sampleItem("https://example.com/same"))
	assert.ErrorIs(t, err, ErrDuplicateSource)
}

func TestMemoryExistsBySource(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	exists, err := m.ExistsBySource(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = m.CreateArticle(ctx, sampleGenerated("Uno"), sampleItem("https://example.com/a"))
	require.NoError(t, err)

	exists, err = m.ExistsBySource(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryListArticlesNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.CreateArticle(ctx, sampleGenerated("Primo"), sampleItem("https://example.com/1"))
	require.NoError(t, err)
	_, err = m.CreateArticle(ctx, sampleGenerated("Secondo"), sampleItem("https://example.com/2"))
	require.NoError(t, err)

	articles, err := m.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Secondo", articles[0].Title)
	assert.Equal(t, "Primo", articles[1].Title)
}

func TestMemoryGetArticlesPreservesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	a, err := m.CreateArticle(ctx, sampleGenerated("Primo"), sampleItem("https://example.com/1"))
	require.NoError(t, err)
	b, err := m.CreateArticle(ctx, sampleGenerated("Secondo"), sampleItem("https://example.com/2"))
	require.NoError(t, err)

	got, err := m.GetArticles(ctx, b.ID, core.ID(9999), a.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Close())

	_, err := m.ExistsBySource(ctx, "https://example.com/a")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = m.CreateArticle(ctx, sampleGenerated("Uno"), sampleItem("https://example.com/a"))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCategoryDefaults(t *testing.T) {
	icon, description := CategoryDefaults(core.CategoryHardware)
	assert.NotEmpty(t, icon)
	assert.NotEmpty(t, description)

	icon, description = CategoryDefaults(core.CategoryLabel("Sconosciuta"))
	assert.Equal(t, defaultCategoryIcon, icon)
	assert.Empty(t, description)
}
