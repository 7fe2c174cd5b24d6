package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("https://example.com/article")
		id2 := IDFromContent("https://example.com/article")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different ID", func(t *testing.T) {
		id1 := IDFromContent("https://example.com/a")
		id2 := IDFromContent("https://example.com/b")
		assert.NotEqual(t, id1, id2)
	})
}

func TestShortHash(t *testing.T) {
	h := ShortHash("https://example.com/article")

	assert.Len(t, h, 8)
	assert.Equal(t, h, ShortHash("https://example.com/article"))
	assert.NotEqual(t, h, ShortHash("https://example.com/other"))
}

func TestArticleCategoryName(t *testing.T) {
	t.Run("with category", func(t *testing.T) {
		a := &Article{Category: &Category{Name: "LLM"}}
		assert.Equal(t, "LLM", a.CategoryName())
	})

	t.Run("without category falls back", func(t *testing.T) {
		a := &Article{}
		assert.Equal(t, "Generale", a.CategoryName())
	})
}
