package index

import (
	"fmt"

	"github.com/osservatorio/observer/core"
)

// Entry is one indexed article: the embedded document plus the metadata
// surfaced with query hits. Entries are immutable once built; a rebuild
// replaces the whole set.
type Entry struct {
	ArticleID core.ID   `json:"article_id"`
	Vector    []float32 `json:"vector"`
	Document  string    `json:"document"`
	Metadata  Metadata  `json:"metadata"`
}

// Metadata carries display fields alongside the vector.
type Metadata struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Document renders the text that gets embedded for an article.
func Document(article *core.Article) string {
	return fmt.Sprintf("%s\n\n%s", article.Title, article.Content)
}

// newEntry builds an unembedded entry for an article.
func newEntry(article *core.Article) *Entry {
	category := ""
	if article.Category != nil {
		category = article.Category.Name
	}
	return &Entry{
		ArticleID: article.ID,
		Document:  Document(article),
		Metadata: Metadata{
			Slug:     article.Slug,
			Title:    article.Title,
			Category: category,
		},
	}
}
