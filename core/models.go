package core

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Canonical articles carry store-assigned IDs; derived entities use
// content-based hashing so identical content produces identical IDs.
type ID int64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ShortHash returns an 8-character hex digest of the text.
// Used to disambiguate title-derived slugs that would otherwise collide.
func ShortHash(text string) string {
	h, _ := blake2b.New(4, nil)
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// CategoryLabel is one of the closed set of article categories the
// pipeline produces. Anything the classifier does not recognize
// collapses to CategoryOther.
type CategoryLabel string

const (
	CategoryLLM        CategoryLabel = "LLM"
	CategoryFrameworks CategoryLabel = "Frameworks"
	CategoryHardware   CategoryLabel = "Hardware"
	CategoryMarket     CategoryLabel = "Market"
	CategoryOther      CategoryLabel = "Other"
)

// CategoryLabels lists every label the pipeline may emit.
var CategoryLabels = []CategoryLabel{
	CategoryLLM,
	CategoryFrameworks,
	CategoryHardware,
	CategoryMarket,
	CategoryOther,
}

// RawNewsItem is a candidate article pulled from a syndication feed.
// It lives for one fetch cycle and is never persisted as-is.
// Link is the dedup key against the canonical store.
type RawNewsItem struct {
	Title       string
	Text        string
	Link        string
	ImageURL    string
	SourceName  string
	Credibility int // 1-5 trust tier of the originating feed
	Published   time.Time
}

// GeneratedArticle is the model's structured rendition of one RawNewsItem.
// Content and ContentEN are always flat markdown strings; nested model
// output is flattened before this type is constructed.
type GeneratedArticle struct {
	Title     string
	TitleEN   string
	Summary   string
	SummaryEN string
	Content   string
	ContentEN string
	Category  CategoryLabel
}

// Category is a persisted article category.
type Category struct {
	ID          ID
	Name        string
	Slug        string
	Icon        string
	Description string
}

// Article is the durable, deduplicated record owned by the store,
// keyed by a unique slug and a unique source URL.
type Article struct {
	ID          ID
	Title       string
	TitleEN     string
	Slug        string
	Summary     string
	SummaryEN   string
	Content     string
	ContentEN   string
	Category    *Category
	SourceURL   string
	SourceName  string
	Credibility int
	ImageURL    string
	AIGenerated bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryName returns the category name, or a fallback when the
// article has no category resolved.
func (a *Article) CategoryName() string {
	if a.Category == nil {
		return "Generale"
	}
	return a.Category.Name
}

// GlossaryTerm is a terminology override: a literal translation the
// model must avoid and the domain-preferred term to use instead.
type GlossaryTerm struct {
	Banned    string
	Preferred string
}

// AnswerResult is a grounded answer to a user question, together with
// the articles it cites in relevance order. Constructed per request.
type AnswerResult struct {
	Question string
	Answer   string
	Sources  []*Article
}
