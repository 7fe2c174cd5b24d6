package feeds

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/osservatorio/observer/core"
)

const (
	defaultPerFeedLimit = 5
	defaultLookbackDays = 7

	// Bodies shorter than this are considered thin summaries worth
	// enriching with a readability pass over the article page.
	minBodyRunes = 300

	// pageTimeout bounds the scrape of one article page. Scraping is
	// best-effort enrichment; a slow page costs at most this long.
	pageTimeout = 10 * time.Second
)

// Fetcher pulls and filters candidate items from the source registry.
// Feeds are scanned lazily, one at a time; there is no persisted cursor,
// so every run re-scans each feed's current entries and relies on the
// dedup gate downstream for idempotence.
type Fetcher struct {
	sources  []Source
	parser   *gofeed.Parser
	scraper  *pageScraper
	perFeed  int
	lookback time.Duration
	logger   *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher) error

// WithPerFeedLimit caps how many entries are considered per feed.
// Default is 5.
func WithPerFeedLimit(limit int) Option {
	return func(f *Fetcher) error {
		if limit < 1 {
			limit = 1
		}
		f.perFeed = limit
		return nil
	}
}

// WithLookback sets the age cutoff in days. Entries older than this are
// dropped when the feed carries publish timestamps. Default is 7 days.
func WithLookback(days int) Option {
	return func(f *Fetcher) error {
		if days < 1 {
			days = 1
		}
		f.lookback = time.Duration(days) * 24 * time.Hour
		return nil
	}
}

// WithHTTPClient sets the client used for both feed parsing and page
// scraping. Primarily for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) error {
		f.parser.Client = client
		f.scraper = newPageScraper(client)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFetcher creates a fetcher over the given source registry.
func NewFetcher(sources []Source, opts ...Option) (*Fetcher, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	f := &Fetcher{
		sources:  sources,
		parser:   gofeed.NewParser(),
		scraper:  newPageScraper(&http.Client{Timeout: pageTimeout}),
		perFeed:  defaultPerFeedLimit,
		lookback: defaultLookbackDays * 24 * time.Hour,
		logger:   slog.Default().With("component", "fetcher"),
	}
	f.parser.Client = &http.Client{Timeout: pageTimeout}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Fetch scans every registered feed and returns the candidate items that
// survive filtering. A feed that fails to parse is logged and skipped;
// Fetch itself never fails.
func (f *Fetcher) Fetch(ctx context.Context) []*core.RawNewsItem {
	cutoff := time.Now().Add(-f.lookback)
	var items []*core.RawNewsItem

	for _, source := range f.sources {
		feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
		if err != nil {
			f.logger.Warn("skipping unreadable feed", "feed", source.URL, "err", err)
			continue
		}

		count := 0
		for _, entry := range feed.Items {
			if count >= f.perFeed {
				break
			}
			item := f.buildItem(ctx, source, entry, cutoff)
			if item == nil {
				continue
			}
			items = append(items, item)
			count++
		}
		f.logger.Info("scanned feed", "feed", source.URL, "kept", count, "total", len(feed.Items))
	}

	return items
}

// buildItem converts one feed entry into a RawNewsItem, or nil when the
// entry is filtered out.
func (f *Fetcher) buildItem(ctx context.Context, source Source, entry *gofeed.Item, cutoff time.Time) *core.RawNewsItem {
	title := strings.TrimSpace(entry.Title)
	link := strings.TrimSpace(entry.Link)

	// Prefer the richer of the content block vs the summary.
	body := entry.Content
	if len(strings.TrimSpace(entry.Description)) > len(strings.TrimSpace(body)) {
		body = entry.Description
	}
	text := strings.TrimSpace(stripHTML(body))

	if title == "" || text == "" || link == "" {
		return nil
	}

	published := time.Time{}
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
		if published.Before(cutoff) {
			return nil
		}
	}

	if !IsAIRelated(title, text) {
		return nil
	}

	// Page HTML is fetched at most once per item and shared between
	// full-text enrichment and image scraping.
	var pageHTML string
	pageFetched := false
	fetchPage := func() string {
		if !pageFetched {
			pageFetched = true
			html, err := f.scraper.fetch(ctx, link)
			if err != nil {
				f.logger.Debug("page scrape failed", "link", link, "err", err)
				return ""
			}
			pageHTML = html
		}
		return pageHTML
	}

	if len([]rune(text)) < minBodyRunes {
		if full := textFromHTML(fetchPage()); len(full) > len(text) {
			text = full
		}
	}

	image := imageFromFeedItem(entry)
	if image == "" {
		image = imageFromHTML(fetchPage())
	}

	return &core.RawNewsItem{
		Title:       title,
		Text:        text,
		Link:        link,
		ImageURL:    image,
		SourceName:  source.Name,
		Credibility: source.Credibility,
		Published:   published,
	}
}

// stripHTML reduces an HTML fragment to its text content.
// Returns the input unchanged when it does not parse.
func stripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
