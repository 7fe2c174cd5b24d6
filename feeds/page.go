package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

// maxPageBytes caps how much of an article page we are willing to read
// when scraping for images or full text.
const maxPageBytes = 2 << 20 // 2 MiB

// pageScraper fetches article pages and extracts enrichment data:
// a high-resolution image candidate and, for thin feed summaries, the
// readable article body. Every method degrades to the zero value on
// failure; scraping never fails an item.
type pageScraper struct {
	client *http.Client
}

func newPageScraper(client *http.Client) *pageScraper {
	return &pageScraper{client: client}
}

// fetch retrieves the page HTML, bounded by the client timeout and maxPageBytes.
func (s *pageScraper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPageFetch, err)
	}
	req.Header.Set("User-Agent", "osservatorio-observer/1.0 (+https://github.com/osservatorio/observer)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrPageFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPageFetch, err)
	}
	return string(body), nil
}

// imageFromHTML pulls the best image candidate out of page metadata:
// Open Graph first, then Twitter cards, then the first content image.
func imageFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, sel := range []string{
		`meta[property="og:image"]`,
		`meta[property="og:image:url"]`,
		`meta[name="twitter:image"]`,
		`meta[name="twitter:image:src"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if u := strings.TrimSpace(content); u != "" {
				return u
			}
		}
	}

	// Fall back to the first plausible hero image in the document body.
	var hero string
	doc.Find("article img, main img, img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok {
			return true
		}
		src = strings.TrimSpace(src)
		if !strings.HasPrefix(src, "http") {
			return true
		}
		// Skip tracking pixels and icons
		if strings.Contains(src, "pixel") || strings.Contains(src, "icon") || strings.HasSuffix(src, ".svg") {
			return true
		}
		hero = src
		return false
	})
	return hero
}

// textFromHTML extracts the readable article body from page HTML.
func textFromHTML(html string) string {
	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}

// imageFromFeedItem extracts an image candidate from feed-level metadata:
// the item image, image enclosures, then media-RSS thumbnails/contents.
func imageFromFeedItem(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"thumbnail", "content"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}

	return ""
}
