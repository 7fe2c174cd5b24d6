package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify converts a title into a URL-safe slug: lowercase ASCII,
// accents stripped, runs of non-alphanumerics collapsed to single hyphens.
func Slugify(title string) string {
	// Strip diacritics (è -> e) before dropping non-ASCII
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// SlugWithSuffix appends a short content-hash of the discriminator to a
// slug. Used when two differently-sourced articles derive the same slug
// from their titles: the source link keeps them distinct.
func SlugWithSuffix(slug, discriminator string) string {
	return slug + "-" + ShortHash(discriminator)
}
