package synthesis

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// contentValue is the tagged variant for the model's "content" field,
// which arrives either as a markdown string or, in a known failure mode,
// as a nested object. The ambiguity is resolved here, at the parse
// boundary, and never leaks further.
type contentValue struct {
	text       string
	structured map[string]any
}

// decodeContent interprets a raw JSON value as a contentValue.
// Scalars other than strings are stringified.
func decodeContent(raw json.RawMessage) contentValue {
	if len(raw) == 0 {
		return contentValue{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return contentValue{text: s}
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err == nil {
		return contentValue{structured: m}
	}

	var v any
	if err := json.Unmarshal(raw, &v); err == nil && v != nil {
		return contentValue{text: fmt.Sprint(v)}
	}

	return contentValue{}
}

// flatten converts the variant into a renderable markdown string.
// Structured content flattens deterministically: each top-level key
// becomes a "## Title Case" heading, nested map values become "### "
// sub-headings, and remaining scalars are stringified and appended.
// Keys are emitted in sorted order so the output is stable.
func (v contentValue) flatten() string {
	if v.structured == nil {
		return strings.TrimSpace(v.text)
	}

	var parts []string
	for _, key := range sortedKeys(v.structured) {
		parts = append(parts, "## "+titleCase(key))
		switch value := v.structured[key].(type) {
		case map[string]any:
			for _, subkey := range sortedKeys(value) {
				parts = append(parts, "### "+titleCase(subkey))
				parts = append(parts, scalarText(value[subkey]))
			}
		default:
			parts = append(parts, scalarText(value))
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase renders a JSON key as a heading: underscores become spaces
// and each word is capitalized.
func titleCase(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// scalarText stringifies a leaf value, trimming stray quote runs that
// models sometimes wrap long values in.
func scalarText(v any) string {
	return strings.Trim(strings.TrimSpace(fmt.Sprint(v)), `"`)
}
