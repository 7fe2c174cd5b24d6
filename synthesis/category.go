package synthesis

import (
	"strings"

	"github.com/osservatorio/observer/core"
)

// categoryKeywords maps lowercase substrings to canonical labels, checked
// in order. This is a deliberately lossy best-effort classifier: labels
// the table does not anticipate collapse silently to CategoryOther.
var categoryKeywords = []struct {
	substr string
	label  core.CategoryLabel
}{
	{"llm", core.CategoryLLM},
	{"language model", core.CategoryLLM},
	{"frame", core.CategoryFrameworks},
	{"hard", core.CategoryHardware},
	{"gpu", core.CategoryHardware},
	{"mini", core.CategoryHardware},
	{"market", core.CategoryMarket},
	{"mercato", core.CategoryMarket},
}

// NormalizeCategory collapses the model's free-form category string onto
// the closed label set by case-insensitive substring matching.
func NormalizeCategory(raw string) core.CategoryLabel {
	cat := strings.ToLower(strings.TrimSpace(raw))
	if cat == "" {
		return core.CategoryOther
	}

	for _, entry := range categoryKeywords {
		if strings.Contains(cat, entry.substr) {
			return entry.label
		}
	}
	return core.CategoryOther
}
