package feeds

import (
	"regexp"
	"strings"
)

// aiKeywords is the curated inclusion set: an item must mention at least
// one of these (case-insensitive, substring) in title+body to survive.
var aiKeywords = []string{
	"artificial intelligence",
	"machine learning",
	"deep learning",
	"neural network",
	"large language model",
	"llm",
	"gpt",
	"chatgpt",
	"claude",
	"gemini",
	"llama",
	"mistral",
	"transformer",
	"fine-tuning",
	"fine tuning",
	"inference",
	"embedding",
	"diffusion model",
	"generative ai",
	"genai",
	"openai",
	"anthropic",
	"hugging face",
	"retrieval-augmented",
	"agentic",
	"multimodal",
}

// excludeKeywords rejects commerce/deal spam and consumer-hardware noise
// that happens to mention AI in passing. Matched as whole words only:
// "deal" must not match "ideal", "ram" must not match "framework".
var excludeKeywords = []string{
	"deal",
	"deals",
	"discount",
	"coupon",
	"sale",
	"best price",
	"black friday",
	"cyber monday",
	"giveaway",
	"smartwatch",
	"smartphone",
	"headphones",
	"earbuds",
	"tv",
	"monitor",
	"laptop",
	"vacuum",
}

var excludePatterns = compileWordPatterns(excludeKeywords)

// compileWordPatterns builds whole-word regexps for each keyword.
// Multi-word keywords match as a literal phrase with word boundaries.
func compileWordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return patterns
}

// IsAIRelated reports whether a feed entry belongs in the archive.
// The exclusion filter wins over the inclusion filter: an item carrying
// any exclusion keyword as a whole word is rejected regardless of
// AI-keyword presence.
func IsAIRelated(title, body string) bool {
	text := title + " " + body

	for _, p := range excludePatterns {
		if p.MatchString(text) {
			return false
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range aiKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
