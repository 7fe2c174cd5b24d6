package feeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAIRelated(t *testing.T) {
	tests := []struct {
		name  string
		title string
		body  string
		want  bool
	}{
		{
			name:  "AI keyword in title",
			title: "OpenAI releases new model",
			body:  "The company announced a large language model today.",
			want:  true,
		},
		{
			name:  "AI keyword in body only",
			title: "A quiet week in tech",
			body:  "Except for one machine learning paper that changed everything.",
			want:  true,
		},
		{
			name:  "no AI keywords at all",
			title: "New espresso machines reviewed",
			body:  "We tasted forty shots so you don't have to.",
			want:  false,
		},
		{
			name:  "exclusion wins over inclusion",
			title: "Best GPU deal for machine learning",
			body:  "This large language model rig is 30% off.",
			want:  false,
		},
		{
			name:  "deal does not match ideal",
			title: "The ideal architecture for LLM inference",
			body:  "A deep dive into transformer serving.",
			want:  true,
		},
		{
			name:  "sale as whole word excluded",
			title: "Flash sale on AI-powered earbuds",
			body:  "Generative AI in your ears.",
			want:  false,
		},
		{
			name:  "monitor as peripheral excluded",
			title: "This 4K monitor has an AI chip",
			body:  "Machine learning enhanced upscaling.",
			want:  false,
		},
		{
			name:  "case-insensitive inclusion",
			title: "ANTHROPIC ships a new API",
			body:  "Details inside.",
			want:  true,
		},
		{
			name:  "empty input",
			title: "",
			body:  "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAIRelated(tt.title, tt.body))
		})
	}
}
