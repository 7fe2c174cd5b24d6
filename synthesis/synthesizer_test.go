package synthesis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osservatorio/observer/ai/mock"
	"github.com/osservatorio/observer/core"
)

func testItem() *core.RawNewsItem {
	return &core.RawNewsItem{
		Title:       "New model released",
		Text:        "A new language model was released today with improved reasoning.",
		Link:        "https://example.com/news/new-model",
		SourceName:  "Example Blog",
		Credibility: 5,
	}
}

func TestSynthesizeHappyPath(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		// The model must see both the glossary table and the raw item.
		assert.Contains(t, systemPrompt, "GLOSSARIO OBBLIGATORIO")
		assert.Contains(t, systemPrompt, "Modelli di linguaggio grande")
		assert.Contains(t, userPrompt, "New model released")
		assert.Contains(t, userPrompt, "Example Blog")

		return "Ecco l'articolo:\n```json\n" +
			`{"title":"Nuovo modello","title_en":"New model",` +
			`"summary":"Sommario.","summary_en":"Summary.",` +
			`"content":"## Novità\n\nTesto.","content_en":"## News\n\nText.",` +
			`"category":"llm-news",}` + "\n```", nil
	}

	s := NewSynthesizer(gen, nil)
	article, err := s.Synthesize(context.Background(), testItem(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Nuovo modello", article.Title)
	assert.Equal(t, "New model", article.TitleEN)
	assert.Equal(t, "## Novità\n\nTesto.", article.Content)
	assert.Equal(t, core.CategoryLLM, article.Category)
	assert.Equal(t, 1, gen.CallCount())
}

func TestSynthesizeFlattensNestedContent(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return `{"title":"T","content":{"intro":{"body":"x"}},"category":"Other"}`, nil
	}

	s := NewSynthesizer(gen, nil)
	article, err := s.Synthesize(context.Background(), testItem(), nil)
	require.NoError(t, err)
	assert.Equal(t, "## Intro\n\n### Body\n\nx", article.Content)
}

func TestSynthesizeTransportError(t *testing.T) {
	wantErr := errors.New("connection refused")
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "", wantErr
	}

	s := NewSynthesizer(gen, nil)
	_, err := s.Synthesize(context.Background(), testItem(), nil)
	require.Error(t, err)

	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, se.Kind)
	assert.Empty(t, se.RawResponse)
	assert.ErrorIs(t, err, wantErr)
}

func TestSynthesizeMalformedOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no JSON at all", "Mi dispiace, non posso aiutarti."},
		{"unbalanced braces", `{"title":"T","content":"C"`},
		{"missing required fields", `{"summary":"solo un sommario","category":"LLM"}`},
		{"empty content", `{"title":"T","content":"","category":"LLM"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := mock.NewMockGenerator()
			gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
				return tt.response, nil
			}

			s := NewSynthesizer(gen, nil)
			_, err := s.Synthesize(context.Background(), testItem(), nil)
			require.Error(t, err)

			se, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, KindMalformed, se.Kind)
			assert.Equal(t, tt.response, se.RawResponse)
		})
	}
}

func TestSynthesizeUnknownCategoryFallsBackToOther(t *testing.T) {
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return `{"title":"T","content":"C","category":"robotics"}`, nil
	}

	s := NewSynthesizer(gen, nil)
	article, err := s.Synthesize(context.Background(), testItem(), nil)
	require.NoError(t, err)
	assert.Equal(t, core.CategoryOther, article.Category)
}

func TestSynthesizeCustomGlossary(t *testing.T) {
	glossary := []core.GlossaryTerm{{Banned: "vietato", Preferred: "ok"}}

	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		assert.Contains(t, systemPrompt, "| vietato | ok |")
		assert.NotContains(t, systemPrompt, "Modelli di linguaggio grande")
		return `{"title":"T","content":"C","category":"LLM"}`, nil
	}

	s := NewSynthesizer(gen, nil)
	_, err := s.Synthesize(context.Background(), testItem(), glossary)
	require.NoError(t, err)
}
