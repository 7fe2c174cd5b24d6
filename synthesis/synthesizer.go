// Copyright 2025 Osservatorio AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/osservatorio/observer/ai"
	"github.com/osservatorio/observer/core"
)

// generatedPayload mirrors the JSON contract the prompt demands.
// Content fields stay raw so the string/object ambiguity can be
// resolved after decoding.
type generatedPayload struct {
	Title     string          `json:"title"`
	TitleEN   string          `json:"title_en"`
	Summary   string          `json:"summary"`
	SummaryEN string          `json:"summary_en"`
	Content   json.RawMessage `json:"content"`
	ContentEN json.RawMessage `json:"content_en"`
	Category  string          `json:"category"`
}

// Synthesizer turns raw news items into curated articles through a
// generative model. It is stateless apart from its collaborators and
// safe for concurrent use.
type Synthesizer struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewSynthesizer creates a Synthesizer. A nil logger falls back to
// slog.Default.
func NewSynthesizer(generator ai.Generator, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		generator: generator,
		logger:    logger.With("component", "synthesizer"),
	}
}

// Synthesize produces a curated article from one raw item. The glossary
// is rendered into the system prompt; an empty one falls back to
// DefaultGlossary. A failure is always a *Error: KindTransport when the
// model was unreachable, KindMalformed when its output could not be
// recovered into a valid article. One model call per item; retrying is
// the caller's policy.
func (s *Synthesizer) Synthesize(ctx context.Context, item *core.RawNewsItem, glossary []core.GlossaryTerm) (*core.GeneratedArticle, error) {
	if len(glossary) == 0 {
		glossary = DefaultGlossary
	}

	raw, err := s.generator.Generate(ctx, systemPrompt(glossary), buildNewsPrompt(item))
	if err != nil {
		return nil, transportError(err)
	}

	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return nil, malformedError(raw, err)
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return nil, malformedError(raw, fmt.Errorf("decode JSON block: %w", err))
	}

	article := &core.GeneratedArticle{
		Title:     payload.Title,
		TitleEN:   payload.TitleEN,
		Summary:   payload.Summary,
		SummaryEN: payload.SummaryEN,
		Content:   decodeContent(payload.Content).flatten(),
		ContentEN: decodeContent(payload.ContentEN).flatten(),
		Category:  NormalizeCategory(payload.Category),
	}

	if err := core.ValidateGeneratedArticle(article); err != nil {
		return nil, malformedError(raw, err)
	}

	s.logger.Debug("synthesized article",
		"source", item.SourceName,
		"category", article.Category)
	return article, nil
}
