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

package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/osservatorio/observer/ai"
	"github.com/osservatorio/observer/core"
	"github.com/osservatorio/observer/store"
)

const defaultTopK = 4

// NoArchiveAnswer is returned when retrieval finds nothing to ground an
// answer on. No model call is made in that case.
const NoArchiveAnswer = "Per ora non ho abbastanza articoli in archivio per rispondere in modo serio. " +
	"Appena l'Observer avrà un po' più di storico, potrò collegare meglio i puntini."

const answerPersona = `Sei un analista tecnico ma ironico specializzato in infrastrutture LLM on-prem,
stack locali, framework e hardware.

Ti vengono forniti estratti di articoli dell'archivio interno, indicati tra [1], [2], ...
Usa SOLO queste informazioni come base per la risposta.

ISTRUZIONI:
- Rispondi in italiano.
- Tono: tecchy ma leggibile, leggermente ironico, senza diventare una macchietta.
- Se qualcosa non è coperto dal contesto, dillo esplicitamente invece di inventare.
- Alla fine della risposta aggiungi una riga:
  "Fonti interne: [1] Titolo..., [2] Titolo..., ..."
  usando i titoli degli articoli del contesto.

Rispondi con testo normale, senza JSON.`

// Index is the retrieval surface the answerer needs.
type Index interface {
	Query(ctx context.Context, question string, topK int) ([]core.ID, error)
}

// Answerer produces grounded answers over the archive.
type Answerer struct {
	index     Index
	store     store.Store
	generator ai.Generator
	topK      int
	logger    *slog.Logger
}

// Option configures an Answerer.
type Option func(*Answerer)

// WithTopK sets how many articles are retrieved per question.
func WithTopK(topK int) Option {
	return func(a *Answerer) {
		if topK > 0 {
			a.topK = topK
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Answerer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnswerer creates an Answerer over the given index, store, and model.
func NewAnswerer(idx Index, st store.Store, generator ai.Generator, opts ...Option) *Answerer {
	a := &Answerer{
		index:     idx,
		store:     st,
		generator: generator,
		topK:      defaultTopK,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("component", "answerer")
	return a
}

// Answer retrieves the most relevant articles for the question and asks
// the model for a grounded answer. An empty archive yields the fixed
// fallback text with zero model calls. A model failure propagates
// unchanged; there is never a partial answer.
func (a *Answerer) Answer(ctx context.Context, question string) (*core.AnswerResult, error) {
	ids, err := a.index.Query(ctx, question, a.topK)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	var articles []*core.Article
	if len(ids) > 0 {
		articles, err = a.store.GetArticles(ctx, ids...)
		if err != nil {
			return nil, fmt.Errorf("load cited articles: %w", err)
		}
	}

	if len(articles) == 0 {
		a.logger.Info("no archive context for question, returning fallback")
		return &core.AnswerResult{
			Question: question,
			Answer:   NoArchiveAnswer,
		}, nil
	}

	answer, err := a.generator.Generate(ctx, answerPersona, buildAnswerPrompt(question, articles))
	if err != nil {
		return nil, err
	}

	return &core.AnswerResult{
		Question: question,
		Answer:   strings.TrimSpace(answer),
		Sources:  articles,
	}, nil
}

// buildAnswerPrompt renders the ordinal-cited context block followed by
// the reader's question.
func buildAnswerPrompt(question string, articles []*core.Article) string {
	var parts []string
	for i, article := range articles {
		parts = append(parts, fmt.Sprintf("[%d] Titolo: %s\nCategoria: %s\nContenuto:\n%s\n",
			i+1, article.Title, article.CategoryName(), article.Content))
	}

	return fmt.Sprintf("CONTESTO:\n%s\n\nDOMANDA DELL'UTENTE:\n%s",
		strings.Join(parts, "\n\n"), question)
}
