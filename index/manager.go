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

package index

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/osservatorio/observer/ai"
	"github.com/osservatorio/observer/core"
)

const (
	defaultBatchSize  = 16
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second
)

// generation is one immutable snapshot of the index.
type generation struct {
	num     uint64
	entries []*Entry
}

// Manager owns the live index generation and its durable copy.
// Query and Rebuild are safe to call concurrently.
type Manager struct {
	coll     *collection
	embedder ai.Embedder
	pool     *ants.Pool
	logger   *slog.Logger

	batchSize  int
	maxRetries int
	retryDelay time.Duration

	mu  sync.RWMutex
	gen *generation
}

// Option configures a Manager.
type Option func(*Manager) error

// WithPoolSize sets the embedding worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(m *Manager) error {
		if size < 1 {
			size = 1
		}
		if m.pool != nil {
			m.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		m.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded per model call.
func WithBatchSize(size int) Option {
	return func(m *Manager) error {
		if size < 1 {
			size = 1
		}
		m.batchSize = size
		return nil
	}
}

// WithRetry sets the retry policy for embedding calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(m *Manager) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		m.maxRetries = maxAttempts
		m.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewManager opens the index collection at path (empty path for
// in-memory) and loads the persisted generation, so queries can be
// served before the first rebuild.
func NewManager(path string, embedder ai.Embedder, opts ...Option) (*Manager, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	m := &Manager{
		embedder:   embedder,
		logger:     slog.Default(),
		batchSize:  defaultBatchSize,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			if m.pool != nil {
				m.pool.Release()
			}
			return nil, err
		}
	}
	m.logger = m.logger.With("component", "index")

	if m.pool == nil {
		size := runtime.NumCPU() / 2
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return nil, err
		}
		m.pool = pool
	}

	coll, err := openCollection(path, m.logger)
	if err != nil {
		m.pool.Release()
		return nil, err
	}
	m.coll = coll

	num, entries, err := coll.loadCurrent()
	if err != nil {
		m.pool.Release()
		_ = coll.close()
		return nil, fmt.Errorf("load persisted index: %w", err)
	}
	m.gen = &generation{num: num, entries: entries}
	if len(entries) > 0 {
		m.logger.Info("loaded persisted index", "generation", num, "entries", len(entries))
	}

	return m, nil
}

// Size returns the number of entries in the live generation.
func (m *Manager) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.gen.entries)
}

// Rebuild embeds every article and atomically replaces the live
// generation with the result. All-or-nothing: on any failure the
// previous generation stays live and a *RebuildError is returned.
func (m *Manager) Rebuild(ctx context.Context, articles []*core.Article) error {
	started := time.Now()

	entries := make([]*Entry, len(articles))
	for i, article := range articles {
		entries[i] = newEntry(article)
	}

	if err := m.embedAll(ctx, entries); err != nil {
		return &RebuildError{Err: err}
	}

	m.mu.RLock()
	nextNum := m.gen.num + 1
	m.mu.RUnlock()

	if err := m.coll.writeGeneration(nextNum, entries); err != nil {
		return &RebuildError{Err: fmt.Errorf("persist generation %d: %w", nextNum, err)}
	}

	m.mu.Lock()
	m.gen = &generation{num: nextNum, entries: entries}
	m.mu.Unlock()

	m.coll.pruneStale(nextNum)

	m.logger.Info("index rebuilt",
		"generation", nextNum,
		"entries", len(entries),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}

// embedAll fills the Vector field of every entry, batching calls over
// the worker pool and retrying each batch with backoff.
func (m *Manager) embedAll(ctx context.Context, entries []*Entry) error {
	if len(entries) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	for start := 0; start < len(entries); start += m.batchSize {
		end := start + m.batchSize
		if end > len(entries) {
			end = len(entries)
		}
		batch := entries[start:end]

		wg.Add(1)
		submitErr := m.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, entry := range batch {
				texts[i] = entry.Document
			}

			var vectors [][]float32
			err := retryWithBackoff(ctx, func() error {
				var err error
				vectors, err = m.embedder.EmbedTexts(ctx, texts)
				return err
			}, m.maxRetries, m.retryDelay)
			if err != nil {
				fail(fmt.Errorf("embed batch after %d attempts: %w", m.maxRetries, err))
				return
			}
			if len(vectors) != len(batch) {
				fail(fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(vectors)))
				return
			}

			for i, entry := range batch {
				entry.Vector = normalizeVector(vectors[i])
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(submitErr)
		}
	}

	wg.Wait()
	return firstErr
}

// Query embeds the question and returns the IDs of the topK most
// relevant articles in descending relevance. An empty index yields an
// empty result without calling the model, never an error.
func (m *Manager) Query(ctx context.Context, question string, topK int) ([]core.ID, error) {
	m.mu.RLock()
	entries := m.gen.entries
	m.mu.RUnlock()

	if len(entries) == 0 || topK <= 0 {
		return nil, nil
	}

	vector, err := m.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	vector = normalizeVector(vector)

	type hit struct {
		id    core.ID
		score float32
	}
	hits := make([]hit, 0, len(entries))
	for _, entry := range entries {
		hits = append(hits, hit{id: entry.ArticleID, score: dotProduct(vector, entry.Vector)})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > topK {
		hits = hits[:topK]
	}

	ids := make([]core.ID, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids, nil
}

// Close releases the worker pool and the underlying database.
func (m *Manager) Close() error {
	m.pool.Release()
	return m.coll.close()
}
