package ingest

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osservatorio/observer/ai/mock"
	"github.com/osservatorio/observer/core"
	"github.com/osservatorio/observer/store"
	"github.com/osservatorio/observer/synthesis"
)

// stubFetcher returns a fixed item list.
type stubFetcher struct {
	items []*core.RawNewsItem
}

func (s *stubFetcher) Fetch(ctx context.Context) []*core.RawNewsItem {
	return s.items
}

// stubIndexer records rebuilds and can be made to fail.
type stubIndexer struct {
	rebuilds    int
	lastSnaphot []*core.Article
	err         error
}

func (s *stubIndexer) Rebuild(ctx context.Context, articles []*core.Article) error {
	if s.err != nil {
		return s.err
	}
	s.rebuilds++
	s.lastSnaphot = articles
	return nil
}

func rawItem(link, title string) *core.RawNewsItem {
	return &core.RawNewsItem{
		Title:       title,
		Text:        "Body text for " + title,
		Link:        link,
		SourceName:  "Example Blog",
		Credibility: 4,
	}
}

func newTestPipeline(t *testing.T, fetcher Fetcher, st store.Store, gen *mock.MockGenerator, indexer Indexer) *Pipeline {
	t.Helper()
	p, err := NewPipeline(fetcher, st, synthesis.NewSynthesizer(gen, nil), indexer)
	require.NoError(t, err)
	return p
}

func TestRunCycleEndToEnd(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return `{"title":"T","summary":"S","content":"## A\n\nB","category":"LLM"}`, nil
	}
	indexer := &stubIndexer{}

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/a", "First news"),
	}}, st, gen, indexer)

	stats, err := p.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Fetched)
	assert.Equal(t, 1, stats.Created)
	assert.Zero(t, stats.Failed)
	assert.True(t, stats.Reindexed)

	articles, err := st.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "T", articles[0].Title)
	assert.Equal(t, "## A\n\nB", articles[0].Content)
	assert.Equal(t, "llm", articles[0].Category.Slug)

	assert.Equal(t, 1, indexer.rebuilds)
	require.Len(t, indexer.lastSnaphot, 1)
	assert.Equal(t, articles[0].ID, indexer.lastSnaphot[0].ID)
}

func TestRunCycleSkipsExistingArticles(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	gen := mock.NewMockGenerator()
	indexer := &stubIndexer{}

	_, err := st.CreateArticle(ctx,
		&core.GeneratedArticle{Title: "Già presente", Content: "C", Category: core.CategoryLLM},
		rawItem("https://example.com/dup", "Old news"))
	require.NoError(t, err)

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/dup", "Old news"),
	}}, st, gen, indexer)

	stats, err := p.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Zero(t, stats.Created)
	assert.Zero(t, gen.CallCount(), "known items must not reach the model")
	assert.Zero(t, indexer.rebuilds, "nothing new, no rebuild")
}

func TestRunCycleSkipAndContinueOnItemFailure(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	indexer := &stubIndexer{}

	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		// The first item produces garbage, the second a valid article.
		if strings.Contains(userPrompt, "Broken news") {
			return "non risponderò mai in JSON", nil
		}
		return `{"title":"Buono","summary":"S","content":"C","category":"Other"}`, nil
	}

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/bad", "Broken news"),
		rawItem("https://example.com/good", "Good news"),
	}}, st, gen, indexer)

	stats, err := p.RunCycle(ctx)
	require.NoError(t, err, "a failing item must never abort the cycle")

	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Created)

	articles, err := st.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Buono", articles[0].Title)
}

func TestRunCycleTransportFailureAllItems(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	indexer := &stubIndexer{}

	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "", errors.New("connection refused")
	}

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/1", "One"),
		rawItem("https://example.com/2", "Two"),
	}}, st, gen, indexer)

	stats, err := p.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Failed)
	assert.Zero(t, stats.Created)
	assert.Zero(t, indexer.rebuilds)
}

func TestRunCycleRebuildFailureDoesNotFailCycle(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	indexer := &stubIndexer{err: errors.New("embedder down")}

	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return `{"title":"T","summary":"S","content":"C","category":"LLM"}`, nil
	}

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/a", "News"),
	}}, st, gen, indexer)

	stats, err := p.RunCycle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Created, "the article is persisted even when indexing fails")
	assert.False(t, stats.Reindexed)
}

func TestRunCycleGlossaryFromStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	st.SetGlossary([]core.GlossaryTerm{{Banned: "trasformatore", Preferred: "transformer"}})
	indexer := &stubIndexer{}

	var sawGlossary bool
	gen := mock.NewMockGenerator()
	gen.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		sawGlossary = strings.Contains(systemPrompt, "| trasformatore | transformer |")
		return `{"title":"T","summary":"S","content":"C","category":"LLM"}`, nil
	}

	p := newTestPipeline(t, &stubFetcher{items: []*core.RawNewsItem{
		rawItem("https://example.com/a", "News"),
	}}, st, gen, indexer)

	_, err := p.RunCycle(ctx)
	require.NoError(t, err)
	assert.True(t, sawGlossary, "store glossary must reach the system prompt")
}

func TestNewPipelineValidation(t *testing.T) {
	st := store.NewMemory()
	gen := mock.NewMockGenerator()
	synth := synthesis.NewSynthesizer(gen, nil)
	fetcher := &stubFetcher{}
	indexer := &stubIndexer{}

	_, err := NewPipeline(nil, st, synth, indexer)
	assert.ErrorIs(t, err, ErrFetcherRequired)
	_, err = NewPipeline(fetcher, nil, synth, indexer)
	assert.ErrorIs(t, err, ErrStoreRequired)
	_, err = NewPipeline(fetcher, st, nil, indexer)
	assert.ErrorIs(t, err, ErrSynthesizerRequired)
	_, err = NewPipeline(fetcher, st, synth, nil)
	assert.ErrorIs(t, err, ErrIndexerRequired)
}

func TestSchedulerDisabled(t *testing.T) {
	st := store.NewMemory()
	gen := mock.NewMockGenerator()
	p := newTestPipeline(t, &stubFetcher{}, st, gen, &stubIndexer{})

	s := NewScheduler(p, 0, nil)
	assert.False(t, s.Enabled())

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled scheduler must return immediately")
	}
}

// countingFetcher counts Fetch invocations.
type countingFetcher struct {
	calls atomic.Int32
}

func (c *countingFetcher) Fetch(ctx context.Context) []*core.RawNewsItem {
	c.calls.Add(1)
	return nil
}

func TestSchedulerRunsCycles(t *testing.T) {
	st := store.NewMemory()
	gen := mock.NewMockGenerator()
	fetcher := &countingFetcher{}

	p, err := NewPipeline(fetcher, st, synthesis.NewSynthesizer(gen, nil), &stubIndexer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(p, 5*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return fetcher.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	<-done
}
