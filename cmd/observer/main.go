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

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/osservatorio/observer/ai"
	"github.com/osservatorio/observer/ai/ollama"
	"github.com/osservatorio/observer/api"
	"github.com/osservatorio/observer/config"
	"github.com/osservatorio/observer/feeds"
	"github.com/osservatorio/observer/index"
	"github.com/osservatorio/observer/ingest"
	"github.com/osservatorio/observer/rag"
	"github.com/osservatorio/observer/store"
	"github.com/osservatorio/observer/store/postgres"
	"github.com/osservatorio/observer/synthesis"
)

func main() {
	app := &cli.App{
		Name:   "observer",
		Usage:  "AI news observatory: feed ingestion, article synthesis, and archive Q&A",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Run one ingestion cycle and exit",
				Action: ingestCommand,
			},
			{
				Name:   "serve",
				Usage:  "Rebuild the index, start the scheduler, and serve HTTP",
				Action: serveCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the vector index from the article archive",
				Action: reindexCommand,
			},
			{
				Name:      "ask",
				Usage:     "Ask a question against the archive",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// services bundles the wired application components.
type services struct {
	cfg      *config.Config
	provider ai.Provider
	store    store.Store
	manager  *index.Manager
	pipeline *ingest.Pipeline
	answerer *rag.Answerer
}

func (s *services) Close() {
	if s.manager != nil {
		if err := s.manager.Close(); err != nil {
			slog.Warn("failed to close index", "error", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
	if s.provider != nil {
		_ = s.provider.Close()
	}
}

func buildServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(cfg.OllamaHost),
		ai.WithGeneratorModel(cfg.GeneratorModel),
		ai.WithEmbeddingModel(cfg.EmbeddingModel),
		ai.WithTemperature(cfg.Temperature),
		ai.WithTimeout(cfg.ModelTimeout),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model configuration: %w", err)
	}

	provider, err := ollama.NewProvider(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("create model provider: %w", err)
	}

	s := &services{cfg: cfg, provider: provider}

	if cfg.PostgresDSN != "" {
		pg, err := postgres.Open(ctx, postgres.Config{DSN: cfg.PostgresDSN})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open article store: %w", err)
		}
		s.store = pg
	} else {
		slog.Warn("no POSTGRES_DSN configured, using in-memory store")
		s.store = store.NewMemory()
	}

	indexOpts := []index.Option{index.WithBatchSize(cfg.IndexBatchSize)}
	if cfg.IndexPoolSize > 0 {
		indexOpts = append(indexOpts, index.WithPoolSize(cfg.IndexPoolSize))
	}
	manager, err := index.NewManager(cfg.IndexPath, provider.Embedder(), indexOpts...)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("open vector index: %w", err)
	}
	s.manager = manager

	fetcher, err := feeds.NewFetcher(feeds.DefaultSources,
		feeds.WithPerFeedLimit(cfg.PerFeedLimit),
		feeds.WithLookback(cfg.LookbackDays),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("create fetcher: %w", err)
	}

	synthesizer := synthesis.NewSynthesizer(provider.Generator(), nil)
	pipeline, err := ingest.NewPipeline(fetcher, s.store, synthesizer, manager)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	s.pipeline = pipeline

	s.answerer = rag.NewAnswerer(manager, s.store, provider.Generator(),
		rag.WithTopK(cfg.AnswerTopK))

	return s, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	s, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.pipeline.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("ingestion cycle failed: %w", err)
	}

	fmt.Printf("Fetched %d items: %d created, %d skipped, %d failed.\n",
		stats.Fetched, stats.Created, stats.Skipped, stats.Failed)
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	s, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.pipeline.Reindex(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	fmt.Printf("Index rebuilt: %d entries.\n", s.manager.Size())
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: observer ask <question>")
	}

	ctx := context.Background()

	s, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.answerer.Answer(ctx, question)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	fmt.Println(result.Answer)
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	s, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	// One rebuild before traffic so queries see the current archive.
	if err := s.pipeline.Reindex(ctx); err != nil {
		return fmt.Errorf("startup index rebuild failed: %w", err)
	}
	slog.Info("startup index rebuild complete", "entries", s.manager.Size())

	scheduler := ingest.NewScheduler(s.pipeline, s.cfg.IngestInterval, nil)
	go scheduler.Run(ctx)

	server := api.NewServer(s.answerer, nil)
	httpServer := &http.Server{
		Addr:              s.cfg.BindAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", s.cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", "error", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
