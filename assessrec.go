// Copyright 2025 Poiesic Systems
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


package assessrec

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/ai/lexical"
	"github.com/poiesic/assessrec/ai/openai"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/recommend"
	"github.com/poiesic/assessrec/storage"
	"github.com/poiesic/assessrec/storage/badger"
)

// System bundles the embedder chain, the recommendation engine, and the
// optional snapshot store behind one handle.
type System struct {
	engine   *recommend.Engine
	embedder *ai.CachingEmbedder
	store    storage.SnapshotStore
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig    *ai.Config
	remoteOnly  bool
	storePath   string
	memoryStore bool
	engineOpts  []recommend.Option
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithoutFallback disables the lexical fallback embedder, so provider
// failures surface as errors instead of degraded results.
func WithoutFallback() SystemOption {
	return func(o *systemOptions) {
		o.remoteOnly = true
	}
}

// WithSnapshotPath enables snapshot persistence at the given BadgerDB
// directory. NewSystem warm-starts from a stored snapshot when one exists.
func WithSnapshotPath(path string) SystemOption {
	return func(o *systemOptions) {
		o.storePath = path
	}
}

// WithMemoryStore enables an in-memory snapshot store. Used in tests.
func WithMemoryStore() SystemOption {
	return func(o *systemOptions) {
		o.memoryStore = true
	}
}

// WithEngineOptions forwards options to the underlying engine.
func WithEngineOptions(opts ...recommend.Option) SystemOption {
	return func(o *systemOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewSystem assembles a recommendation system. The embedder chain tries the
// configured provider first and falls back to the deterministic lexical
// embedder unless WithoutFallback is set; results are memoized in front of
// the chain. When a snapshot store is configured and holds a valid
// snapshot, the engine starts ready without re-embedding the catalog.
func NewSystem(opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default().With("component", "assessrec")

	var strategies []ai.Strategy
	remote, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		if options.remoteOnly {
			return nil, err
		}
		logger.Warn("embedding provider unavailable, using lexical fallback only", "err", err)
	} else {
		strategies = append(strategies, ai.Strategy{Name: "openai", Embedder: remote})
	}
	if !options.remoteOnly {
		strategies = append(strategies, ai.Strategy{Name: "lexical", Embedder: lexical.NewEmbedder()})
	}
	if len(strategies) == 0 {
		return nil, ai.ErrNoStrategies
	}

	embedder := ai.NewCachingEmbedder(ai.NewChainEmbedder(strategies...))

	engine, err := recommend.NewEngine(embedder, options.engineOpts...)
	if err != nil {
		return nil, err
	}

	sys := &System{
		engine:   engine,
		embedder: embedder,
		logger:   logger,
	}

	if options.memoryStore || options.storePath != "" {
		backend, err := badger.OpenBackend(options.storePath, options.memoryStore)
		if err != nil {
			return nil, err
		}
		sys.store = badger.NewSnapshotStore(backend)

		snapshot, err := sys.store.LoadSnapshot(context.Background())
		switch {
		case err == nil:
			if restoreErr := engine.Restore(snapshot); restoreErr != nil {
				logger.Warn("stored snapshot unusable, rebuild required", "err", restoreErr)
			} else {
				embedder.Seed(snapshot.Cache)
			}
		case errors.Is(err, storage.ErrNotFound):
			// First run, nothing to warm-start from.
		default:
			sys.store.Close()
			return nil, err
		}
	}

	return sys, nil
}

// Engine returns the recommendation engine.
func (s *System) Engine() *recommend.Engine {
	return s.engine
}

// Ready reports whether the engine can serve queries.
func (s *System) Ready() bool {
	return s.engine.Ready()
}

// LoadCatalog embeds the catalog, publishes the snapshot, and persists it
// when a snapshot store is configured.
func (s *System) LoadCatalog(ctx context.Context, assessments []core.Assessment) error {
	if err := s.engine.Build(ctx, assessments); err != nil {
		return err
	}

	if s.store != nil {
		snapshot := *s.engine.Snapshot()
		snapshot.Cache = s.embedder.Dump()
		if err := s.store.SaveSnapshot(ctx, &snapshot); err != nil {
			s.logger.Error("error persisting catalog snapshot", "err", err)
			return err
		}
	}
	return nil
}

// Recommend returns up to topK assessments for the query. See
// recommend.Engine.Recommend for the clamping and balancing rules.
func (s *System) Recommend(ctx context.Context, query string, topK int) ([]core.ScoredAssessment, error) {
	if err := core.ValidateQuery(query); err != nil {
		return nil, err
	}
	return s.engine.Recommend(ctx, query, topK)
}

// Analyze returns the structured intent extracted from the query.
func (s *System) Analyze(query string) core.Intent {
	return s.engine.Analyze(query)
}

// Close releases the snapshot store if one is configured.
func (s *System) Close() error {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("error closing snapshot store", "err", err)
			return err
		}
	}
	return nil
}
