package recommend

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/intent"
)

// Result count bounds for the public Recommend contract. Requested sizes
// are clamped into this range before use.
const (
	MinTopK = 5
	MaxTopK = 10
)

// Engine answers assessment recommendation queries against an in-memory
// catalog snapshot. The snapshot (catalog plus index-aligned embedding
// matrix) is immutable once published and swapped atomically on rebuild,
// so concurrent queries never observe a partial state. The Engine itself
// holds no globals; callers own the instance.
type Engine struct {
	embedder  ai.Embedder
	snapshot  atomic.Pointer[core.CatalogSnapshot]
	extractor *pageExtractor
	poolSize  int
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used when embedding the catalog.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		e.poolSize = size
		return nil
	}
}

// WithHTTPClient sets the client used for URL text extraction.
// Default has a 10 second timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) error {
		if client != nil {
			e.extractor = newPageExtractor(client)
		}
		return nil
	}
}

// NewEngine creates an engine over the given embedder. The engine is not
// ready to serve until Build or Restore publishes a snapshot.
func NewEngine(embedder ai.Embedder, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	e := &Engine{
		embedder:  embedder,
		extractor: newPageExtractor(&http.Client{Timeout: 10 * time.Second}),
		poolSize:  poolSize,
		logger:    slog.Default().With("component", "recommend-engine"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Ready reports whether a catalog snapshot has been published.
func (e *Engine) Ready() bool {
	return e.snapshot.Load().Valid()
}

// Assessments returns the current catalog sequence. The returned slice is
// shared with the live snapshot and must be treated as read-only.
func (e *Engine) Assessments() []core.Assessment {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.Assessments
}

// Snapshot returns the currently published snapshot, or nil before Build.
// The snapshot is immutable; callers wanting to persist it should copy and
// attach the embedding cache first.
func (e *Engine) Snapshot() *core.CatalogSnapshot {
	return e.snapshot.Load()
}

// Build embeds every catalog entry and publishes the resulting snapshot
// atomically. Embedding runs on a worker pool; each text still goes through
// the embedder's own cache and fallback chain, so Build degrades rather
// than fails when the remote provider is down. In-flight queries keep
// serving the previous snapshot until the swap.
func (e *Engine) Build(ctx context.Context, assessments []core.Assessment) error {
	start := time.Now()

	catalog := make([]core.Assessment, len(assessments))
	copy(catalog, assessments)

	matrix := make([][]float32, len(catalog))

	pool, err := ants.NewPool(e.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i := range catalog {
		i := i
		text := catalog[i].EmbeddingText()

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			vector, embedErr := e.embedder.EmbedText(ctx, text)
			if embedErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = embedErr
				}
				mu.Unlock()
				return
			}
			matrix[i] = vector
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		e.logger.Error("catalog embedding failed", "err", firstErr)
		return firstErr
	}

	snap := &core.CatalogSnapshot{
		Assessments: catalog,
		Matrix:      matrix,
		BuiltAt:     time.Now().UnixMicro(),
	}
	e.snapshot.Store(snap)

	e.logger.Info("catalog embeddings built",
		"assessments", len(catalog), "elapsed", time.Since(start))
	return nil
}

// Restore publishes a previously persisted snapshot without re-embedding.
// Returns ErrSnapshotMisaligned if the catalog and matrix lengths differ;
// a misaligned snapshot is never served.
func (e *Engine) Restore(snap *core.CatalogSnapshot) error {
	if !snap.Valid() {
		return ErrSnapshotMisaligned
	}
	e.snapshot.Store(snap)
	e.logger.Info("catalog snapshot restored", "assessments", len(snap.Assessments))
	return nil
}

// Search embeds the query, ranks it against the whole catalog, and returns
// up to topK results. When balanced is true the category balancer assembles
// the result set from the full ranking; otherwise it is a plain top-K slice.
// Returns core.ErrEngineNotReady before a snapshot exists.
func (e *Engine) Search(ctx context.Context, query string, topK int, balanced bool) ([]core.ScoredAssessment, error) {
	return e.search(ctx, query, topK, balanced, &noopMonitor{})
}

func (e *Engine) search(ctx context.Context, query string, topK int, balanced bool, monitor RecommendMonitor) ([]core.ScoredAssessment, error) {
	snap := e.snapshot.Load()
	if !snap.Valid() {
		return nil, core.ErrEngineNotReady
	}

	result, err := e.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	monitor.EmbeddingServed(result)

	ranked := rankAll(result.Vector, snap.Matrix)
	monitor.Ranked(len(ranked))

	if balanced {
		return balanceResults(snap.Assessments, ranked, topK), nil
	}

	if topK > len(ranked) {
		topK = len(ranked)
	}
	results := make([]core.ScoredAssessment, topK)
	for i := 0; i < topK; i++ {
		results[i] = core.ScoredAssessment{
			Assessment: snap.Assessments[ranked[i].index],
			Score:      ranked[i].score,
		}
	}
	return results, nil
}

// Recommend is the public entrypoint: clamp topK into [MinTopK, MaxTopK],
// decide balancing from the raw query's intent, rewrite the query (URL
// extraction, short-query wrapping), then search. Fewer than topK results
// come back only when the catalog itself is smaller; there is no padding.
func (e *Engine) Recommend(ctx context.Context, query string, topK int) ([]core.ScoredAssessment, error) {
	return e.RecommendWithMonitor(ctx, query, topK, nil)
}

// RecommendWithMonitor is Recommend with observation hooks. The monitor
// receives callbacks at each stage of the request.
func (e *Engine) RecommendWithMonitor(ctx context.Context, query string, topK int, monitor RecommendMonitor) ([]core.ScoredAssessment, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	if topK < MinTopK {
		topK = MinTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	// Balancing is decided on the raw query, before any rewriting.
	it := intent.Analyze(query)
	balanced := intent.ShouldBalance(query)
	monitor.BalancingDecision(balanced, it)

	prepared := e.extractor.prepareQuery(ctx, query)
	monitor.QueryPrepared(prepared)

	results, err := e.search(ctx, prepared, topK, balanced, monitor)
	if err != nil {
		return nil, err
	}

	// A balanced result set can come up short when one partition is nearly
	// empty. Fall back to the plain ranking rather than under-deliver.
	if balanced && len(results) < MinTopK {
		results, err = e.search(ctx, prepared, topK, false, monitor)
		if err != nil {
			return nil, err
		}
	}

	monitor.Finish(results)
	return results, nil
}

// Analyze exposes the intent extraction contract for callers that want the
// structured view without running a search.
func (e *Engine) Analyze(query string) core.Intent {
	return intent.Analyze(query)
}

// embedQuery runs the query through the embedder, surfacing the strategy
// tag when the embedder supports it.
func (e *Engine) embedQuery(ctx context.Context, query string) (ai.EmbedResult, error) {
	if re, ok := e.embedder.(ai.ResultEmbedder); ok {
		result, err := re.EmbedTextResult(ctx, query)
		if err != nil {
			return ai.EmbedResult{}, err
		}
		if result.Degraded {
			e.logger.Warn("query embedding degraded to fallback", "strategy", result.Strategy)
		}
		return result, nil
	}

	vector, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		return ai.EmbedResult{}, err
	}
	return ai.EmbedResult{Vector: vector, Strategy: "embedder"}, nil
}
