package assessrec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/recommend"
)

// offlineConfig points the provider at a closed port so the chain degrades
// to the lexical embedder quickly and deterministically.
func offlineConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost("http://127.0.0.1:1/v1"),
		ai.WithTimeout(200*time.Millisecond),
	)
}

func newOfflineSystem(t *testing.T, opts ...SystemOption) *System {
	t.Helper()
	opts = append([]SystemOption{WithAIConfig(offlineConfig())}, opts...)
	sys, err := NewSystem(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { sys.Close() })
	return sys
}

func TestSystem_NotReadyBeforeLoad(t *testing.T) {
	sys := newOfflineSystem(t)
	assert.False(t, sys.Ready())

	_, err := sys.Recommend(context.Background(), "java developer", 10)
	assert.ErrorIs(t, err, core.ErrEngineNotReady)
}

func TestSystem_LoadAndRecommend(t *testing.T) {
	sys := newOfflineSystem(t)
	require.NoError(t, sys.LoadCatalog(context.Background(), catalog.Sample()))
	require.True(t, sys.Ready())

	results, err := sys.Recommend(context.Background(),
		"customer service representative with phone support duties", 10)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(results), recommend.MinTopK)
	assert.LessOrEqual(t, len(results), recommend.MaxTopK)
	for _, r := range results {
		assert.NotEmpty(t, r.Assessment.URL)
	}
}

func TestSystem_RecommendValidatesQuery(t *testing.T) {
	sys := newOfflineSystem(t)
	require.NoError(t, sys.LoadCatalog(context.Background(), catalog.Sample()))

	_, err := sys.Recommend(context.Background(), "ab", 10)
	assert.ErrorIs(t, err, core.ErrQueryTooShort)
}

func TestSystem_Analyze(t *testing.T) {
	sys := newOfflineSystem(t)

	it := sys.Analyze("senior python developer who collaborates well")
	assert.Contains(t, it.TechnicalSkills, "python")
	assert.Equal(t, "senior", it.JobLevel)
}

func TestSystem_MemoryStorePersistsSnapshot(t *testing.T) {
	sys := newOfflineSystem(t, WithMemoryStore())
	require.NoError(t, sys.LoadCatalog(context.Background(), catalog.Sample()))

	results, err := sys.Recommend(context.Background(),
		"java developer who can collaborate with business teams", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestSystem_WarmStartFromSnapshot(t *testing.T) {
	dir := t.TempDir()

	first := newOfflineSystem(t, WithSnapshotPath(dir))
	require.NoError(t, first.LoadCatalog(context.Background(), catalog.Sample()))
	require.NoError(t, first.Close())

	second, err := NewSystem(
		WithAIConfig(offlineConfig()),
		WithSnapshotPath(dir),
	)
	require.NoError(t, err)
	defer second.Close()

	// The stored snapshot makes the engine ready without a rebuild.
	assert.True(t, second.Ready())

	results, err := second.Recommend(context.Background(),
		"customer service representative with phone support duties", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestSystem_RemoteOnlyFailsWithoutProvider(t *testing.T) {
	// Construction succeeds (the provider client is lazy), but with no
	// fallback strategy the catalog cannot be embedded.
	sys, err := NewSystem(WithAIConfig(offlineConfig()), WithoutFallback())
	require.NoError(t, err)
	defer sys.Close()

	assert.Error(t, sys.LoadCatalog(context.Background(), catalog.Sample()))
}
