package badger

import (
	"context"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *core.CatalogSnapshot {
	return &core.CatalogSnapshot{
		Assessments: []core.Assessment{
			{
				URL:      "https://example.com/java",
				Name:     "Java Programming Test",
				Category: core.CategoryKnowledge,
				TestType: []string{"Knowledge & Skills"},
				Duration: 45,
			},
			{
				URL:      "https://example.com/opq",
				Name:     "OPQ",
				Category: core.CategoryPersonality,
				TestType: []string{"Personality & Behavior"},
				Duration: 30,
			},
		},
		Matrix: [][]float32{
			{0.5, 0.5, 0.0},
			{0.0, 0.5, 0.5},
		},
		Cache: map[string][]float32{
			"query": {0.1, 0.2, 0.3},
		},
		BuiltAt: 1756600000000000,
	}
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()

	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()

	t.Run("load before save returns not found", func(t *testing.T) {
		_, err := store.LoadSnapshot(ctx)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		snapshot := testSnapshot()
		require.NoError(t, store.SaveSnapshot(ctx, snapshot))

		loaded, err := store.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, snapshot, loaded)
		assert.True(t, loaded.Valid())
	})

	t.Run("save replaces previous snapshot", func(t *testing.T) {
		snapshot := testSnapshot()
		snapshot.BuiltAt = 1756700000000000
		require.NoError(t, store.SaveSnapshot(ctx, snapshot))

		loaded, err := store.LoadSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1756700000000000), loaded.BuiltAt)
	})

	t.Run("delete removes the snapshot", func(t *testing.T) {
		require.NoError(t, store.DeleteSnapshot(ctx))

		_, err := store.LoadSnapshot(ctx)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, store.DeleteSnapshot(ctx))
	})
}

func TestSnapshotStore_AssessmentRecords(t *testing.T) {
	ctx := context.Background()

	store, _, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer store.Close()

	snapshot := testSnapshot()
	require.NoError(t, store.SaveSnapshot(ctx, snapshot))

	t.Run("fetch by content id", func(t *testing.T) {
		got, err := store.GetAssessment(ctx, core.IDFromContent("https://example.com/java"))
		require.NoError(t, err)
		assert.Equal(t, &snapshot.Assessments[0], got)
	})

	t.Run("fetch via assessment helper", func(t *testing.T) {
		got, err := store.GetAssessment(ctx, snapshot.Assessments[1].ID())
		require.NoError(t, err)
		assert.Equal(t, "OPQ", got.Name)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := store.GetAssessment(ctx, core.IDFromContent("https://example.com/absent"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("save replaces the record set", func(t *testing.T) {
		replacement := testSnapshot()
		replacement.Assessments = replacement.Assessments[:1]
		replacement.Matrix = replacement.Matrix[:1]
		require.NoError(t, store.SaveSnapshot(ctx, replacement))

		_, err := store.GetAssessment(ctx, core.IDFromContent("https://example.com/opq"))
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = store.GetAssessment(ctx, core.IDFromContent("https://example.com/java"))
		assert.NoError(t, err)
	})

	t.Run("delete clears the records", func(t *testing.T) {
		require.NoError(t, store.DeleteSnapshot(ctx))

		_, err := store.GetAssessment(ctx, core.IDFromContent("https://example.com/java"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestSnapshotStore_Closed(t *testing.T) {
	ctx := context.Background()

	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveSnapshot(ctx, testSnapshot())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
