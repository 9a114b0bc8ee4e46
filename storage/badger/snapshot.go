package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
)

// SnapshotStore implements storage.SnapshotStore for BadgerDB.
type SnapshotStore struct {
	backend *Backend
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store over the given backend.
func NewSnapshotStore(backend *Backend) *SnapshotStore {
	return &SnapshotStore{backend: backend}
}

// Close closes the underlying backend.
func (s *SnapshotStore) Close() error {
	return s.backend.Close()
}

// SaveSnapshot persists the snapshot, replacing any previous one. Each
// assessment is also written under its own content-ID key so single records
// can be fetched without decoding the whole snapshot; records from the
// previous catalog are cleared first.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snapshot *core.CatalogSnapshot) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	value := storage.MarshalSnapshot(snapshot)

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := deleteAssessmentRecords(tx); err != nil {
			return err
		}
		if err := tx.Set(makeSnapshotKey(), value); err != nil {
			return err
		}
		for i := range snapshot.Assessments {
			a := &snapshot.Assessments[i]
			key := makeAssessmentKey(a.ID())
			if err := tx.Set(key, storage.MarshalAssessment(a)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the persisted snapshot.
// Returns storage.ErrNotFound if no snapshot has been saved.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*core.CatalogSnapshot, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var snapshot *core.CatalogSnapshot
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot, err = storage.UnmarshalSnapshot(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetAssessment retrieves a single assessment record by content ID.
// Returns storage.ErrNotFound if no record exists under the ID.
func (s *SnapshotStore) GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var assessment *core.Assessment
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAssessmentKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			assessment, err = storage.UnmarshalAssessment(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

// DeleteSnapshot removes the persisted snapshot and its assessment records.
// Deleting a missing snapshot is not an error.
func (s *SnapshotStore) DeleteSnapshot(ctx context.Context) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeSnapshotKey()); err != nil {
			return err
		}
		if err := deleteAssessmentRecords(tx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// deleteAssessmentRecords removes every per-assessment record in the
// transaction. Key-only iteration; values are never loaded.
func deleteAssessmentRecords(tx *badger.Txn) error {
	prefix := makeAssessmentScanPrefix()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
