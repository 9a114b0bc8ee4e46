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


package storage

import (
	"context"

	"github.com/poiesic/assessrec/core"
)

// SnapshotStore persists catalog snapshots so a restarted process can serve
// queries without re-embedding the catalog. Implementations must be
// thread-safe and support concurrent access.
type SnapshotStore interface {
	// SaveSnapshot persists the snapshot, replacing any previous one.
	SaveSnapshot(ctx context.Context, snapshot *core.CatalogSnapshot) error

	// LoadSnapshot retrieves the persisted snapshot.
	// Returns ErrNotFound if no snapshot has been saved.
	LoadSnapshot(ctx context.Context) (*core.CatalogSnapshot, error)

	// GetAssessment retrieves a single assessment record by content ID
	// without decoding the whole snapshot.
	// Returns ErrNotFound if no record exists under the ID.
	GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error)

	// DeleteSnapshot removes the persisted snapshot.
	// Deleting a missing snapshot is not an error.
	DeleteSnapshot(ctx context.Context) error

	// Close closes the storage backend and releases resources.
	Close() error
}
