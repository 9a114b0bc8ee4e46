package recommend

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrSnapshotMisaligned is returned when a restored snapshot's catalog
	// and embedding matrix differ in length.
	ErrSnapshotMisaligned = errors.New("catalog and embedding matrix are misaligned")
)
