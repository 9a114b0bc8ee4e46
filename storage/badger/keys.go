package badger

import (
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
)

// Key prefixes for different data types
const (
	snapshotKey      = "catsnap:current"
	assessmentPrefix = "assrec"
)

// makeSnapshotKey returns the key under which the current catalog snapshot
// is stored. There is exactly one live snapshot per database.
func makeSnapshotKey() []byte {
	return []byte(snapshotKey)
}

// makeAssessmentKey generates a key for an assessment record by content ID.
// The ID rides in its wire encoding after the prefix.
func makeAssessmentKey(id core.ID) []byte {
	prefix := makeAssessmentScanPrefix()
	return append(prefix, storage.MarshalID(id)...)
}

// makeAssessmentScanPrefix returns the prefix covering all assessment
// record keys, for iteration.
func makeAssessmentScanPrefix() []byte {
	return []byte(assessmentPrefix + ":")
}
