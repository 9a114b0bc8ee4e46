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
	"github.com/poiesic/assessrec/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalAssessment serializes an Assessment to bytes.
func MarshalAssessment(assessment *core.Assessment) []byte {
	buf := make([]byte, core.AssessmentMUS.Size(*assessment))
	core.AssessmentMUS.Marshal(*assessment, buf)
	return buf
}

// UnmarshalAssessment deserializes an Assessment from bytes.
func UnmarshalAssessment(data []byte) (*core.Assessment, error) {
	assessment, _, err := core.AssessmentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// MarshalSnapshot serializes a CatalogSnapshot to bytes.
func MarshalSnapshot(snapshot *core.CatalogSnapshot) []byte {
	buf := make([]byte, core.CatalogSnapshotMUS.Size(*snapshot))
	core.CatalogSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalSnapshot deserializes a CatalogSnapshot from bytes.
func UnmarshalSnapshot(data []byte) (*core.CatalogSnapshot, error) {
	snapshot, _, err := core.CatalogSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
