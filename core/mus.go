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


package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted types. Field order is the wire format;
// changing it breaks existing snapshots.

var (
	stringSliceMUS = ord.NewSliceSer[string](ord.String)
	vectorMUS      = ord.NewSliceSer[float32](raw.Float32)
	matrixMUS      = ord.NewSliceSer[[]float32](vectorMUS)
	cacheMUS       = ord.NewMapSer[string, []float32](ord.String, vectorMUS)
)

// IDMUS serializes IDs.
var IDMUS = idMUS{}

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// AssessmentMUS serializes Assessments.
var AssessmentMUS = assessmentMUS{}

type assessmentMUS struct{}

var _ mus.Serializer[Assessment] = assessmentMUS{}

func (assessmentMUS) Marshal(a Assessment, bs []byte) (n int) {
	n = ord.String.Marshal(a.URL, bs)
	n += ord.String.Marshal(a.Name, bs[n:])
	n += ord.String.Marshal(a.Description, bs[n:])
	n += ord.String.Marshal(a.Category, bs[n:])
	n += stringSliceMUS.Marshal(a.TestType, bs[n:])
	n += ord.String.Marshal(a.AdaptiveSupport, bs[n:])
	n += ord.String.Marshal(a.RemoteSupport, bs[n:])
	n += varint.Int.Marshal(a.Duration, bs[n:])
	return
}

func (assessmentMUS) Unmarshal(bs []byte) (a Assessment, n int, err error) {
	var n1 int
	a.URL, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	a.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.TestType, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.AdaptiveSupport, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.RemoteSupport, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Duration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (assessmentMUS) Size(a Assessment) (size int) {
	size = ord.String.Size(a.URL)
	size += ord.String.Size(a.Name)
	size += ord.String.Size(a.Description)
	size += ord.String.Size(a.Category)
	size += stringSliceMUS.Size(a.TestType)
	size += ord.String.Size(a.AdaptiveSupport)
	size += ord.String.Size(a.RemoteSupport)
	size += varint.Int.Size(a.Duration)
	return
}

func (assessmentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	for i := 0; i < 7; i++ {
		if i == 4 {
			n1, err = stringSliceMUS.Skip(bs[n:])
		} else {
			n1, err = ord.String.Skip(bs[n:])
		}
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var assessmentSliceMUS = ord.NewSliceSer[Assessment](AssessmentMUS)

// CatalogSnapshotMUS serializes CatalogSnapshots.
var CatalogSnapshotMUS = catalogSnapshotMUS{}

type catalogSnapshotMUS struct{}

var _ mus.Serializer[CatalogSnapshot] = catalogSnapshotMUS{}

func (catalogSnapshotMUS) Marshal(s CatalogSnapshot, bs []byte) (n int) {
	n = assessmentSliceMUS.Marshal(s.Assessments, bs)
	n += matrixMUS.Marshal(s.Matrix, bs[n:])
	n += cacheMUS.Marshal(s.Cache, bs[n:])
	n += varint.Int64.Marshal(s.BuiltAt, bs[n:])
	return
}

func (catalogSnapshotMUS) Unmarshal(bs []byte) (s CatalogSnapshot, n int, err error) {
	var n1 int
	s.Assessments, n, err = assessmentSliceMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	s.Matrix, n1, err = matrixMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Cache, n1, err = cacheMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.BuiltAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	return
}

func (catalogSnapshotMUS) Size(s CatalogSnapshot) (size int) {
	size = assessmentSliceMUS.Size(s.Assessments)
	size += matrixMUS.Size(s.Matrix)
	size += cacheMUS.Size(s.Cache)
	size += varint.Int64.Size(s.BuiltAt)
	return
}

func (catalogSnapshotMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = assessmentSliceMUS.Skip(bs)
	if err != nil {
		return
	}
	n1, err = matrixMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = cacheMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	return
}
