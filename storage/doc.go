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


// Package storage provides the persistence abstraction layer for assessrec.
//
// The SnapshotStore interface decouples snapshot persistence from the
// recommendation engine, so different backends (BadgerDB, in-memory) can be
// used interchangeably. Public constructors in backend packages return the
// storage.SnapshotStore interface rather than concrete types; consumers can
// substitute mock implementations without modification.
//
// Serialization uses the MUS binary format. The Marshal/Unmarshal helpers in
// this package wrap the core serializers and are the only place snapshot
// bytes are produced or consumed.
package storage
