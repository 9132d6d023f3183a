// Copyright (c) 2023 The SPWN-language-sub003 Authors
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

package optimizer

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// Snapshot is a gob-serializable capture of a Store's trigger vector,
// independent of any Network built over it (a Network is always rebuilt
// fresh by CleanNetwork, never itself persisted). Taking a Snapshot between
// driver passes lets golden-file tests assert on intermediate state without
// the optimizer package exposing its internal Trigger slice directly.
type Snapshot struct {
	Triggers []gd.TriggerObject
	Roles    []Role
	Deleted  []bool
}

// SnapshotStore captures store's current state.
func SnapshotStore(store *Store) Snapshot {
	snap := Snapshot{
		Triggers: make([]gd.TriggerObject, store.Len()),
		Roles:    make([]Role, store.Len()),
		Deleted:  make([]bool, store.Len()),
	}
	for i := 0; i < store.Len(); i++ {
		t := store.Get(Handle(i))
		snap.Triggers[i] = t.Obj
		snap.Roles[i] = t.Role
		snap.Deleted[i] = t.Deleted
	}
	return snap
}

// RestoreStore rebuilds a Store from a Snapshot, preserving handle numbering
// (the restored store's Handle i refers to the same logical trigger as the
// snapshot's index i).
func RestoreStore(snap Snapshot) *Store {
	store := &Store{triggers: make([]Trigger, len(snap.Triggers))}
	for i := range snap.Triggers {
		store.triggers[i] = Trigger{Obj: snap.Triggers[i], Role: snap.Roles[i], Deleted: snap.Deleted[i]}
	}
	return store
}

// EncodeSnapshot gob-encodes snap for persistence between optimizer runs.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot decodes a Snapshot previously produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}
