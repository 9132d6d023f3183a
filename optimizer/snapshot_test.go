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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// TestSnapshotRoundTrip is the round-trip law for intermediate store state:
// encoding then decoding a Snapshot, then rebuilding a Store from it, must
// reproduce the original store's observable content exactly.
func TestSnapshotRoundTrip(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		spawnTrigger(sg(1), ag(1), 5, 0),
		moveTrigger(ag(1), sg(9), 1),
	})
	store.Get(1).Deleted = true

	snap := SnapshotStore(store)
	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)

	if diff := cmp.Diff(snap, decoded); diff != "" {
		t.Errorf("snapshot round trip mismatch (-want +got):\n%s", diff)
	}

	restored := RestoreStore(decoded)
	require.Equal(t, store.Len(), restored.Len())
	for i := 0; i < store.Len(); i++ {
		require.Equal(t, store.Get(Handle(i)).Deleted, restored.Get(Handle(i)).Deleted)
	}
}
