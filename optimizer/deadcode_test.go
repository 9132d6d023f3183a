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

	"github.com/stretchr/testify/assert"

	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// TestRemoveDeadCodeDanglingSpawnEliminated is the boundary case: one spawn
// trigger targeting an arbitrary dead-end group with nothing in its gang is
// eliminated entirely (the signal has no observer).
func TestRemoveDeadCodeDanglingSpawnEliminated(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		spawnTrigger(sg(1), ag(1), 0, 0),
	})
	reserved := gd.NewReservedIDs()
	reserved.ObjectGroups.Insert(sg(1))

	net := CleanNetwork(store, true)
	RemoveDeadCode(net, store, reserved)

	assert.True(t, store.Get(0).Deleted)
}

func TestRemoveDeadCodeCycleKept(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		spawnTrigger(sg(1), ag(1), 1, 0),
		spawnTrigger(ag(1), ag(2), 1, 0),
		spawnTrigger(ag(2), ag(1), 1, 0),
	})
	reserved := gd.NewReservedIDs()
	reserved.ObjectGroups.Insert(sg(1))

	net := CleanNetwork(store, true)
	RemoveDeadCode(net, store, reserved)

	for i := 0; i < store.Len(); i++ {
		assert.False(t, store.Get(i2h(i)).Deleted, "every trigger in the cycle must be kept")
	}
}

func TestIsStartGroupReservedArbitrary(t *testing.T) {
	reserved := gd.NewReservedIDs()
	reserved.ObjectGroups.Insert(ag(5))
	assert.True(t, IsStartGroup(ag(5), reserved))
	assert.False(t, IsStartGroup(ag(6), reserved))
	assert.True(t, IsStartGroup(sg(0), reserved))
}

func i2h(i int) Handle { return Handle(i) }
