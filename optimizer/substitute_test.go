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
	"github.com/stretchr/testify/require"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

func TestReplaceGroupsRewritesTarget(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		spawnTrigger(sg(1), ag(2), 1, 0),
	})
	ReplaceGroups(store, map[gd.Id]Swap{ag(2): {To: sg(9), BaseOrder: 0}})

	target, ok := store.Get(0).Obj.Obj.Target()
	require.True(t, ok)
	assert.Equal(t, sg(9), target)
}

func TestReplaceGroupsRewritesOwnAddressAndRepacksOrder(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		moveTrigger(ag(1), sg(2), 1.0),
		moveTrigger(ag(1), sg(2), 2.0),
		moveTrigger(ag(1), sg(2), 3.0),
	})
	ReplaceGroups(store, map[gd.Id]Swap{ag(1): {To: sg(5), BaseOrder: 100.0}})

	for i := 0; i < store.Len(); i++ {
		trig := store.Get(Handle(i))
		groups := trig.Obj.Obj.Groups()
		require.Len(t, groups, 1)
		assert.Equal(t, sg(5), groups[0])
		assert.True(t, trig.Obj.Order >= 100.0 && trig.Obj.Order < 100.0+config.OrderWindowWidth)
	}
	// relative order must be preserved
	assert.Less(t, store.Get(0).Obj.Order, store.Get(1).Obj.Order)
	assert.Less(t, store.Get(1).Obj.Order, store.Get(2).Obj.Order)
}

func TestReplaceGroupsLeavesUnaffectedAlone(t *testing.T) {
	store := NewStore([]gd.TriggerObject{
		spawnTrigger(sg(1), ag(9), 1, 0),
	})
	ReplaceGroups(store, map[gd.Id]Swap{ag(2): {To: sg(9), BaseOrder: 0}})

	target, ok := store.Get(0).Obj.Obj.Target()
	require.True(t, ok)
	assert.Equal(t, ag(9), target, "a swap table entry that matches nothing must not disturb other ids")
}
