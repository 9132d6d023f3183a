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

func countTrigger(group, target gd.Id, activate bool, order float64) gd.TriggerObject {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpCount))
	obj.Params[config.KeyGroups] = gd.IdParam(group)
	obj.Params[config.KeyTarget] = gd.IdParam(target)
	obj.Params[config.KeyActivateGroup] = gd.BoolParam(activate)
	return gd.NewTrigger(obj, order)
}

func TestComputeToggleGroupsBucketsByDirection(t *testing.T) {
	region := ag(5)
	store := NewStore([]gd.TriggerObject{
		countTrigger(sg(1), region, true, 0),
		countTrigger(sg(2), region, false, 0),
	})
	tg := ComputeToggleGroups(store)

	assert.Contains(t, tg.ToggleOn, region)
	assert.Contains(t, tg.ToggleOff, region)
	assert.True(t, tg.gates(region))
	assert.False(t, tg.gates(ag(6)))
}

// TestGroupTogglingInsertsExactlyOneGate is the boundary case: a region
// toggled off by one trigger and on by another gets exactly one synthetic
// gate group, and the region's own address becomes a single always-on
// forwarder into it.
func TestGroupTogglingInsertsExactlyOneGate(t *testing.T) {
	region := ag(5)
	store := NewStore([]gd.TriggerObject{
		countTrigger(sg(1), region, true, 0),
		countTrigger(sg(2), region, false, 1),
		spawnTrigger(region, sg(9), 0, 0),
	})
	net := buildNetwork(store)
	var closed uint16
	GroupToggling(net, store, gd.NewReservedIDs(), &closed)

	assert.Equal(t, uint16(1), closed, "exactly one gate group must be allocated")

	gate := gd.ArbitraryId(gd.ClassGroup, 1)
	net2 := buildNetwork(store)
	regionGang, ok := net2.Gang(region)
	require.True(t, ok)

	var live []Handle
	for _, h := range regionGang.Handles {
		if !store.Get(h).Deleted {
			live = append(live, h)
		}
	}
	require.Len(t, live, 1, "the old address now holds exactly one forwarder")
	target, ok := store.Get(live[0]).Obj.Obj.Target()
	require.True(t, ok)
	assert.Equal(t, gate, target)

	gateGang, ok := net2.Gang(gate)
	require.True(t, ok)
	var gateLive int
	for _, h := range gateGang.Handles {
		if !store.Get(h).Deleted {
			gateLive++
		}
	}
	assert.Equal(t, 1, gateLive, "the original content now lives under the gate")
}

func TestGroupTogglingNoopWhenOnlyToggledOneWay(t *testing.T) {
	region := ag(5)
	store := NewStore([]gd.TriggerObject{
		countTrigger(sg(1), region, true, 0),
	})
	net := buildNetwork(store)
	var closed uint16
	GroupToggling(net, store, gd.NewReservedIDs(), &closed)

	assert.Equal(t, uint16(0), closed, "a group toggled only one way is not a togglable region")
}
