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
	"sort"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// ToggleGroups is a table of which triggers toggle or stop each group: for
// every group some trigger can toggle or stop, the handles of the triggers
// that do so, bucketed by direction.
type ToggleGroups struct {
	ToggleOn  map[gd.Id][]Handle
	ToggleOff map[gd.Id][]Handle
	Stops     map[gd.Id][]Handle
}

// ComputeToggleGroups scans every live trigger once and buckets the
// toggle-capable ones by their TARGET. TOUCH triggers can fire in either
// direction depending on runtime player position, so they contribute to both
// toggle buckets.
func ComputeToggleGroups(store *Store) *ToggleGroups {
	tg := &ToggleGroups{
		ToggleOn:  map[gd.Id][]Handle{},
		ToggleOff: map[gd.Id][]Handle{},
		Stops:     map[gd.Id][]Handle{},
	}

	for i := 0; i < store.Len(); i++ {
		h := Handle(i)
		t := store.Get(h)
		if t.Deleted {
			continue
		}
		obj := t.Obj.Obj
		switch obj.Opcode() {
		case config.OpCount, config.OpInstantCount, config.OpCollision, config.OpOnDeath, config.OpToggle:
			target, ok := obj.Target()
			if !ok {
				continue
			}
			if obj.ActivateGroup() {
				tg.ToggleOn[target] = append(tg.ToggleOn[target], h)
			} else {
				tg.ToggleOff[target] = append(tg.ToggleOff[target], h)
			}
		case config.OpTouch:
			target, ok := obj.Target()
			if !ok {
				continue
			}
			tg.ToggleOn[target] = append(tg.ToggleOn[target], h)
			tg.ToggleOff[target] = append(tg.ToggleOff[target], h)
		case config.OpStop:
			target, ok := obj.Target()
			if !ok {
				continue
			}
			tg.Stops[target] = append(tg.Stops[target], h)
		}
	}

	return tg
}

// gates reports whether group is referenced by any toggle bucket, meaning
// spawn-chain fusion must not cross it.
func (tg *ToggleGroups) gates(group gd.Id) bool {
	if tg == nil {
		return false
	}
	if _, ok := tg.ToggleOn[group]; ok {
		return true
	}
	if _, ok := tg.ToggleOff[group]; ok {
		return true
	}
	_, ok := tg.Stops[group]
	return ok
}

// GroupToggling lowers every togglable region to a stable gate address:
// every group toggled off by one trigger and on by another is a togglable
// region. Its
// address is renamed to a freshly allocated arbitrary gate group (bumping
// closedGroup), and the original address is left holding a single always-on
// spawn into the gate -- every trigger that targeted or was filed under the
// old address now reaches it through the gate, including the very toggle
// triggers that control it, so the region's run-time behaviour is unchanged
// while its identity is now a name this pass owns.
func GroupToggling(net *Network, store *Store, reserved gd.ReservedIDs, closedGroup *uint16) {
	tg := ComputeToggleGroups(store)

	var regions []gd.Id
	for group := range tg.ToggleOn {
		if _, off := tg.ToggleOff[group]; off {
			regions = append(regions, group)
		}
	}
	// tg.ToggleOn is a raw map; sort before allocating gate numbers so which
	// region gets which gate does not depend on Go's randomized map order.
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].String() < regions[j].String()
	})

	for _, region := range regions {
		*closedGroup++
		gate := gd.ArbitraryId(gd.ClassGroup, *closedGroup)

		ReplaceGroups(store, map[gd.Id]Swap{region: {To: gate, BaseOrder: 0}})

		fwd := NewSpawnTrigger(gate, region, 0, false)
		h := store.Add(gd.NewTrigger(fwd, 0))
		net.file(region, h)
	}
}
