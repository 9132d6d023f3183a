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
	"fmt"
	"math"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// spawnLeaf is one terminal of a chain walk: the group to spawn and the
// cumulative delay to reach it.
type spawnLeaf struct {
	target gd.Id
	delay  float64
	useEps bool
}

// SpawnOptimization fuses spawn chains: every pure spawn-to-spawn chain
// reachable from a spawn trigger is collapsed into one merged spawn per
// terminal (an Output, or a group with no further fusable successors),
// carrying the summed delay. The spawn trigger that starts the chain is
// deleted and its replacements are filed under its source group. The spawn
// triggers further along the chain are not deleted by this pass: each is
// fused again from its own gang, and those left unreachable are removed by
// the next dead-code pass.
func SpawnOptimization(net *Network, store *Store, reserved gd.ReservedIDs, toggles *ToggleGroups) {
	net.Groups.Range(func(source gd.Id, gang *Gang) bool {
		for _, h := range gang.Handles {
			t := store.Get(h)
			if t.Deleted || t.Role != RoleSpawn {
				continue
			}
			target, ok := t.Obj.Obj.Target()
			if !ok {
				continue
			}
			if toggles.gates(target) {
				continue
			}
			if !fusable(net, target) {
				continue
			}

			leaves := map[string]spawnLeaf{}
			visited := map[gd.Id]bool{}
			walkChain(net, store, toggles, target, t.Obj.Obj.Delay(), isEpsilon(t.Obj.Obj), visited, leaves)
			if len(leaves) == 0 {
				continue
			}

			order := t.Obj.Order
			for _, leaf := range leaves {
				newObj := NewSpawnTrigger(leaf.target, source, leaf.delay, leaf.useEps)
				nh := store.Add(gd.NewTrigger(newObj, order))
				net.file(source, nh)
			}
			store.Get(h).Deleted = true
		}
		return true
	})
}

func isEpsilon(obj gd.Object) bool {
	p, ok := obj.Params[config.KeyDelay]
	return ok && p.Kind == gd.KindEpsilon
}

// fusable reports whether group's gang has no non-spawn in-edges, meaning
// every path into it is a spawn and the whole gang may be folded into its
// predecessors.
func fusable(net *Network, group gd.Id) bool {
	gang, ok := net.Gang(group)
	if !ok {
		return false
	}
	return !gang.NonSpawnTriggersIn
}

// walkChain accumulates (target, delay) leaves reachable from group by
// following only Spawn triggers through fusable, non-toggle-gated gangs,
// stopping at (and including) the first Output or non-fusable group reached
// on each path.
func walkChain(net *Network, store *Store, toggles *ToggleGroups, group gd.Id, delay float64, useEps bool, visited map[gd.Id]bool, leaves map[string]spawnLeaf) {
	if visited[group] {
		return
	}
	visited[group] = true

	gang, ok := net.Gang(group)
	if !ok || len(gang.Handles) == 0 {
		leaves[leafKey(group, delay)] = spawnLeaf{target: group, delay: delay, useEps: useEps}
		return
	}

	for _, h := range gang.Handles {
		t := store.Get(h)
		if t.Deleted {
			continue
		}
		if t.Role == RoleOutput {
			leaves[leafKey(group, delay)] = spawnLeaf{target: group, delay: delay, useEps: useEps}
			continue
		}
		if t.Role != RoleSpawn {
			// A Func in the chain: stop here, this group is itself a valid terminal.
			leaves[leafKey(group, delay)] = spawnLeaf{target: group, delay: delay, useEps: useEps}
			continue
		}
		target, ok := t.Obj.Obj.Target()
		if !ok {
			continue
		}
		step := t.Obj.Obj.Delay()
		nextEps := useEps && withinEpsilon(delay+step)
		nextDelay := delay + step

		if toggles.gates(target) || !fusable(net, target) {
			leaves[leafKey(target, nextDelay)] = spawnLeaf{target: target, delay: nextDelay, useEps: nextEps}
			continue
		}
		walkChain(net, store, toggles, target, nextDelay, nextEps, visited, leaves)
	}
}

func withinEpsilon(sum float64) bool {
	return math.Abs(sum) <= config.EpsilonRange
}

// leafKey identifies a spawn leaf by both its terminal group and its
// cumulative delay (compared by bit pattern, per the project's float-equality
// convention): two distinct fused paths that reach the same terminal with
// different delays are different leaves and must each emit their own spawn.
func leafKey(target gd.Id, delay float64) string {
	return fmt.Sprintf("%s|%x", target, math.Float64bits(delay))
}

// NewSpawnTrigger builds a synthetic spawn trigger object (opcode OpSpawn)
// filed under group that fires target after delay.
func NewSpawnTrigger(target, group gd.Id, delay float64, useEpsilon bool) gd.Object {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpSpawn))
	obj.Params[config.KeyTarget] = gd.IdParam(target)
	obj.Params[config.KeyGroups] = gd.IdParam(group)
	if useEpsilon {
		obj.Params[config.KeyDelay] = gd.EpsilonParam()
	} else {
		obj.Params[config.KeyDelay] = gd.FloatParam(delay)
	}
	return obj
}
