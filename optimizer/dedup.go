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
	"sort"
	"strings"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// DedupTriggers runs in two steps: first, every pair of
// groups whose live trigger content is observationally equivalent (same
// triggers, modulo GROUPS/TARGET, targeting equivalent groups in turn) is
// merged into one address via ReplaceGroups, preferring to keep a Specific
// survivor since its address is host-visible and cannot be eliminated; then,
// within each resulting gang, any triggers left byte-for-byte identical by
// that same merge are collapsed to their first occurrence.
func DedupTriggers(net *Network, store *Store, reserved gd.ReservedIDs) {
	memo := map[gd.Id]string{}
	inProgress := map[gd.Id]bool{}

	classes := map[string][]gd.Id{}
	var order []string
	net.Groups.Range(func(group gd.Id, _ *Gang) bool {
		sig := groupSignature(net, store, group, memo, inProgress)
		if _, seen := classes[sig]; !seen {
			order = append(order, sig)
		}
		classes[sig] = append(classes[sig], group)
		return true
	})

	swaps := map[gd.Id]Swap{}
	for _, sig := range order {
		members := classes[sig]
		if len(members) < 2 {
			continue
		}
		survivor := members[0]
		for _, m := range members {
			if m.IsSpecific() {
				survivor = m
				break
			}
		}
		for _, m := range members {
			if m == survivor || m.IsSpecific() {
				continue
			}
			swaps[m] = Swap{To: survivor, BaseOrder: 0}
		}
	}
	if len(swaps) > 0 {
		ReplaceGroups(store, swaps)
		// The merge just rewrote GROUPS on every non-survivor trigger, so net's
		// partition by address is stale; rebuild it before the literal pass
		// below, which must see triggers merged into the same gang together.
		// No pass, including this one, may read network state its own earlier
		// writes invalidated without an intervening rebuild.
		net = CleanNetwork(store, false)
	}

	net.Groups.Range(func(_ gd.Id, gang *Gang) bool {
		seen := map[string]bool{}
		for _, h := range gang.Handles {
			t := store.Get(h)
			if t.Deleted {
				continue
			}
			key := triggerContentKey(t.Obj.Obj)
			if seen[key] {
				t.Deleted = true
				continue
			}
			seen[key] = true
		}
		return true
	})
}

// groupSignature computes a canonical, order-independent description of a
// group's live content, recursing into targets. A group currently on the
// call stack (a cycle) contributes a fixed marker rather than recursing
// forever; two distinct cycles are therefore never found equivalent, which
// is conservative (it may miss some mergeable cyclic regions) but never
// merges two groups with different behaviour.
func groupSignature(net *Network, store *Store, group gd.Id, memo map[gd.Id]string, inProgress map[gd.Id]bool) string {
	if s, ok := memo[group]; ok {
		return s
	}
	if inProgress[group] {
		return "<cycle>"
	}
	inProgress[group] = true

	var sigs []string
	if gang, ok := net.Gang(group); ok {
		for _, h := range gang.Handles {
			t := store.Get(h)
			if t.Deleted {
				continue
			}
			sigs = append(sigs, triggerSignature(net, store, t, memo, inProgress))
		}
	}
	sort.Strings(sigs)

	delete(inProgress, group)
	out := strings.Join(sigs, "|")
	memo[group] = out
	return out
}

// triggerSignature hashes a trigger's parameters excluding GROUPS (the
// address dedup is allowed to rewrite) and excluding TARGET's raw value (it
// recurses into the target's own signature instead, so two triggers that
// target differently-named but behaviourally identical groups still match).
func triggerSignature(net *Network, store *Store, t *Trigger, memo map[gd.Id]string, inProgress map[gd.Id]bool) string {
	obj := t.Obj.Obj
	var b strings.Builder
	fmt.Fprintf(&b, "role=%d;", t.Role)

	keys := make([]int, 0, len(obj.Params))
	for k := range obj.Params {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	for _, ik := range keys {
		k := uint8(ik)
		if k == config.KeyGroups || k == config.KeyTarget {
			continue
		}
		fmt.Fprintf(&b, "%d=%s;", k, obj.Params[k].HashKey())
	}

	if target, ok := obj.Target(); ok {
		fmt.Fprintf(&b, "target=%s;", groupSignature(net, store, target, memo, inProgress))
	}
	return b.String()
}

// triggerContentKey hashes every parameter including GROUPS/TARGET, for the
// literal post-merge duplicate pass within a single gang.
func triggerContentKey(obj gd.Object) string {
	keys := make([]int, 0, len(obj.Params))
	for k := range obj.Params {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, ik := range keys {
		k := uint8(ik)
		fmt.Fprintf(&b, "%d=%s;", k, obj.Params[k].HashKey())
	}
	return b.String()
}
