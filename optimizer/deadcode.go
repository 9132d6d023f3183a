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

import "github.com/Spu7Nix/SPWN-language-sub003/gd"

// IsStartGroup reports whether group is an entry point: any Specific group, or
// any Arbitrary group that is itself a reserved object group.
func IsStartGroup(group gd.Id, reserved gd.ReservedIDs) bool {
	return group.IsSpecific() || reserved.ObjectGroups.Contains(group)
}

// RemoveDeadCode is the dead-code pass: from every start group, DFS over
// target-group edges un-tombstoning every trigger that is reachable and
// worth keeping. Triggers not reached by this walk stay
// tombstoned (CleanNetwork must have been called with deleteObjects=true
// beforehand, per the driver loop).
func RemoveDeadCode(net *Network, store *Store, reserved gd.ReservedIDs) {
	// Snapshot the set of (group, gang) pairs to walk before mutating anything,
	// since un-tombstoning triggers does not change which groups exist.
	var starts []gd.Id
	net.Groups.Range(func(group gd.Id, _ *Gang) bool {
		if IsStartGroup(group, reserved) {
			starts = append(starts, group)
		}
		return true
	})

	for _, group := range starts {
		gang, ok := net.Gang(group)
		if !ok {
			continue
		}
		for _, h := range gang.Handles {
			var stack []Handle
			if checkForDeadCode(net, store, reserved, h, stack) {
				store.Get(h).Deleted = false
			}
		}
	}
}

func onStack(stack []Handle, h Handle) bool {
	for _, s := range stack {
		if s == h {
			return true
		}
	}
	return false
}

// checkForDeadCode returns whether the trigger at h should be kept: an
// Output is kept unless it targets an arbitrary group that nothing reserves
// (in which case it signals nothing that matters and is eliminated); a
// trigger targeting a nonexistent or empty gang is a dangling signal and is
// eliminated; reaching a start group or a cycle keeps the branch; otherwise
// the result is the OR of every successor.
func checkForDeadCode(net *Network, store *Store, reserved gd.ReservedIDs, h Handle, stack []Handle) bool {
	t := store.Get(h)
	if !t.Deleted {
		return true
	}

	if t.Role == RoleOutput {
		target, ok := t.Obj.Obj.Target()
		if ok && target.IsArbitrary() {
			if !reserved.ObjectGroups.Contains(target) && !reserved.TriggerGroups.Contains(target) {
				return false
			}
		}
		store.Get(h).Deleted = false
		return true
	}

	if onStack(stack, h) {
		return true // keep all loops
	}

	target, ok := t.Obj.Obj.Target()
	if !ok {
		return false // dangling
	}
	if IsStartGroup(target, reserved) {
		return true
	}

	gang, ok := net.Gang(target)
	if !ok || len(gang.Handles) == 0 {
		return false // dangling
	}

	stack = append(stack, h)
	keep := false
	for _, succ := range gang.Handles {
		if checkForDeadCode(net, store, reserved, succ, stack) {
			store.Get(succ).Deleted = false
			keep = true
		}
	}
	return keep
}
