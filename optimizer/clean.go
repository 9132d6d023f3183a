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

// CleanNetwork rebuilds the network from the current trigger store. Every
// non-deleted trigger is filed under its GROUPS address (or the zero group);
// then a second pass walks every Spawn/Func trigger and, for each one that is
// not a Spawn, sets its target gang's NonSpawnTriggersIn flag.
//
// If deleteObjects is true, every trigger carried over into the new network is
// additionally marked deleted -- this is the pattern the driver uses before
// running the dead-code pass, which un-tombstones whatever is still
// reachable.
func CleanNetwork(store *Store, deleteObjects bool) *Network {
	net := NewNetwork()

	for h := 0; h < store.Len(); h++ {
		t := store.Get(Handle(h))
		if t.Deleted {
			continue
		}
		if deleteObjects {
			t.Deleted = true
		}
		net.file(groupOf(t.Obj.Obj), Handle(h))
	}

	net.Groups.Range(func(_ gd.Id, gang *Gang) bool {
		for _, h := range gang.Handles {
			t := store.Get(h)
			if t.Role != RoleSpawn && t.Role != RoleFunc {
				continue
			}
			target, ok := t.Obj.Obj.Target()
			if !ok {
				continue
			}
			if targetGang, ok := net.Gang(target); ok && t.Role != RoleSpawn {
				targetGang.NonSpawnTriggersIn = true
			}
		}
		return true
	})

	return net
}
