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

// RootGroupSplit gives the level a single entry point: if the zero group ends
// up holding more than one live trigger, its content is moved wholesale to a
// freshly allocated arbitrary group and the zero group is left holding a
// single spawn into it, so the level has exactly one observable entry point.
func RootGroupSplit(net *Network, store *Store, closedGroup *uint16) {
	gang, ok := net.Gang(gd.ZeroGroup)
	if !ok {
		return
	}
	live := 0
	for _, h := range gang.Handles {
		if !store.Get(h).Deleted {
			live++
		}
	}
	if live <= 1 {
		return
	}

	*closedGroup++
	newRoot := gd.ArbitraryId(gd.ClassGroup, *closedGroup)

	ReplaceGroups(store, map[gd.Id]Swap{gd.ZeroGroup: {To: newRoot, BaseOrder: 0}})

	fwd := NewSpawnTrigger(newRoot, gd.ZeroGroup, 0, false)
	h := store.Add(gd.NewTrigger(fwd, 0))
	net.file(gd.ZeroGroup, h)
}
