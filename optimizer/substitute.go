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

// Swap is one entry of the table ReplaceGroups consumes: every occurrence of
// the map key is rewritten to To, and the triggers whose own GROUPS address
// was the map key are repacked into the order window starting at BaseOrder.
type Swap struct {
	To        gd.Id
	BaseOrder float64
}

// ReplaceGroups rewrites every Group/GroupList ObjParam across the store in
// place according to table, and for every old Id
// that was itself a trigger's GROUPS address, reassigns the affected triggers
// evenly-spaced orders inside [BaseOrder, BaseOrder+config.OrderWindowWidth),
// sorted by their current order so relative sequencing survives the move.
func ReplaceGroups(store *Store, table map[gd.Id]Swap) {
	affected := make(map[gd.Id][]Handle, len(table))

	for i := 0; i < store.Len(); i++ {
		h := Handle(i)
		obj := &store.Get(h).Obj.Obj
		for key, p := range obj.Params {
			switch p.Kind {
			case gd.KindId:
				swap, ok := table[p.IdValue]
				if !ok {
					continue
				}
				oldID := p.IdValue
				p.IdValue = swap.To
				obj.Params[key] = p
				if key == config.KeyGroups {
					affected[oldID] = append(affected[oldID], h)
				}
			case gd.KindGroupList:
				changed := false
				ids := make([]gd.Id, len(p.GroupIDs))
				copy(ids, p.GroupIDs)
				for idx, g := range ids {
					swap, ok := table[g]
					if !ok {
						continue
					}
					ids[idx] = swap.To
					changed = true
					if key == config.KeyGroups {
						affected[g] = append(affected[g], h)
					}
				}
				if changed {
					p.GroupIDs = ids
					obj.Params[key] = p
				}
			}
		}
	}

	for oldID, swap := range table {
		handles := affected[oldID]
		if len(handles) == 0 {
			continue
		}
		sort.SliceStable(handles, func(i, j int) bool {
			return store.Get(handles[i]).Obj.Order < store.Get(handles[j]).Obj.Order
		})
		delta := config.OrderWindowWidth / float64(len(handles))
		for i, h := range handles {
			store.Get(h).Obj.Order = swap.BaseOrder + float64(i)*delta
		}
	}
}
