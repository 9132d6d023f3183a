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

// Package optimizer implements the trigger-graph optimizer: the whole-program
// rewriting pass that consumes a flat bag of emitted trigger objects and a
// reserved-ID set, and returns a smaller, equivalent bag of trigger objects.
package optimizer

import (
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
	"github.com/Spu7Nix/SPWN-language-sub003/util/orderedmap"
)

// Handle is a stable reference into a Store's flat trigger vector. Handles are
// never invalidated by deletion -- a deleted trigger keeps its handle and its
// slot, just tombstoned, so that other handles referring to the same store stay
// valid across passes.
type Handle int

// Trigger is a stored trigger object plus the bookkeeping the optimizer passes
// over it: its classified Role and whether it has been tombstoned.
type Trigger struct {
	Obj     gd.TriggerObject
	Role    Role
	Deleted bool
}

// Store owns the flat vector of trigger records for the duration of one
// Optimize call.
type Store struct {
	triggers []Trigger
}

// NewStore builds a Store from the initial flat sequence of trigger objects,
// classifying each one's Role immediately (the Role of a trigger never changes
// across passes; only its deleted flag and its parameters do).
func NewStore(triggers []gd.TriggerObject) *Store {
	s := &Store{triggers: make([]Trigger, len(triggers))}
	for i, t := range triggers {
		s.triggers[i] = Trigger{Obj: t, Role: ClassifyRole(t.Obj)}
	}
	return s
}

// Add appends a new trigger (created by a pass, e.g. a synthetic spawn) and
// returns its handle.
func (s *Store) Add(t gd.TriggerObject) Handle {
	s.triggers = append(s.triggers, Trigger{Obj: t, Role: ClassifyRole(t.Obj)})
	return Handle(len(s.triggers) - 1)
}

// Get returns a pointer to the trigger record for h, valid until the next Add
// (which may grow the backing slice).
func (s *Store) Get(h Handle) *Trigger {
	return &s.triggers[h]
}

// Len returns the number of trigger records, deleted or not.
func (s *Store) Len() int {
	return len(s.triggers)
}

// Live returns the non-deleted trigger objects, in store order. This is the
// final step before serialisation.
func (s *Store) Live() []gd.TriggerObject {
	out := make([]gd.TriggerObject, 0, len(s.triggers))
	for _, t := range s.triggers {
		if !t.Deleted {
			out = append(out, t.Obj)
		}
	}
	return out
}

// LiveObjects returns pointers to the Object of every non-deleted trigger, in
// store order, valid until the next Add. This is the view gd.AssignSpecificIDs
// mutates in place during final ID assignment.
func (s *Store) LiveObjects() []*gd.Object {
	out := make([]*gd.Object, 0, len(s.triggers))
	for i := range s.triggers {
		if !s.triggers[i].Deleted {
			out = append(out, &s.triggers[i].Obj.Obj)
		}
	}
	return out
}

// Gang is the set of triggers filed under one group address, plus one cached
// in-edge flag.
type Gang struct {
	Handles []Handle
	// NonSpawnTriggersIn is true if some non-deleted Spawn/Func trigger whose
	// TARGET equals this group is itself not a Spawn.
	NonSpawnTriggersIn bool
}

// Network is a map from group Id to trigger gang. It is rebuilt from scratch
// by CleanNetwork every time a pass needs it consistent with the live
// trigger set; no pass should read network state another pass wrote without
// an intervening CleanNetwork call.
type Network struct {
	Groups *orderedmap.OrderedMap[gd.Id, *Gang]
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		Groups: orderedmap.New[gd.Id, *Gang](),
	}
}

// Gang returns the gang filed under group, or nil if the group has no triggers.
func (n *Network) Gang(group gd.Id) (*Gang, bool) {
	return n.Groups.Load(group)
}

// file appends h (whose trigger's own address is group) into the right gang,
// creating the gang if necessary.
func (n *Network) file(group gd.Id, h Handle) {
	g, ok := n.Groups.Load(group)
	if !ok {
		g = &Gang{}
		n.Groups.Store(group, g)
	}
	g.Handles = append(g.Handles, h)
}

// groupOf returns the group a trigger is filed under: its GROUPS parameter, or
// the zero group if absent.
func groupOf(obj gd.Object) gd.Id {
	groups := obj.Groups()
	if len(groups) == 0 {
		return gd.ZeroGroup
	}
	// A trigger only ever has a single Id in its own GROUPS slot in well-formed
	// input; if it somehow carries a GroupList (e.g. after a substitution that
	// widened it), file it under the first entry. A GROUPS value only becomes
	// a multi-entry list via the level-string signature tagging that happens
	// after optimization, never during it.
	return groups[0]
}
