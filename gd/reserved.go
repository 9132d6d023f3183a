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

package gd

import (
	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/util/idset"
)

// ReservedIDs collects the IDs the optimizer must not touch: those referenced by
// the level's static (non-trigger) objects, split by class, plus the set of
// groups used as some trigger's own GROUPS membership (its "address"). Reserved
// IDs constrain both deletion (dead-code pass) and renaming (final ID
// assignment).
type ReservedIDs struct {
	ObjectGroups  *idset.Set[Id]
	ObjectColors  *idset.Set[Id]
	ObjectBlocks  *idset.Set[Id]
	ObjectItems   *idset.Set[Id]
	TriggerGroups *idset.Set[Id]
}

// NewReservedIDs returns an empty ReservedIDs, ready to be populated.
func NewReservedIDs() ReservedIDs {
	return ReservedIDs{
		ObjectGroups:  idset.New[Id](0),
		ObjectColors:  idset.New[Id](0),
		ObjectBlocks:  idset.New[Id](0),
		ObjectItems:   idset.New[Id](0),
		TriggerGroups: idset.New[Id](0),
	}
}

// byClass returns the reserved object-id set for the given class.
func (r ReservedIDs) byClass(class Class) *idset.Set[Id] {
	switch class {
	case ClassGroup:
		return r.ObjectGroups
	case ClassChannel:
		return r.ObjectColors
	case ClassBlock:
		return r.ObjectBlocks
	case ClassItem:
		return r.ObjectItems
	default:
		return idset.New[Id](0)
	}
}

// BuildReservedIDs computes the reserved-ID set from the flat sequence of
// emitted trigger objects plus the level's static (decorative, non-trigger)
// objects.
func BuildReservedIDs(triggers []TriggerObject, staticObjects []Object) ReservedIDs {
	reserved := NewReservedIDs()

	for _, obj := range staticObjects {
		collectIDs(obj, reserved)
	}

	for _, t := range triggers {
		p, ok := t.Obj.Params[config.KeyGroups]
		if !ok {
			continue
		}
		switch p.Kind {
		case KindId:
			reserved.TriggerGroups.Insert(p.IdValue)
		case KindGroupList:
			for _, g := range p.GroupIDs {
				reserved.TriggerGroups.Insert(g)
			}
		}
	}

	return reserved
}

func collectIDs(obj Object, reserved ReservedIDs) {
	for _, p := range obj.Params {
		switch p.Kind {
		case KindId:
			reserved.byClass(p.IdValue.Class).Insert(p.IdValue)
		case KindGroupList:
			for _, g := range p.GroupIDs {
				reserved.byClass(g.Class).Insert(g)
			}
		}
	}
}

// UpdateTriggerGroups recomputes TriggerGroups from the current (live) trigger
// set. The driver calls this once per fixed-point iteration since dead-code
// elimination and spawn fusion can change which arbitrary groups are still a
// trigger's own address.
func (r *ReservedIDs) UpdateTriggerGroups(triggers []TriggerObject) {
	r.TriggerGroups = idset.New[Id](0)
	for _, t := range triggers {
		p, ok := t.Obj.Params[config.KeyGroups]
		if !ok {
			continue
		}
		switch p.Kind {
		case KindId:
			r.TriggerGroups.Insert(p.IdValue)
		case KindGroupList:
			for _, g := range p.GroupIDs {
				r.TriggerGroups.Insert(g)
			}
		}
	}
}
