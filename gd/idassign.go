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

import "github.com/Spu7Nix/SPWN-language-sub003/config"

// IDUsage reports, per class (in Class order: group, color, block, item), how
// many specific IDs the output actually uses.
type IDUsage [4]int

// AssignSpecificIDs is the optimizer's final step: it assigns a concrete
// integer in 1..=config.IDMax to every Arbitrary ID still referenced by objects,
// skipping integers already closed by reserved IDs or by Specific IDs discovered
// while scanning objects itself. The same Arbitrary key always maps to the same
// Specific value within one call (memoised per class).
//
// objects is mutated in place. AssignSpecificIDs fails closed: if a class's
// closed set already exceeds config.IDMax before any arbitrary ID is assigned,
// the input itself is illegal (ErrExceedsIDLimitByAmount); if assignment later
// finds no free integer for a class, allocation fails (ErrExceedsIDLimit).
func AssignSpecificIDs(objects []*Object, reserved ReservedIDs) (IDUsage, error) {
	var closed [4]map[uint16]bool
	for c := range closed {
		closed[c] = make(map[uint16]bool)
		for _, id := range reserved.byClass(Class(c)).Slice() {
			if id.IsSpecific() {
				closed[c][id.Value] = true
			}
		}
	}

	forEachID(objects, func(id Id) {
		if id.IsSpecific() {
			closed[id.Class][id.Value] = true
		}
	})

	for c := range closed {
		delete(closed[c], 0)
		if len(closed[c]) > config.IDMax {
			return IDUsage{}, &ErrExceedsIDLimitByAmount{Class: Class(c), Max: config.IDMax, Amount: len(closed[c])}
		}
	}

	var assigned [4]map[uint16]uint16
	for c := range assigned {
		assigned[c] = make(map[uint16]uint16)
	}

	var assignErr error
	remap := func(id Id) Id {
		if assignErr != nil || id.IsSpecific() {
			return id
		}
		c := id.Class
		if v, ok := assigned[c][id.Value]; ok {
			return Specific(c, v)
		}
		for candidate := uint16(1); candidate <= config.IDMax; candidate++ {
			if closed[c][candidate] {
				continue
			}
			closed[c][candidate] = true
			assigned[c][id.Value] = candidate
			return Specific(c, candidate)
		}
		assignErr = &ErrExceedsIDLimit{Class: c}
		return id
	}

	for _, obj := range objects {
		transformIDs(obj, remap)
		if assignErr != nil {
			return IDUsage{}, assignErr
		}
	}

	var usage IDUsage
	for c := range closed {
		usage[c] = len(closed[c])
	}
	return usage, nil
}

// forEachID calls f for every Id appearing in any parameter of objects.
func forEachID(objects []*Object, f func(Id)) {
	for _, obj := range objects {
		for _, p := range obj.Params {
			switch p.Kind {
			case KindId:
				f(p.IdValue)
			case KindGroupList:
				for _, g := range p.GroupIDs {
					f(g)
				}
			}
		}
	}
}

// transformIDs rewrites every Id appearing in obj's parameters via f, writing
// the result back into the parameter map.
func transformIDs(obj *Object, f func(Id) Id) {
	for k, p := range obj.Params {
		switch p.Kind {
		case KindId:
			p.IdValue = f(p.IdValue)
			obj.Params[k] = p
		case KindGroupList:
			changed := false
			out := make([]Id, len(p.GroupIDs))
			for i, g := range p.GroupIDs {
				ng := f(g)
				out[i] = ng
				if ng != g {
					changed = true
				}
			}
			if changed {
				p.GroupIDs = out
				obj.Params[k] = p
			}
		}
	}
}
