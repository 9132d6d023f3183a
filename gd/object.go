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

// Mode tags whether an Object behaves as a decorative level object or a trigger.
type Mode int

const (
	ModeObject Mode = iota
	ModeTrigger
)

// Object is a mapping from small integer parameter keys (0-255, opaque except
// where explicitly interpreted, see config's Key* constants) to ObjParam, plus a
// Mode flag. Objects own their parameter map; cloning is by value via Clone.
type Object struct {
	Params map[uint8]ObjParam
	Mode   Mode
}

// NewObject returns an empty object of the given mode.
func NewObject(mode Mode) Object {
	return Object{Params: make(map[uint8]ObjParam), Mode: mode}
}

// Clone returns a deep-enough copy: a fresh parameter map with independently
// owned GroupList slices, so mutating the clone never aliases the original.
func (o Object) Clone() Object {
	cp := Object{Params: make(map[uint8]ObjParam, len(o.Params)), Mode: o.Mode}
	for k, v := range o.Params {
		if v.Kind == KindGroupList {
			v = GroupListParam(v.GroupIDs)
		}
		cp.Params[k] = v
	}
	return cp
}

// Opcode returns the trigger's opcode (key config.KeyOpcode), or 0 if absent.
func (o Object) Opcode() uint16 {
	p, ok := o.Params[config.KeyOpcode]
	if !ok || p.Kind != KindInt {
		return 0
	}
	return uint16(p.Int)
}

// Target returns the Id the trigger's TARGET parameter names, if any.
func (o Object) Target() (Id, bool) {
	p, ok := o.Params[config.KeyTarget]
	if !ok || p.Kind != KindId {
		return Id{}, false
	}
	return p.IdValue, true
}

// Groups returns the set of groups the object itself belongs to (its GROUPS
// parameter), handling both the single-Id and GroupList encodings. An object
// with no GROUPS entry belongs to the zero group.
func (o Object) Groups() []Id {
	p, ok := o.Params[config.KeyGroups]
	if !ok {
		return []Id{ZeroGroup}
	}
	switch p.Kind {
	case KindId:
		return []Id{p.IdValue}
	case KindGroupList:
		if len(p.GroupIDs) == 0 {
			return []Id{ZeroGroup}
		}
		return p.GroupIDs
	default:
		return []Id{ZeroGroup}
	}
}

// ActivateGroup returns the trigger's ACTIVATE_GROUP toggle-direction flag,
// defaulting to false when absent.
func (o Object) ActivateGroup() bool {
	p, ok := o.Params[config.KeyActivateGroup]
	if !ok || p.Kind != KindBool {
		return false
	}
	return p.Bool
}

// HardDuration returns the trigger's hard-duration bit (key config.KeyHardDuration).
func (o Object) HardDuration() bool {
	p, ok := o.Params[config.KeyHardDuration]
	if !ok || p.Kind != KindBool {
		return false
	}
	return p.Bool
}

// Delay returns the trigger's delay parameter as a float64, treating Epsilon as
// config.EpsilonDelay and a missing delay as zero.
func (o Object) Delay() float64 {
	p, ok := o.Params[config.KeyDelay]
	if !ok {
		return 0
	}
	switch p.Kind {
	case KindFloat:
		return p.Float
	case KindInt:
		return float64(p.Int)
	case KindEpsilon:
		return config.EpsilonDelay
	default:
		return 0
	}
}
