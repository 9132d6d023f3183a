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

// Package gd implements the minimal data model the trigger-graph optimizer
// consumes and produces: identifiers, object parameters, objects, and trigger
// objects, plus the reserved-ID collection and final specific-ID assignment that
// bracket the optimizer proper.
package gd

import "fmt"

// Class is one of the four identifier namespaces the host recognises. Each class
// has an independent 1..=config.IDMax namespace.
type Class int

const (
	ClassGroup Class = iota
	ClassChannel
	ClassBlock
	ClassItem
)

// String renders the class the way it appears in host-facing error messages.
func (c Class) String() string {
	switch c {
	case ClassGroup:
		return "group"
	case ClassChannel:
		return "color"
	case ClassBlock:
		return "block ID"
	case ClassItem:
		return "item ID"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Id is tagged with one of the four Classes and is either Specific (a concrete,
// externally observable small integer) or Arbitrary (a compiler-generated
// placeholder the optimizer is free to rename, coalesce, or assign).
//
// Id is a plain comparable struct (no pointers, no interface) so that it can
// be used directly as a map key and hashed by value.
type Id struct {
	Class     Class
	Arbitrary bool
	Value     uint16
}

// Specific constructs a Specific ID of the given class.
func Specific(class Class, value uint16) Id {
	return Id{Class: class, Value: value}
}

// ArbitraryId constructs an Arbitrary ID of the given class.
func ArbitraryId(class Class, key uint16) Id {
	return Id{Class: class, Arbitrary: true, Value: key}
}

// IsSpecific reports whether the ID is a concrete, host-observable value.
func (id Id) IsSpecific() bool { return !id.Arbitrary }

// IsArbitrary reports whether the ID is a compiler-generated placeholder.
func (id Id) IsArbitrary() bool { return id.Arbitrary }

// String renders the ID for debugging; it is never used for the host-facing
// serialised format (see ObjParam.String for that).
func (id Id) String() string {
	if id.Arbitrary {
		return fmt.Sprintf("%s?%d", id.Class, id.Value)
	}
	return fmt.Sprintf("%s%d", id.Class, id.Value)
}

// ZeroGroup is the always-present root group (Specific group 0) every emitted
// trigger lands in unless it declares its own GROUPS membership.
var ZeroGroup = Specific(ClassGroup, 0)
