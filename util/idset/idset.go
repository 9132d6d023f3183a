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

// Package idset gives ReservedIDs' per-class ID sets a shared set
// implementation instead of hand-rolled map[T]struct{}. The dead-code stack,
// the toggle buckets and the final ID assignment's closed sets do not use it.
package idset

import "github.com/hashicorp/go-set/v3"

// Set is a thin alias over the generic set type from go-set, the same
// collection hashicorp-nomad reaches for wherever it needs membership tests
// over a scheduling or filtering domain (e.g. node pool filters, feasibility
// checks).
type Set[T comparable] = set.Set[T]

// New returns an empty set with room for sizeHint elements.
func New[T comparable](sizeHint int) *Set[T] {
	return set.New[T](sizeHint)
}

// From returns a set containing every element of items.
func From[T comparable](items []T) *Set[T] {
	return set.From[T](items)
}
