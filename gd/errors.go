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

import "fmt"

// ErrExceedsIDLimit is returned when the optimizer cannot allocate a specific ID
// for an arbitrary one because 1..=config.IDMax is already saturated for Class.
type ErrExceedsIDLimit struct {
	Class Class
}

func (e *ErrExceedsIDLimit) Error() string {
	return fmt.Sprintf("cannot allocate a free %s id: all ids are in use", e.Class)
}

// ErrExceedsIDLimitByAmount is returned when, after collecting every Specific ID
// mentioned by the input, Class's closed set already exceeds Max -- the input
// itself is illegal, independent of anything the optimizer does.
type ErrExceedsIDLimitByAmount struct {
	Class  Class
	Max    int
	Amount int
}

func (e *ErrExceedsIDLimitByAmount) Error() string {
	return fmt.Sprintf("level uses %d %s ids, but the host only supports %d", e.Amount, e.Class, e.Max)
}
