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

// TriggerObject is an Object (Mode == ModeTrigger) plus a TriggerOrder: an f64
// placement key that totally orders triggers for the host's execution model.
// Trigger order is preserved by the optimizer: when several replacement
// triggers substitute one original, they occupy a narrow sub-window of the
// original's order (see optimizer.ReplaceGroups).
type TriggerObject struct {
	Obj   Object
	Order float64
}

// NewTrigger builds a trigger object with the given order.
func NewTrigger(obj Object, order float64) TriggerObject {
	obj.Mode = ModeTrigger
	return TriggerObject{Obj: obj, Order: order}
}

// Clone returns a deep-enough copy of the trigger (see Object.Clone).
func (t TriggerObject) Clone() TriggerObject {
	return TriggerObject{Obj: t.Obj.Clone(), Order: t.Order}
}
