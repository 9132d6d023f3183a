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
	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// Role is the classification assigned to every trigger.
type Role int

const (
	// RoleSpawn triggers are freely fusable: firing group A spawns group B
	// after a delay.
	RoleSpawn Role = iota
	// RoleFunc triggers signal without side effects and are safe to elide if
	// unreferenced.
	RoleFunc
	// RoleOutput triggers have an observable effect and are never deleted
	// purely because nothing else references them.
	RoleOutput
)

// ClassifyRole derives a trigger's Role from its opcode and parameters.
// Classification is a table lookup on the opcode with two
// overrides: a spawn trigger becomes Output whenever its target is Specific
// (the host editor can observe it), and becomes Func rather than Spawn when its
// hard-duration bit is set.
func ClassifyRole(obj gd.Object) Role {
	switch obj.Opcode() {
	case config.OpSpawn:
		if target, ok := obj.Target(); ok && target.IsSpecific() {
			return RoleOutput
		}
		if obj.HardDuration() {
			return RoleFunc
		}
		return RoleSpawn

	case config.OpTouch:
		target, ok := obj.Target()
		if !ok {
			// No target group at all: nothing to optimize around, treat as Output.
			return RoleOutput
		}
		if target.IsSpecific() {
			return RoleOutput
		}
		return RoleFunc

	case config.OpCount, config.OpCollision, config.OpInstantCount, config.OpOnDeath:
		if !obj.ActivateGroup() {
			// Toggles a group off: may be observed as the only thing controlling it.
			return RoleOutput
		}
		target, ok := obj.Target()
		if !ok {
			return RoleOutput
		}
		if target.IsSpecific() {
			return RoleOutput
		}
		return RoleFunc

	default:
		return RoleOutput
	}
}
