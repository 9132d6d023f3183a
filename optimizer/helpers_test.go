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

func spawnTrigger(group, target gd.Id, delay, order float64) gd.TriggerObject {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpSpawn))
	obj.Params[config.KeyGroups] = gd.IdParam(group)
	obj.Params[config.KeyTarget] = gd.IdParam(target)
	obj.Params[config.KeyDelay] = gd.FloatParam(delay)
	return gd.NewTrigger(obj, order)
}

func moveTrigger(group, target gd.Id, order float64) gd.TriggerObject {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpMove))
	obj.Params[config.KeyGroups] = gd.IdParam(group)
	obj.Params[config.KeyTarget] = gd.IdParam(target)
	return gd.NewTrigger(obj, order)
}

func buildNetwork(store *Store) *Network {
	return CleanNetwork(store, false)
}

func ag(v uint16) gd.Id { return gd.ArbitraryId(gd.ClassGroup, v) }
func sg(v uint16) gd.Id { return gd.Specific(gd.ClassGroup, v) }
