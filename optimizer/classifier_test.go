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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

func TestClassifyRoleSpawn(t *testing.T) {
	trig := spawnTrigger(sg(0), ag(1), 1.0, 0)
	assert.Equal(t, RoleSpawn, ClassifyRole(trig.Obj))
}

func TestClassifyRoleSpawnToSpecificIsOutput(t *testing.T) {
	trig := spawnTrigger(sg(0), sg(7), 1.0, 0)
	assert.Equal(t, RoleOutput, ClassifyRole(trig.Obj))
}

func TestClassifyRoleSpawnHardDurationIsFunc(t *testing.T) {
	trig := spawnTrigger(sg(0), ag(1), 1.0, 0)
	trig.Obj.Params[config.KeyHardDuration] = gd.BoolParam(true)
	assert.Equal(t, RoleFunc, ClassifyRole(trig.Obj))
}

func TestClassifyRoleTouchToArbitraryIsFunc(t *testing.T) {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpTouch))
	obj.Params[config.KeyTarget] = gd.IdParam(ag(1))
	assert.Equal(t, RoleFunc, ClassifyRole(obj))
}

func TestClassifyRoleMoveIsOutput(t *testing.T) {
	trig := moveTrigger(sg(0), sg(7), 0)
	assert.Equal(t, RoleOutput, ClassifyRole(trig.Obj))
}

func TestClassifyRoleCountOffIsOutput(t *testing.T) {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpCount))
	obj.Params[config.KeyTarget] = gd.IdParam(ag(1))
	obj.Params[config.KeyActivateGroup] = gd.BoolParam(false)
	assert.Equal(t, RoleOutput, ClassifyRole(obj))
}

func TestClassifyRoleCountOnArbitraryIsFunc(t *testing.T) {
	obj := gd.NewObject(gd.ModeTrigger)
	obj.Params[config.KeyOpcode] = gd.IntParam(int64(config.OpCount))
	obj.Params[config.KeyTarget] = gd.IdParam(ag(1))
	obj.Params[config.KeyActivateGroup] = gd.BoolParam(true)
	assert.Equal(t, RoleFunc, ClassifyRole(obj))
}
