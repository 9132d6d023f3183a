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
	"github.com/hashicorp/go-hclog"
)

// Result is everything Optimize produces: the final trigger set, the final
// closed-group counter (group-toggling and root-group-split may have
// advanced it, and a caller compiling further functions needs the new
// value), and the per-class count of specific IDs actually in use.
type Result struct {
	Triggers    []gd.TriggerObject
	ClosedGroup uint16
	Usage       gd.IDUsage
}

// Optimize runs the full trigger-graph optimizer: up to
// config.DriverIterations rounds of dead-code elimination and
// spawn-chain fusion to a loose fixed point, followed by one pass each of
// trigger dedup, group-toggling lowering, root-group splitting, and final
// specific-ID assignment.
//
// triggers is consumed by value (TriggerObject.Clone semantics are the
// caller's concern before calling). staticObjects is not read: the reserved
// IDs derived from the level's static objects come in through reserved (see
// gd.BuildReservedIDs).
func Optimize(triggers []gd.TriggerObject, staticObjects []gd.Object, reserved gd.ReservedIDs, closedGroup uint16, logger hclog.Logger) (Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	store := NewStore(triggers)
	toggles := ComputeToggleGroups(store)

	logger.Debug("starting fixed-point loop", "triggers", store.Len(), "iterations", config.DriverIterations)

	for i := 0; i < config.DriverIterations; i++ {
		net := CleanNetwork(store, true)
		RemoveDeadCode(net, store, reserved)

		net = CleanNetwork(store, false)
		SpawnOptimization(net, store, reserved, toggles)

		CleanNetwork(store, false)
		reserved.UpdateTriggerGroups(store.Live())

		logger.Trace("fixed-point round complete", "round", i, "live", len(store.Live()))
	}

	net := CleanNetwork(store, false)
	DedupTriggers(net, store, reserved)

	net = CleanNetwork(store, false)
	GroupToggling(net, store, reserved, &closedGroup)

	RootGroupSplit(net, store, &closedGroup)

	usage, err := gd.AssignSpecificIDs(store.LiveObjects(), reserved)
	if err != nil {
		return Result{}, err
	}

	logger.Debug("optimization complete", "live", len(store.Live()), "closed_group", closedGroup)

	return Result{
		Triggers:    store.Live(),
		ClosedGroup: closedGroup,
		Usage:       usage,
	}, nil
}
