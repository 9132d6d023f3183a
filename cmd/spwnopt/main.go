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

// Command spwnopt drives the trigger-graph optimizer and the level-string
// serializer from a JSON document, for exercising the library without a
// source-language front end attached.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/Spu7Nix/SPWN-language-sub003/gd"
	"github.com/Spu7Nix/SPWN-language-sub003/levelstring"
	"github.com/Spu7Nix/SPWN-language-sub003/optimizer"
)

var (
	_in      = flag.String("in", "", "path to the input JSON document; defaults to stdin")
	_logJSON = flag.Bool("log-json", false, "emit structured logs as JSON instead of human-readable text")
)

// request is the CLI's JSON envelope. Presence of "old_level_string" selects
// append mode; any other document, with or without "triggers", selects
// optimize mode.
type request struct {
	Triggers       []gd.TriggerObject `json:"triggers,omitempty"`
	Objects        []gd.Object        `json:"objects,omitempty"`
	ClosedGroup    uint16             `json:"closed_group,omitempty"`
	Reserved       *reservedDTO       `json:"reserved,omitempty"`
	OldLevelString *string            `json:"old_level_string,omitempty"`
}

type reservedDTO struct {
	ObjectGroups  []gd.Id `json:"object_groups,omitempty"`
	ObjectColors  []gd.Id `json:"object_colors,omitempty"`
	ObjectBlocks  []gd.Id `json:"object_blocks,omitempty"`
	ObjectItems   []gd.Id `json:"object_items,omitempty"`
	TriggerGroups []gd.Id `json:"trigger_groups,omitempty"`
}

func (d *reservedDTO) toReservedIDs() gd.ReservedIDs {
	r := gd.NewReservedIDs()
	if d == nil {
		return r
	}
	for _, id := range d.ObjectGroups {
		r.ObjectGroups.Insert(id)
	}
	for _, id := range d.ObjectColors {
		r.ObjectColors.Insert(id)
	}
	for _, id := range d.ObjectBlocks {
		r.ObjectBlocks.Insert(id)
	}
	for _, id := range d.ObjectItems {
		r.ObjectItems.Insert(id)
	}
	for _, id := range d.TriggerGroups {
		r.TriggerGroups.Insert(id)
	}
	return r
}

type optimizeResponse struct {
	Triggers    []gd.TriggerObject `json:"triggers"`
	ClosedGroup uint16             `json:"closed_group"`
	Usage       gd.IDUsage         `json:"usage"`
}

type appendResponse struct {
	LevelString string `json:"level_string"`
	Usage       [4]int `json:"usage"`
}

func main() {
	flag.Parse()

	level := hclog.Info
	opts := &hclog.LoggerOptions{Name: "spwnopt", Level: level, JSONFormat: *_logJSON}
	logger := hclog.New(opts)

	if err := run(logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("spwnopt failed", "error", err)
		os.Exit(1)
	}
}

func run(logger hclog.Logger, stdin io.Reader, stdout io.Writer) error {
	var r io.Reader = stdin
	if *_in != "" {
		f, err := os.Open(*_in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	enc := json.NewEncoder(stdout)

	if req.OldLevelString != nil {
		levelString, usage, err := levelstring.AppendObjects(req.Objects, *req.OldLevelString, logger)
		if err != nil {
			return fmt.Errorf("append objects: %w", err)
		}
		return enc.Encode(appendResponse{LevelString: levelString, Usage: usage})
	}

	reserved := req.Reserved.toReservedIDs()
	result, err := optimizer.Optimize(req.Triggers, req.Objects, reserved, req.ClosedGroup, logger)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	return enc.Encode(optimizeResponse{
		Triggers:    result.Triggers,
		ClosedGroup: result.ClosedGroup,
		Usage:       result.Usage,
	})
}
