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

// Package levelstring renders optimized objects into the host's serialised
// object format and back: `k1,v1,k2,v2,...;` per object, and provides the
// zlib compression envelope that format travels in once it is embedded in a
// save file.
package levelstring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
	"github.com/Spu7Nix/SPWN-language-sub003/gd"
)

// SignatureGroup is the group every object this package serialises is tagged
// with via config.SignatureGroup, reproduced here as a ready-made Id.
var SignatureGroup = gd.Specific(gd.ClassGroup, config.SignatureGroup)

// RenderObject serialises a single object in the host's format, appending
// SignatureGroup to its GROUPS membership (creating a GroupList out of a bare
// Group if necessary) and, for trigger-mode objects, a linked-group marker
// (key 108, value 1) the host requires on every trigger. The marker is
// written into the param map like any other key and sorted into position
// below rather than appended as a literal trailing field, so it is the last
// field only when the object carries no key above 108.
func RenderObject(obj gd.Object) string {
	cp := obj.Clone()
	tagSignature(&cp)
	if cp.Mode == gd.ModeTrigger {
		cp.Params[108] = gd.IntParam(1)
	}

	keys := make([]int, 0, len(cp.Params))
	for k := range cp.Params {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	var b strings.Builder
	for _, ik := range keys {
		k := uint8(ik)
		b.WriteString(strconv.Itoa(int(k)))
		b.WriteByte(',')
		b.WriteString(cp.Params[k].String())
		b.WriteByte(',')
	}
	b.WriteByte(';')
	return b.String()
}

func tagSignature(obj *gd.Object) {
	p, ok := obj.Params[config.KeyGroups]
	if !ok {
		obj.Params[config.KeyGroups] = gd.IdParam(SignatureGroup)
		return
	}
	switch p.Kind {
	case gd.KindId:
		obj.Params[config.KeyGroups] = gd.GroupListParam([]gd.Id{p.IdValue, SignatureGroup})
	case gd.KindGroupList:
		obj.Params[config.KeyGroups] = gd.GroupListParam(append(append([]gd.Id{}, p.GroupIDs...), SignatureGroup))
	default:
		obj.Params[config.KeyGroups] = gd.IdParam(SignatureGroup)
	}
}

// AppendObjects assigns a concrete specific ID to every Arbitrary ID
// referenced by objects (skipping whatever oldLevelString already uses, so
// the new objects never collide with the existing level), serialises every
// object, and returns the resulting level string plus the per-class count of
// specific IDs now in use.
func AppendObjects(objects []gd.Object, oldLevelString string, logger hclog.Logger) (string, [4]int, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	reserved := usedIDs(oldLevelString)

	ptrs := make([]*gd.Object, len(objects))
	cloned := make([]gd.Object, len(objects))
	for i := range objects {
		cloned[i] = objects[i].Clone()
		ptrs[i] = &cloned[i]
	}

	usage, err := gd.AssignSpecificIDs(ptrs, reserved)
	if err != nil {
		logger.Error("append objects: id assignment failed", "error", err)
		return "", [4]int{}, err
	}

	var b strings.Builder
	for _, obj := range cloned {
		b.WriteString(RenderObject(obj))
	}

	logger.Debug("appended objects", "count", len(objects), "usage", usage)
	return b.String(), [4]int(usage), nil
}

// RemoveSpwnObjects filters out every object in levelString whose GROUPS
// entry (key 57) contains config.SignatureGroup, by string-splitting on `;`
// and `,` and dot-splitting the GROUPS value. It is the exact inverse of the
// tagging RenderObject performs, over a level string that may also contain
// host-authored objects untouched by this package.
func RemoveSpwnObjects(levelString string) string {
	sig := strconv.Itoa(config.SignatureGroup)

	objs := strings.Split(levelString, ";")
	var out strings.Builder
	for _, raw := range objs {
		if raw == "" {
			continue
		}
		if objectHasSignature(raw, sig) {
			continue
		}
		out.WriteString(raw)
		out.WriteByte(';')
	}
	return out.String()
}

func objectHasSignature(raw, sig string) bool {
	fields := strings.Split(raw, ",")
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i] != "57" {
			continue
		}
		for _, g := range strings.Split(fields[i+1], ".") {
			if g == sig {
				return true
			}
		}
	}
	return false
}

// usedIDs scans an already-serialised level string for specific IDs already
// in use, per class, so AppendObjects never reassigns a colliding value. This
// is a conservative subset of the host's own key->class table (GROUPS,
// TARGET, and the common channel/item/block keys); keys it does not
// recognise are ignored rather than misclassified.
func usedIDs(levelString string) gd.ReservedIDs {
	reserved := gd.NewReservedIDs()
	if levelString == "" {
		return reserved
	}

	for _, raw := range strings.Split(levelString, ";") {
		if raw == "" {
			continue
		}
		fields := strings.Split(raw, ",")
		props := map[string]string{}
		for i := 0; i+1 < len(fields); i += 2 {
			props[fields[i]] = fields[i+1]
		}

		for key, val := range props {
			switch key {
			case "57": // GROUPS
				for _, g := range strings.Split(val, ".") {
					if v, ok := parseUint16(g); ok {
						reserved.ObjectGroups.Insert(gd.Specific(gd.ClassGroup, v))
					}
				}
			case "51": // TARGET
				if v, ok := parseUint16(val); ok {
					if props["1"] == "1815" || props["1"] == "1816" {
						reserved.ObjectBlocks.Insert(gd.Specific(gd.ClassBlock, v))
					} else {
						reserved.ObjectGroups.Insert(gd.Specific(gd.ClassGroup, v))
					}
				}
			case "71": // target position / follow / center
				if v, ok := parseUint16(val); ok {
					reserved.ObjectGroups.Insert(gd.Specific(gd.ClassGroup, v))
				}
			case "21", "22", "23": // channels
				if v, ok := parseUint16(val); ok {
					reserved.ObjectColors.Insert(gd.Specific(gd.ClassChannel, v))
				}
			case "95": // block ID
				if v, ok := parseUint16(val); ok {
					reserved.ObjectBlocks.Insert(gd.Specific(gd.ClassBlock, v))
				}
			case "80": // item ID, except collision blocks (key 95 covers those)
				if v, ok := parseUint16(val); ok && props["1"] != "1615" {
					reserved.ObjectItems.Insert(gd.Specific(gd.ClassItem, v))
				}
			}
		}
	}

	return reserved
}

func parseUint16(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
