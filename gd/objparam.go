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

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Spu7Nix/SPWN-language-sub003/config"
)

// ParamKind tags the variant held by an ObjParam.
type ParamKind int

const (
	KindInt ParamKind = iota
	KindFloat
	KindBool
	KindText
	KindId        // single Id, class given by IdClass
	KindGroupList // ordered multiset of group Ids
	KindEpsilon   // sentinel minimum delay
)

// ObjParam is a tagged value used as the value side of an object parameter.
// Only one payload field is meaningful per Kind; this is a single flat struct
// rather than a Go interface because the dedup pass (optimizer.DedupTriggers)
// needs a cheap, total, structural hash and equality over every variant -- an
// interface-per-variant design would force a type switch at every comparison
// site for no benefit here. Match exhaustively on Kind wherever this type is
// consumed.
type ObjParam struct {
	Kind ParamKind

	Int      int64
	Float    float64
	Bool     bool
	Text     string
	IdValue  Id
	IdClass  Class // class for KindId when IdValue itself doesn't disambiguate
	GroupIDs []Id  // for KindGroupList
}

func IntParam(v int64) ObjParam    { return ObjParam{Kind: KindInt, Int: v} }
func FloatParam(v float64) ObjParam { return ObjParam{Kind: KindFloat, Float: v} }
func BoolParam(v bool) ObjParam    { return ObjParam{Kind: KindBool, Bool: v} }
func TextParam(v string) ObjParam  { return ObjParam{Kind: KindText, Text: v} }
func EpsilonParam() ObjParam       { return ObjParam{Kind: KindEpsilon} }

// IdParam wraps a single Id (Group/Channel/Block/Item, per id.Class) as a param value.
func IdParam(id Id) ObjParam {
	return ObjParam{Kind: KindId, IdValue: id, IdClass: id.Class}
}

// GroupListParam wraps an ordered multiset of group Ids as a param value.
func GroupListParam(ids []Id) ObjParam {
	cp := make([]Id, len(ids))
	copy(cp, ids)
	return ObjParam{Kind: KindGroupList, GroupIDs: cp}
}

// Equal reports structural equality, comparing floats by bit pattern rather
// than by value: two delays that differ in any bit (e.g. 0.1+0.2 computed at
// run time and 0.3) are not equal and are never collapsed by deduplication.
func (p ObjParam) Equal(o ObjParam) bool {
	if p.Kind != o.Kind {
		return false
	}
	switch p.Kind {
	case KindInt:
		return p.Int == o.Int
	case KindFloat:
		return math.Float64bits(p.Float) == math.Float64bits(o.Float)
	case KindBool:
		return p.Bool == o.Bool
	case KindText:
		return p.Text == o.Text
	case KindId:
		return p.IdValue == o.IdValue
	case KindGroupList:
		if len(p.GroupIDs) != len(o.GroupIDs) {
			return false
		}
		for i := range p.GroupIDs {
			if p.GroupIDs[i] != o.GroupIDs[i] {
				return false
			}
		}
		return true
	case KindEpsilon:
		return true
	default:
		return false
	}
}

// HashKey returns a value suitable for use as a Go map key that encodes the full
// structural identity of the param (floats by bits, group lists by order), for
// use by the dedup pass.
func (p ObjParam) HashKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|", p.Kind)
	switch p.Kind {
	case KindInt:
		fmt.Fprintf(&b, "%d", p.Int)
	case KindFloat:
		fmt.Fprintf(&b, "%x", math.Float64bits(p.Float))
	case KindBool:
		fmt.Fprintf(&b, "%t", p.Bool)
	case KindText:
		b.WriteString(p.Text)
	case KindId:
		fmt.Fprintf(&b, "%d-%t-%d", p.IdValue.Class, p.IdValue.Arbitrary, p.IdValue.Value)
	case KindGroupList:
		for _, g := range p.GroupIDs {
			fmt.Fprintf(&b, "%d-%t-%d,", g.Class, g.Arbitrary, g.Value)
		}
	}
	return b.String()
}

// String renders the param the way the host-facing serialised object format
// expects: specific IDs print as their integer (arbitrary IDs
// must already have been assigned by the time this is called), floats truncate
// when the fractional part is negligible and otherwise print three fractional
// digits, and group lists are dot-separated.
func (p ObjParam) String() string {
	switch p.Kind {
	case KindInt:
		return strconv.FormatInt(p.Int, 10)
	case KindFloat:
		return formatFloat(p.Float)
	case KindBool:
		if p.Bool {
			return "1"
		}
		return "0"
	case KindText:
		return p.Text
	case KindId:
		return idRenderOne(p.IdValue)
	case KindGroupList:
		parts := make([]string, len(p.GroupIDs))
		for i, g := range p.GroupIDs {
			parts[i] = idRenderOne(g)
		}
		return strings.Join(parts, ".")
	case KindEpsilon:
		return formatFloat(config.EpsilonDelay)
	default:
		return ""
	}
}

func idRenderOne(id Id) string {
	if id.Arbitrary {
		return "0"
	}
	return strconv.FormatUint(uint64(id.Value), 10)
}

func formatFloat(n float64) string {
	if math.Abs(n-math.Trunc(n)) < 0.001 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', 3, 64)
}
