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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignSpecificIDsBasic(t *testing.T) {
	obj := NewObject(ModeTrigger)
	key := ArbitraryId(ClassGroup, 1)
	obj.Params[10] = IdParam(key)

	usage, err := AssignSpecificIDs([]*Object{&obj}, NewReservedIDs())
	require.NoError(t, err)
	assert.Equal(t, 1, usage[ClassGroup])

	got := obj.Params[10]
	assert.True(t, got.IdValue.IsSpecific())
	assert.NotEqual(t, uint16(0), got.IdValue.Value)
}

func TestAssignSpecificIDsSameKeySameValue(t *testing.T) {
	key := ArbitraryId(ClassGroup, 7)
	a := NewObject(ModeTrigger)
	a.Params[10] = IdParam(key)
	b := NewObject(ModeTrigger)
	b.Params[10] = IdParam(key)

	_, err := AssignSpecificIDs([]*Object{&a, &b}, NewReservedIDs())
	require.NoError(t, err)

	assert.Equal(t, a.Params[10].IdValue, b.Params[10].IdValue, "the same arbitrary key must map to the same specific value across the whole call")
}

func TestAssignSpecificIDsSkipsReserved(t *testing.T) {
	reserved := NewReservedIDs()
	reserved.ObjectGroups.Insert(Specific(ClassGroup, 1))

	obj := NewObject(ModeTrigger)
	obj.Params[10] = IdParam(ArbitraryId(ClassGroup, 1))

	_, err := AssignSpecificIDs([]*Object{&obj}, reserved)
	require.NoError(t, err)
	assert.NotEqual(t, uint16(1), obj.Params[10].IdValue.Value, "a reserved specific id must not be reassigned to an arbitrary one")
}

func TestAssignSpecificIDsExceedsLimit(t *testing.T) {
	reserved := NewReservedIDs()
	for i := uint16(1); i <= 999; i++ {
		reserved.ObjectGroups.Insert(Specific(ClassGroup, i))
	}

	obj := NewObject(ModeTrigger)
	obj.Params[10] = IdParam(ArbitraryId(ClassGroup, 1))

	_, err := AssignSpecificIDs([]*Object{&obj}, reserved)
	require.Error(t, err)
	var target *ErrExceedsIDLimit
	require.ErrorAs(t, err, &target)
	assert.Equal(t, ClassGroup, target.Class)
}

// TestAssignSpecificIDsExceedsLimitByAmount covers 1000 static
// objects referencing Specific groups 1g..1000g exceeds the per-class
// budget before any arbitrary ID is even considered.
func TestAssignSpecificIDsExceedsLimitByAmount(t *testing.T) {
	var statics []Object
	for i := uint16(1); i <= 1000; i++ {
		o := NewObject(ModeObject)
		o.Params[10] = IdParam(Specific(ClassGroup, i))
		statics = append(statics, o)
	}
	reserved := BuildReservedIDs(nil, statics)

	_, err := AssignSpecificIDs(nil, reserved)
	require.Error(t, err)
	var target *ErrExceedsIDLimitByAmount
	require.ErrorAs(t, err, &target)
	assert.Equal(t, ClassGroup, target.Class)
	assert.Equal(t, 999, target.Max)
	assert.Equal(t, 1000, target.Amount)
}
