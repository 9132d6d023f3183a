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

// Package config hosts the non-user-configurable parameters of the trigger-graph
// optimizer --- these are tuning constants and object/parameter keys, not settings
// a caller is expected to override.
package config

// IDMax is the largest specific ID value the host accepts, per class. IDs are a
// dense 1..=IDMax namespace; 0 is reserved for the always-present root/start group.
const IDMax = 999

// DriverIterations bounds the clean/dead-code/spawn fixed-point loop. The pass is
// not required to reach a fixed point; this bounds the cost of pathological inputs
// that would otherwise loop forever chasing convergence.
const DriverIterations = 10

// OrderWindowWidth is the width of the trigger-order sub-slot a group substitution
// packs its affected triggers into, preserving their relative order. See
// optimizer.ReplaceGroups.
const OrderWindowWidth = 0.1

// EpsilonDelay is the platform's minimum delay value. Spawn-chain fusion treats it
// as a sentinel: summing it with another delay yields EpsilonDelay again only while
// the numeric sum is still within epsilon range (see EpsilonRange).
const EpsilonDelay = 0.05

// EpsilonRange is the threshold at or below which a summed delay is still considered
// equivalent to a bare EpsilonDelay for fusion purposes.
const EpsilonRange = 0.05

// SignatureGroup is the group every object emitted by this compiler is tagged
// with, distinguishing compiler-owned objects from level-author objects.
const SignatureGroup = 1001

// Debug is a switch reserved for internal invariant assertions. It is a
// variable, not a const, so tests can flip it. No package in this module
// reads it and the optimizer contains no such assertions, so setting it has
// no effect.
var Debug = false

// Semantic object parameter keys.
const (
	KeyOpcode        uint8 = 1
	KeyTarget        uint8 = 51
	KeyGroups        uint8 = 57
	KeyActivateGroup uint8 = 56
	KeyDelay         uint8 = 63
	KeyHardDuration  uint8 = 103
)

// Trigger opcodes relevant to role classification and the group-toggling pass.
// Values match the host editor's own object IDs.
const (
	OpMove         uint16 = 901
	OpColor        uint16 = 899
	OpRotate       uint16 = 1346
	OpAnimate      uint16 = 1585
	OpPulse        uint16 = 1006
	OpCount        uint16 = 1611
	OpAlpha        uint16 = 1007
	OpToggle       uint16 = 1049
	OpFollow       uint16 = 1347
	OpSpawn        uint16 = 1268
	OpStop         uint16 = 1616
	OpTouch        uint16 = 1595
	OpInstantCount uint16 = 1811
	OpOnDeath      uint16 = 1812
	OpCollision    uint16 = 1815
)

// ClassNames gives the error-message name for each gd.Class, in class-index order.
var ClassNames = [4]string{"group", "color", "block ID", "item ID"}
