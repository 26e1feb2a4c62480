// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

// CheckFlags selects individual guard checks.
type CheckFlags uint8

const (
	// DiscardedCheck reports guards that are dropped right after construction or relocation.
	DiscardedCheck CheckFlags = 1 << iota

	// UnfinalizedCheck reports guard variables that are never finalized or handed off.
	UnfinalizedCheck

	// DeferredCheck reports guards finalized by a plain, non-deferred Exit call.
	DeferredCheck

	// TerminatedCheck reports process exits that skip pending deferred guards.
	TerminatedCheck
)

// Checks is the set of enabled guard checks.
type Checks = BitMask[CheckFlags]

// DefaultChecks enables all checks.
func DefaultChecks() Checks {
	return NewBitMask(DiscardedCheck, UnfinalizedCheck, DeferredCheck, TerminatedCheck)
}

// BehaviorFlags represents behavioral options of the analyzer.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota

	// SuggestFixes specifies whether diagnostics carry suggested fixes.
	SuggestFixes
)

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior suggests fixes and skips generated files.
func DefaultBehavior() Behavior {
	return NewBitMask(SuggestFixes)
}
