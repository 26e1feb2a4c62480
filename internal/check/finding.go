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

package check

// Finding classifies a guard diagnostic.
type Finding uint8

//go:generate go tool stringer -type Finding -linecomment
const (
	// FindingDiscarded indicates a guard that is dropped right after it was produced.
	// Its callback can never run.
	FindingDiscarded Finding = iota // dis

	// FindingUnfinalized indicates a guard variable that is neither finalized nor handed off.
	FindingUnfinalized // fin

	// FindingNotDeferred indicates a guard finalized by a plain Exit call.
	// Panics and early returns before that call skip the callback.
	FindingNotDeferred // def

	// FindingTerminated indicates a call ending the process while a deferred guard is pending.
	// Deferred functions don't run on process exit.
	FindingTerminated // ter
)
