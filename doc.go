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

/*
Package guard runs a callback when control leaves a scope, however it leaves:
fall-through, early return or panic.

A [Guard] is created next to the acquisition it protects and finalized with a
deferred [Guard.Exit]:

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	remove := guard.Make(func() { _ = os.Remove(name) })
	defer remove.Exit()

	if err := write(f); err != nil {
		return err // the file is removed
	}

	remove.Dismiss() // keep the file

	return f.Close()

# States

A guard is either active or disarmed. It is active from construction until it
is finalized, dismissed or moved. [Guard.Exit] on an active guard disarms it
and runs the callback exactly once; on a disarmed guard it does nothing.
Disarmed is terminal.

[Guard.Move] transfers ownership of the callback to a new guard, which
inherits the activation state, and disarms the source. This is the only way
two guards refer to the same callback, and only one of them can fire.

# Ordering

Deferred guards run in reverse order of their defer statements. Independent
guards do not influence each other.

# Copies

A guard must not be copied; go vet reports copies of [Guard] values. Use
pointers as returned by [New] and [Make].

# Checker

The companion analyzer in [fillmore-labs.com/guard/analyzer] reports guards
that are discarded, never finalized, or finalized without defer.
*/
package guard
