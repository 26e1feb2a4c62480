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

package guard

// Do runs body with an active [Guard] for callback and finalizes the guard
// when body returns or panics.
//
// body may dismiss or move the guard; a moved guard must be finalized by
// its new owner.
func Do[C Invoker](callback C, body func(g *Guard[C])) {
	g := New(callback)
	defer g.Exit()

	body(g)
}

// With is like [Do] for a body producing a result. The callback runs before
// the result is returned to the caller.
func With[C Invoker, R any](callback C, body func(g *Guard[C]) R) R {
	g := New(callback)
	defer g.Exit()

	return body(g)
}
