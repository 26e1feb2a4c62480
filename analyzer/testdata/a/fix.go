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

package a

import "test/guard"

func unfinalized(fail bool) error {
	g := guard.Make(cleanup) // want "Guard 'g' is never finalized"
	if fail {
		return errFail
	}

	g.Dismiss()

	return nil
}

func unfinalizedVar() {
	var g = guard.Make(cleanup) // want "Guard 'g' is never finalized"
	g.Dismiss()
}

func unfinalizedCase(n int) {
	switch n {
	case 1:
		g := guard.Make(cleanup) // want "Guard 'g' is never finalized"
		g.Dismiss()
	}
}

func unfinalizedLiteral() {
	f := func() {
		g := guard.Make(cleanup) // want "Guard 'g' is never finalized"
		g.Dismiss()
	}

	f()
}

func discardedMove() {
	g := guard.Make(cleanup)
	defer g.Exit()

	g.Move() // want "Moved guard is discarded"
}

func assigned() {
	var g *guard.Guard[guard.Func]
	g = guard.Make(cleanup) // want "Guard 'g' is never finalized, paths without Dismiss"
	g.Dismiss()
}

func reassigned() {
	g := guard.Make(cleanup)
	defer g.Exit()

	g = guard.Make(cleanup) // want `Guard 'g' is never finalized, add 'defer g.Exit\(\)'`
}
