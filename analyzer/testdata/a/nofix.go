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

import (
	"errors"

	"test/guard"
)

var errFail = errors.New("fail")

func cleanup() {}

func discarded() {
	guard.Make(cleanup) // want "Guard is discarded"
}

func discardedBlank() {
	_ = guard.Make(cleanup) // want "Guard is discarded"
}

func discardedVar() {
	var _ = guard.New(guard.Func(cleanup)) // want "Guard is discarded"
}

func discardedTuple() error {
	_, err := acquire() // want "Guard is discarded"

	return err
}

func notDeferred() {
	g := guard.Make(cleanup) // want "Guard 'g' is finalized without defer"
	g.Exit()
}

func unfinalizedInit(fail bool) {
	if g := guard.Make(cleanup); fail { // want "Guard 'g' is never finalized"
		g.Dismiss()
	}
}

func acquire() (*guard.Guard[guard.Func], error) {
	g := guard.Make(cleanup)
	defer g.Exit()

	return g.Move(), nil
}

func deferred() {
	g := guard.Make(cleanup)
	defer g.Exit()
}

func deferredClosure() {
	g := guard.Make(cleanup)
	defer func() {
		g.Exit()
	}()
}

func deferredInvoker() {
	g := guard.New(guard.Func(cleanup))
	defer g.Exit()

	g.Dismiss()
}

func returned() *guard.Guard[guard.Func] {
	g := guard.Make(cleanup)

	return g
}

func moved() *guard.Guard[guard.Func] {
	g := guard.Make(cleanup)

	return g.Move()
}

func finalize(g *guard.Guard[guard.Func]) {
	defer g.Exit()
}

func passed() {
	g := guard.Make(cleanup)
	finalize(g)
}

type holder struct{ g *guard.Guard[guard.Func] }

func stored() holder {
	g := guard.Make(cleanup)

	return holder{g: g}
}

func captured() func() {
	g := guard.Make(cleanup)

	return func() { g.Exit() }
}

func methodValue() {
	g := guard.Make(cleanup)
	defer finalizeWith(g.Exit)
}

func finalizeWith(exit func()) { exit() }

//nolint:guardcheck
func suppressed() {
	guard.Make(cleanup)
}

func suppressedLine() {
	guard.Make(cleanup) //nolint:guardcheck
}

func assignedDeferred() {
	var g *guard.Guard[guard.Func]
	g = guard.Make(cleanup)
	defer g.Exit()
}

func assignedCaptured() {
	var g *guard.Guard[guard.Func]
	defer func() { g.Exit() }()

	g = guard.Make(cleanup)
}

func assignedNil() {
	g := guard.Make(cleanup)
	defer g.Exit()

	g = nil
}
