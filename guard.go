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

import "sync/atomic"

// Invoker is a callback without arguments and results.
type Invoker interface {
	Invoke()
}

// Func adapts an ordinary function to the [Invoker] interface.
type Func func()

// Invoke calls f.
func (f Func) Invoke() { f() }

// Guard invokes its callback once when it is finalized with [Guard.Exit],
// unless it has been disarmed by [Guard.Dismiss] or [Guard.Move] before.
//
// A Guard must not be copied after first use; go vet reports copies.
// The zero value is a disarmed guard.
type Guard[C Invoker] struct {
	active   atomic.Bool // contains a no-copy marker
	callback C
}

// New returns an active [Guard] for callback.
//
// Most callers want [Make], which accepts plain functions.
func New[C Invoker](callback C) *Guard[C] {
	g := &Guard[C]{callback: callback}
	g.active.Store(true)

	return g
}

// Make returns an active [Guard] running callback on [Guard.Exit].
//
// Finalize the guard directly after creation:
//
//	g := guard.Make(func() { _ = f.Close() })
//	defer g.Exit()
func Make[F ~func()](callback F) *Guard[Func] {
	return New(Func(callback))
}

// Exit runs the callback if the guard is still active and disarms it.
// The callback runs at most once, on the calling goroutine. A panic raised
// by the callback is not recovered.
func (g *Guard[C]) Exit() {
	if !g.active.CompareAndSwap(true, false) {
		return
	}

	callback := g.take()
	callback.Invoke()
}

// Dismiss disarms the guard without running the callback.
func (g *Guard[C]) Dismiss() {
	if !g.active.CompareAndSwap(true, false) {
		return
	}

	_ = g.take()
}

// Move transfers the callback to a new guard and disarms g.
// The new guard is active iff g was active.
func (g *Guard[C]) Move() *Guard[C] {
	if !g.active.CompareAndSwap(true, false) {
		return &Guard[C]{}
	}

	return New(g.take())
}

// take removes the callback from a guard that was just deactivated.
// Only the goroutine that cleared the activation flag may call it.
func (g *Guard[C]) take() C {
	var zero C

	callback := g.callback
	g.callback = zero

	return callback
}
