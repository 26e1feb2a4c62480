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

// Package guard mirrors the API of fillmore-labs.com/guard for analyzer tests.
package guard

type Invoker interface{ Invoke() }

type Func func()

func (f Func) Invoke() { f() }

type Guard[C Invoker] struct {
	active   bool
	callback C
}

func New[C Invoker](callback C) *Guard[C] { return &Guard[C]{active: true, callback: callback} }

func Make[F ~func()](callback F) *Guard[Func] { return New(Func(callback)) }

func (g *Guard[C]) Exit() {
	if g.active {
		g.active = false
		g.callback.Invoke()
	}
}

func (g *Guard[C]) Dismiss() { g.active = false }

func (g *Guard[C]) Move() *Guard[C] {
	if !g.active {
		return &Guard[C]{}
	}

	g.active = false

	return New(g.callback)
}
