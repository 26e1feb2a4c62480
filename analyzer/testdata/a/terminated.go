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
	"log"
	"os"

	"test/guard"
)

func terminated(fail bool) {
	g := guard.Make(cleanup)
	defer g.Exit()

	if fail {
		os.Exit(1) // want "Call to os.Exit skips the deferred Exit of guard 'g'"
	}
}

func terminatedLogger(l *log.Logger) {
	g := guard.Make(cleanup)
	defer func() { g.Exit() }()

	l.Fatalf("failed: %v", errFail) // want `Call to \(log.Logger\).Fatalf skips the deferred Exit of guard 'g'`
}

func terminatedFirst() {
	g1 := guard.Make(cleanup)
	defer g1.Exit()

	g2 := guard.Make(cleanup)
	defer g2.Exit()

	log.Fatal(errFail) // want "Call to log.Fatal skips the deferred Exit of guard 'g1'"
}

func exitBeforeDefer(fail bool) {
	if fail {
		os.Exit(1)
	}

	g := guard.Make(cleanup)
	defer g.Exit()
}

func exitInClosure() func() {
	g := guard.Make(cleanup)
	defer g.Exit()

	return func() { os.Exit(1) }
}

func panicking() {
	g := guard.Make(cleanup)
	defer g.Exit()

	panic(errFail)
}

func terminatedGoroutine() {
	g := guard.Make(cleanup)
	go func() {
		defer func() { g.Exit() }()
	}()

	os.Exit(1)
}

func terminatedSuppressed() {
	g := guard.Make(cleanup)
	defer g.Exit()

	os.Exit(2) //nolint:guardcheck
}
