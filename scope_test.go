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

package guard_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/guard"
)

func TestDo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body func(g *Guard[*counter])
		want int
	}{
		{"Return", func(*Guard[*counter]) {}, 1},
		{"Dismiss", func(g *Guard[*counter]) { g.Dismiss() }, 0},
		{"Exit", func(g *Guard[*counter]) { g.Exit() }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c counter

			Do(&c, tt.body)

			if c.calls != tt.want {
				t.Errorf("Got %d calls, want %d", c.calls, tt.want)
			}
		})
	}
}

func TestDoMove(t *testing.T) {
	t.Parallel()

	var (
		c     counter
		moved *Guard[*counter]
	)

	Do(&c, func(g *Guard[*counter]) { moved = g.Move() })

	if c.calls != 0 {
		t.Fatalf("Got %d calls after scope exit, want 0", c.calls)
	}

	moved.Exit()

	if c.calls != 1 {
		t.Errorf("Got %d calls after new owner exit, want 1", c.calls)
	}
}

func TestDoPanic(t *testing.T) {
	t.Parallel()

	var c counter

	recovered := func() (r any) {
		defer func() { r = recover() }()

		Do(&c, func(*Guard[*counter]) { panic(errCallback) })

		return nil
	}()

	if c.calls != 1 {
		t.Errorf("Got %d calls, want 1", c.calls)
	}

	if err, ok := recovered.(error); !ok || !errors.Is(err, errCallback) {
		t.Errorf("Got recovered %v, want %v", recovered, errCallback)
	}
}

func TestWith(t *testing.T) {
	t.Parallel()

	var events []string

	result := With(Func(func() { events = append(events, "callback") }), func(*Guard[Func]) string {
		events = append(events, "body")

		return "value"
	})

	events = append(events, "observe "+result)

	if diff := cmp.Diff([]string{"body", "callback", "observe value"}, events); diff != "" {
		t.Errorf("Event order mismatch (-want +got):\n%s", diff)
	}
}

func TestWithUnaffectedResult(t *testing.T) {
	t.Parallel()

	x := 1

	got := With(Func(func() { x = 2 }), func(*Guard[Func]) int { return x })

	if got != 1 {
		t.Errorf("Got result %d, want 1", got)
	}

	if x != 2 {
		t.Errorf("Callback did not run, got x = %d", x)
	}
}
