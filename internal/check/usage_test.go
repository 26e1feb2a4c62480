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

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

func TestDispositionOf(t *testing.T) {
	t.Parallel()

	const src = `package p

func f() {
	g.Exit()
	defer g.Exit()
	defer func() { g.Exit() }()
	go func() { g.Exit() }()
	g.Dismiss()
	g.Move()
	use(g)
	defer use(g.Exit)
	func() { defer g.Exit() }()
	go func() { defer func() { g.Exit() }() }()
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	var fdecl inspector.Cursor
	for c := range inspector.New([]*ast.File{f}).Root().Preorder((*ast.FuncDecl)(nil)) {
		fdecl = c
	}

	var got []disposition

	for c := range fdecl.Preorder((*ast.Ident)(nil)) {
		if c.Node().(*ast.Ident).Name != "g" {
			continue
		}

		d, pos := dispositionOf(c, fdecl)
		if (d == plainExit || d == deferredExit || d == dismissed) != pos.IsValid() {
			t.Errorf("Got position %v for disposition %d", pos, d)
		}

		got = append(got, d)
	}

	want := []disposition{
		plainExit,
		deferredExit,
		deferredExit,
		handedOff,
		dismissed,
		handedOff,
		handedOff,
		handedOff,
		handedOff,
		handedOff,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dispositions mismatch (-want +got):\n%s", diff)
	}
}

func TestUsageMerge(t *testing.T) {
	t.Parallel()

	var u usage

	u.merge(unhandled, token.NoPos)
	u.merge(plainExit, 10)
	u.merge(plainExit, 20)

	if u.disposition != plainExit || u.exit != 10 {
		t.Errorf("Got %+v, want plain exit at 10", u)
	}

	u.merge(deferredExit, 30)
	u.merge(deferredExit, 40)
	u.merge(handedOff, token.NoPos)

	if u.disposition != deferredExit || u.deferred != 30 {
		t.Errorf("Got %+v, want deferred exit at 30", u)
	}

	var d usage

	d.merge(dismissed, 50)
	d.merge(unhandled, token.NoPos)

	if d.disposition != dismissed || d.dismiss != 50 {
		t.Errorf("Got %+v, want dismissed at 50", d)
	}
}

func TestReaching(t *testing.T) {
	t.Parallel()

	const src = `package p

func f() {
	g := a
	g.Exit()
	g = b
	g.Exit()
	defer func() { g.Exit() }()
}
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	root := inspector.New([]*ast.File{f}).Root()

	var (
		decls []declaration
		uses  []inspector.Cursor
	)

	for c := range root.Preorder((*ast.AssignStmt)(nil), (*ast.SelectorExpr)(nil)) {
		switch n := c.Node().(type) {
		case *ast.AssignStmt:
			decls = append(decls, declaration{stmt: c, id: n.Lhs[0].(*ast.Ident), fun: enclosingFunc(c)})

		case *ast.SelectorExpr:
			uses = append(uses, c.ChildAt(edge.SelectorExpr_X, -1))
		}
	}

	var got [][]int
	for _, use := range uses {
		got = append(got, reaching(decls, []int{0, 1}, use))
	}

	want := [][]int{{0}, {1}, {0, 1}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reaching declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestFindingString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		finding Finding
		want    string
	}{
		{FindingDiscarded, "dis"},
		{FindingUnfinalized, "fin"},
		{FindingNotDeferred, "def"},
		{FindingTerminated, "ter"},
		{Finding(7), "Finding(7)"},
	}

	for _, tt := range tests {
		if got := tt.finding.String(); got != tt.want {
			t.Errorf("Finding(%d).String() = %q, want %q", uint8(tt.finding), got, tt.want)
		}
	}
}
