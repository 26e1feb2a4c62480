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
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guard/internal/guardtype"
)

// disposition describes how a single use of a guard variable settles its finalization.
// Larger values take precedence.
type disposition uint8

const (
	// unhandled uses neither finalize nor hand off the guard.
	unhandled disposition = iota

	// dismissed disarms the guard without finalizing it.
	dismissed

	// plainExit finalizes the guard with an Exit call that is not deferred.
	plainExit

	// handedOff passes responsibility for the guard on: returned, passed, stored, moved or captured.
	handedOff

	// deferredExit finalizes the guard with a deferred Exit.
	deferredExit
)

// usage summarizes all uses of a guard variable.
type usage struct {
	disposition disposition
	exit        token.Pos // first plain Exit call
	deferred    token.Pos // first deferred Exit call
	dismiss     token.Pos // first Dismiss call
}

func (u *usage) merge(d disposition, pos token.Pos) {
	switch d {
	case plainExit:
		if !u.exit.IsValid() {
			u.exit = pos
		}

	case deferredExit:
		if !u.deferred.IsValid() {
			u.deferred = pos
		}

	case dismissed:
		if !u.dismiss.IsValid() {
			u.dismiss = pos
		}
	}

	if d > u.disposition {
		u.disposition = d
	}
}

// trackUsages summarizes the uses of every declared guard variable in fdecl.
// trackUsages classifies the uses of every declared guard.
//
// A variable can hold several guards in turn. A use in the declaring function refers to the
// latest preceding assignment, a use in a nested function literal to all of them.
func (s Stage) trackUsages(fdecl inspector.Cursor, decls []declaration) []usage {
	index := make(map[types.Object][]int, len(decls))
	for i, d := range decls {
		index[d.obj] = append(index[d.obj], i)
	}

	usages := make([]usage, len(decls))

	for c := range fdecl.Preorder((*ast.Ident)(nil)) {
		indices, ok := index[s.Pass.TypesInfo.Uses[c.Node().(*ast.Ident)]]
		if !ok {
			continue
		}

		if k, _ := c.ParentEdge(); k == edge.AssignStmt_Lhs {
			continue // overwritten, not used
		}

		for _, i := range reaching(decls, indices, c) {
			usages[i].merge(dispositionOf(c, decls[i].fun))
		}
	}

	return usages
}

// reaching returns the subset of indices into decls a use refers to.
// indices are in source order and share one variable.
func reaching(decls []declaration, indices []int, use inspector.Cursor) []int {
	if enclosingFunc(use) != decls[indices[0]].fun {
		return indices // captured variable
	}

	pos := use.Node().Pos()
	for j := len(indices) - 1; j >= 0; j-- {
		if decls[indices[j]].stmt.Node().End() <= pos {
			return indices[j : j+1]
		}
	}

	return nil
}

// dispositionOf classifies the use of a guard variable at the identifier cursor use.
// fun is the function declaring the variable.
func dispositionOf(use, fun inspector.Cursor) (disposition, token.Pos) {
	call, method, ok := methodCall(use)
	if !ok {
		return handedOff, token.NoPos
	}

	switch method {
	case guardtype.Exit:
		if deferred(call, fun) {
			return deferredExit, call.Node().Pos()
		}

		if enclosingFunc(call) != fun {
			return handedOff, token.NoPos // finalized by a closure
		}

		return plainExit, call.Node().Pos()

	case guardtype.Dismiss:
		return dismissed, call.Node().Pos()

	default:
		return handedOff, token.NoPos
	}
}

// methodCall returns the call and method name when the identifier at use is the receiver of a method call.
func methodCall(use inspector.Cursor) (call inspector.Cursor, method string, ok bool) {
	if k, _ := use.ParentEdge(); k != edge.SelectorExpr_X {
		return inspector.Cursor{}, "", false
	}

	sel := use.Parent()
	if k, _ := sel.ParentEdge(); k != edge.CallExpr_Fun {
		return inspector.Cursor{}, "", false // method value
	}

	return sel.Parent(), sel.Node().(*ast.SelectorExpr).Sel.Name, true
}

// deferred reports whether call runs deferred on exit of fun, either directly
// or inside an immediately deferred function literal.
func deferred(call, fun inspector.Cursor) bool {
	lit := enclosingFunc(call)

	if k, _ := call.ParentEdge(); k == edge.DeferStmt_Call {
		return lit == fun
	}

	if lit == fun {
		return false
	}

	if _, ok := lit.Node().(*ast.FuncLit); !ok {
		return false
	}

	if k, _ := lit.ParentEdge(); k != edge.CallExpr_Fun {
		return false
	}

	if k, _ := lit.Parent().ParentEdge(); k != edge.DeferStmt_Call {
		return false
	}

	return enclosingFunc(lit.Parent()) == fun // not deferred by a nested function
}
