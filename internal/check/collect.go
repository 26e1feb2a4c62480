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

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guard/internal/guardtype"
)

// declaration is a guard stored in a local variable, by definition or assignment.
type declaration struct {
	stmt inspector.Cursor // *ast.AssignStmt or *ast.DeclStmt, in source order
	id   *ast.Ident
	obj  *types.Var
	fun  inspector.Cursor // innermost *ast.FuncDecl or *ast.FuncLit declaring the variable
}

// discard is a guard value dropped where it is produced.
type discard struct {
	node ast.Node          // *ast.ExprStmt or the blank identifier
	move *ast.SelectorExpr // the relocation dropping the guard, if any
}

// collect finds guard variable declarations and discarded guards in fdecl.
func (s Stage) collect(fdecl inspector.Cursor) (decls []declaration, discards []discard) {
	info := s.Pass.TypesInfo

	stmts := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.DeclStmt)(nil),
	}

	for c := range fdecl.Preorder(stmts...) {
		switch n := c.Node().(type) {
		case *ast.ExprStmt:
			call, ok := ast.Unparen(n.X).(*ast.CallExpr)
			if !ok || !s.Matcher.IsGuard(info.TypeOf(call)) {
				continue
			}

			discards = append(discards, discard{node: n, move: s.relocation(call)})

		case *ast.AssignStmt:
			for i, lhs := range n.Lhs {
				id, ok := lhs.(*ast.Ident)
				if !ok {
					continue
				}

				if n.Tok != token.DEFINE && n.Tok != token.ASSIGN {
					continue
				}

				if !s.Matcher.IsGuard(rhsType(info, n.Rhs, len(n.Lhs), i)) {
					continue // e.g. nil
				}

				if id.Name == "_" {
					discards = append(discards, discard{node: id})

					continue
				}

				decls = s.appendDeclaration(decls, c, id)
			}

		case *ast.DeclStmt:
			decl, ok := n.Decl.(*ast.GenDecl)
			if !ok || decl.Tok != token.VAR {
				continue
			}

			for _, spec := range decl.Specs {
				vspec, ok := spec.(*ast.ValueSpec)
				if !ok || len(vspec.Values) == 0 {
					continue // a nil guard needs no finalization
				}

				for i, id := range vspec.Names {
					if id.Name == "_" {
						if s.Matcher.IsGuard(rhsType(info, vspec.Values, len(vspec.Names), i)) {
							discards = append(discards, discard{node: id})
						}

						continue
					}

					decls = s.appendDeclaration(decls, c, id)
				}
			}
		}
	}

	return decls, discards
}

// appendDeclaration appends id to decls when it stores a guard in a variable local to the enclosing function.
func (s Stage) appendDeclaration(decls []declaration, stmt inspector.Cursor, id *ast.Ident) []declaration {
	obj := s.Pass.TypesInfo.Defs[id]
	if obj == nil {
		obj = s.Pass.TypesInfo.Uses[id] // assigned or redeclared
	}

	v, ok := obj.(*types.Var)
	if !ok || !s.Matcher.IsGuard(v.Type()) {
		return decls
	}

	fun := enclosingFunc(stmt)
	if !declaredIn(v, fun) {
		return decls // package variable, parameter, result or captured
	}

	return append(decls, declaration{stmt: stmt, id: id, obj: v, fun: fun})
}

// declaredIn reports whether v is declared in the body of the function fun.
func declaredIn(v *types.Var, fun inspector.Cursor) bool {
	var body *ast.BlockStmt

	switch f := fun.Node().(type) {
	case *ast.FuncDecl:
		body = f.Body

	case *ast.FuncLit:
		body = f.Body
	}

	return body != nil && body.Pos() <= v.Pos() && v.Pos() < body.End()
}

// relocation returns the selector of call if it moves a guard.
func (s Stage) relocation(call *ast.CallExpr) *ast.SelectorExpr {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != guardtype.Move || !s.Matcher.IsGuard(s.Pass.TypesInfo.TypeOf(sel.X)) {
		return nil
	}

	return sel
}

// rhsType returns the type assigned to the i-th of n left-hand side expressions.
func rhsType(info *types.Info, rhs []ast.Expr, n, i int) types.Type {
	switch {
	case len(rhs) == n:
		return info.TypeOf(rhs[i])

	case len(rhs) == 1:
		return guardtype.ResultAt(info.TypeOf(rhs[0]), i)

	default:
		return nil
	}
}

// enclosingFunc returns the innermost function declaration or literal containing c.
func enclosingFunc(c inspector.Cursor) inspector.Cursor {
	for f := range c.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		return f
	}

	return inspector.Cursor{}
}
