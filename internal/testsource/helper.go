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

// Package testsource parses and type-checks Go source fragments for tests.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// Path is the import path of the checked package.
const Path = "test"

// Check parses src as the body of a file in package [Path] and type-checks it.
//
// The source is everything after the package clause, so it may declare
// package-level types, including generic ones.
func Check(tb testing.TB, src string) (*types.Package, *types.Info) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+Path+"\n\n"+src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(Path, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}

// Lookup returns the type of the package-level object name.
func Lookup(tb testing.TB, pkg *types.Package, name string) types.Type {
	tb.Helper()

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		tb.Fatalf("Object %s not found in package %s", name, pkg.Path())
	}

	return obj.Type()
}
