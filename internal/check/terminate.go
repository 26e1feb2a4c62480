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
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guard/internal/astutil"
	"fillmore-labs.com/guard/internal/exits"
	"fillmore-labs.com/guard/internal/guardtype"
)

// reportTerminations reports calls ending the process after a guard's Exit has been deferred.
// Each call is reported once, naming the first pending guard.
func (s Stage) reportTerminations(file astutil.CurrentFile, fdecl inspector.Cursor, decls []declaration, usages []usage) {
	type pending struct {
		name     string
		fun      inspector.Cursor
		deferred token.Pos
	}

	var guards []pending

	for i, d := range decls {
		if u := usages[i]; u.disposition == deferredExit && u.deferred.IsValid() {
			guards = append(guards, pending{name: d.id.Name, fun: d.fun, deferred: u.deferred})
		}
	}

	if len(guards) == 0 {
		return
	}

	for c := range fdecl.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)

		fun, ok := exits.Terminates(s.Pass.TypesInfo, call)
		if !ok {
			continue
		}

		lit := enclosingFunc(c)
		for _, g := range guards {
			if g.fun != lit || call.Pos() < g.deferred {
				continue
			}

			if file.NoLintComment(call.Pos()) {
				break
			}

			s.Pass.Report(analysis.Diagnostic{
				Pos: call.Pos(),
				End: call.End(),
				Message: fmt.Sprintf("Call to %s skips the deferred %s of guard '%s' (gc:%s)",
					fun, guardtype.Exit, g.name, FindingTerminated),
			})

			break
		}
	}
}
