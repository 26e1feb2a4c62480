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

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"

	"fillmore-labs.com/guard/internal/astutil"
	"fillmore-labs.com/guard/internal/config"
	"fillmore-labs.com/guard/internal/guardtype"
)

// reportDiscards reports guards dropped where they are produced.
func (s Stage) reportDiscards(file astutil.CurrentFile, discards []discard) {
	for _, d := range discards {
		if file.NoLintComment(d.node.Pos()) {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos: d.node.Pos(),
			End: d.node.End(),
		}

		if d.move == nil {
			diagnostic.Message = fmt.Sprintf("Guard is discarded, its callback never runs (gc:%s)", FindingDiscarded)
			s.Pass.Report(diagnostic)

			continue
		}

		diagnostic.Message = fmt.Sprintf("Moved guard is discarded, use %s to disarm (gc:%s)", guardtype.Dismiss, FindingDiscarded)

		if s.fixes(file) {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message: "Replace " + guardtype.Move + " with " + guardtype.Dismiss,
				TextEdits: []analysis.TextEdit{{
					Pos:     d.move.Sel.Pos(),
					End:     d.move.Sel.End(),
					NewText: []byte(guardtype.Dismiss),
				}},
			}}
		}

		s.Pass.Report(diagnostic)
	}
}

// reportDeclarations reports guard variables that are not finalized by a deferred Exit.
func (s Stage) reportDeclarations(file astutil.CurrentFile, decls []declaration, usages []usage) {
	for i, d := range decls {
		var diagnostic analysis.Diagnostic

		switch u := usages[i]; u.disposition {
		case unhandled:
			if !s.Checks.Enabled(config.UnfinalizedCheck) {
				continue
			}

			diagnostic = analysis.Diagnostic{
				Pos: d.id.Pos(),
				End: d.id.End(),
				Message: fmt.Sprintf("Guard '%s' is never finalized, add 'defer %s.%s()' (gc:%s)",
					d.id.Name, d.id.Name, guardtype.Exit, FindingUnfinalized),
				SuggestedFixes: s.finalizeFix(file, d),
			}

		case dismissed:
			if !s.Checks.Enabled(config.UnfinalizedCheck) {
				continue
			}

			// Exit after Dismiss is a no-op.
			diagnostic = analysis.Diagnostic{
				Pos: d.id.Pos(),
				End: d.id.End(),
				Message: fmt.Sprintf("Guard '%s' is never finalized, paths without %s never run the callback, add 'defer %s.%s()' (gc:%s)",
					d.id.Name, guardtype.Dismiss, d.id.Name, guardtype.Exit, FindingUnfinalized),
				SuggestedFixes: s.finalizeFix(file, d),
				Related:        []analysis.RelatedInformation{{Pos: u.dismiss, Message: "Dismissed here"}},
			}

		case plainExit:
			if !s.Checks.Enabled(config.DeferredCheck) {
				continue
			}

			diagnostic = analysis.Diagnostic{
				Pos: d.id.Pos(),
				End: d.id.End(),
				Message: fmt.Sprintf("Guard '%s' is finalized without defer, panics and early returns skip the callback (gc:%s)",
					d.id.Name, FindingNotDeferred),
				Related: []analysis.RelatedInformation{{Pos: u.exit, Message: "Finalized here"}},
			}

		default:
			continue
		}

		if file.NoLintComment(d.id.Pos()) {
			continue
		}

		s.Pass.Report(diagnostic)
	}
}

// finalizeFix suggests a deferred Exit directly after the declaration of d.
func (s Stage) finalizeFix(file astutil.CurrentFile, d declaration) []analysis.SuggestedFix {
	if !s.fixes(file) {
		return nil
	}

	switch k, _ := d.stmt.ParentEdge(); k {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:

	default:
		return nil // e.g. in an if statement's init
	}

	stmt := "defer " + d.id.Name + "." + guardtype.Exit + "()"

	return []analysis.SuggestedFix{{
		Message:   "Add " + stmt,
		TextEdits: []analysis.TextEdit{{Pos: d.stmt.Node().End(), NewText: []byte("\n" + stmt)}},
	}}
}
