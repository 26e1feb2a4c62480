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

// Package check finds guards that are discarded, never finalized, or finalized without defer.
package check

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guard/internal/astutil"
	"fillmore-labs.com/guard/internal/config"
	"fillmore-labs.com/guard/internal/guardtype"
)

// Stage checks guard handling in function declarations.
type Stage struct {
	Pass     *analysis.Pass
	Matcher  guardtype.Matcher
	Checks   config.Checks
	Behavior config.Behavior
}

// CheckFunction reports guard findings in the function declaration at fdecl,
// including the function literals nested in it.
func (s Stage) CheckFunction(ctx context.Context, file astutil.CurrentFile, fdecl inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFunction").End()

	decls, discards := s.collect(fdecl)

	if s.Checks.Enabled(config.DiscardedCheck) {
		s.reportDiscards(file, discards)
	}

	if len(decls) == 0 || !s.Checks.Enabled(config.UnfinalizedCheck|config.DeferredCheck|config.TerminatedCheck) {
		return
	}

	usages := s.trackUsages(fdecl, decls)

	s.reportDeclarations(file, decls, usages)

	if s.Checks.Enabled(config.TerminatedCheck) {
		s.reportTerminations(file, fdecl, decls, usages)
	}
}

// fixes reports whether suggested fixes should be attached to diagnostics in file.
func (s Stage) fixes(file astutil.CurrentFile) bool {
	return s.Behavior.Enabled(config.SuggestFixes) && !file.Generated()
}
