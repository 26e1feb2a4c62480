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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/guard/internal/astutil"
	"fillmore-labs.com/guard/internal/check"
	"fillmore-labs.com/guard/internal/config"
	"fillmore-labs.com/guard/internal/guardtype"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the guardcheck analyzer.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("guardcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "GuardCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	stage := check.Stage{
		Pass:     p,
		Matcher:  guardtype.NewMatcher(r.Packages...),
		Checks:   r.Checks,
		Behavior: r.Behavior,
	}

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil || astutil.NoLintDoc(fun.Doc) {
				continue
			}

			stage.CheckFunction(ctx, currentFile, c)
		}
	}

	return nil, nil
}
