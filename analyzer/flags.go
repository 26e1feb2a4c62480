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

package analyzer

import (
	"flag"

	"fillmore-labs.com/guard/internal/config"
	"fillmore-labs.com/guard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewCheckValue(&r.Checks, config.DiscardedCheck), "discarded", "report discarded guards")
	flags.Var(NewCheckValue(&r.Checks, config.UnfinalizedCheck), "unfinalized", "report guards that are never finalized")
	flags.Var(NewCheckValue(&r.Checks, config.DeferredCheck), "deferred", "report guards finalized without defer")
	flags.Var(NewCheckValue(&r.Checks, config.TerminatedCheck), "terminated", "report process exits skipping deferred guards")
	flags.Var(listValue{&r.Packages}, "packages", "comma-separated import paths of packages declaring guard types")
}
