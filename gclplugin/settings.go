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

package gclplugin

import "fillmore-labs.com/guard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Discarded enables reporting of discarded guards.
	Discarded *bool `json:"discarded,omitzero"`
	// Unfinalized enables reporting of guards that are never finalized.
	Unfinalized *bool `json:"unfinalized,omitzero"`
	// Deferred enables reporting of guards finalized without defer.
	Deferred *bool `json:"deferred,omitzero"`
	// Terminated enables reporting of process exits skipping deferred guards.
	Terminated *bool `json:"terminated,omitzero"`
	// Packages replaces the import paths of packages declaring guard types.
	Packages []string `json:"packages,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the guardcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Discarded, analyzer.WithDiscarded)
	opts = appendOption(opts, s.Unfinalized, analyzer.WithUnfinalized)
	opts = appendOption(opts, s.Deferred, analyzer.WithDeferred)
	opts = appendOption(opts, s.Terminated, analyzer.WithTerminated)

	if s.Packages != nil {
		opts = append(opts, analyzer.WithPackages(s.Packages...))
	}

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
