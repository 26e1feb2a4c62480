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
	"log/slog"
	"slices"

	"fillmore-labs.com/guard/internal/config"
	"fillmore-labs.com/guard/internal/run"
)

// Option configures specific behavior of a [New] guardcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithDiscarded is an [Option] to configure whether discarded guards are reported.
func WithDiscarded(discarded bool) Option {
	return checkOption{name: "discarded", check: config.DiscardedCheck, enabled: discarded}
}

// WithUnfinalized is an [Option] to configure whether guards that are never finalized are reported.
func WithUnfinalized(unfinalized bool) Option {
	return checkOption{name: "unfinalized", check: config.UnfinalizedCheck, enabled: unfinalized}
}

// WithDeferred is an [Option] to configure whether guards finalized without defer are reported.
func WithDeferred(deferred bool) Option {
	return checkOption{name: "deferred", check: config.DeferredCheck, enabled: deferred}
}

// WithTerminated is an [Option] to configure whether process exits skipping deferred guards are reported.
func WithTerminated(terminated bool) Option {
	return checkOption{name: "terminated", check: config.TerminatedCheck, enabled: terminated}
}

type checkOption struct {
	name    string
	check   config.CheckFlags
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithPackages is an [Option] to configure the import paths of packages whose Guard type is checked.
// It replaces the default, fillmore-labs.com/guard.
func WithPackages(paths ...string) Option { return packagesOption{paths: slices.Clone(paths)} }

type packagesOption struct{ paths []string }

func (o packagesOption) apply(r *run.Options) {
	r.Packages = slices.Clone(o.paths)
}

func (o packagesOption) LogAttr() slog.Attr {
	return slog.Any("packages", o.paths)
}
