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

// Package guardtype recognizes guard types in type-checked code.
package guardtype

import (
	"go/types"
	"slices"
)

// DefaultPackage is the import path of the guard library.
const DefaultPackage = "fillmore-labs.com/guard"

// Type and method names of the guard API.
const (
	TypeName = "Guard"
	Exit     = "Exit"
	Dismiss  = "Dismiss"
	Move     = "Move"
)

// Matcher recognizes pointers to guard types declared in a set of packages.
type Matcher struct {
	paths []string
}

// NewMatcher returns a [Matcher] for the guard types declared in the packages with the given import paths.
func NewMatcher(paths ...string) Matcher {
	return Matcher{paths: slices.Clone(paths)}
}

// IsGuard reports whether t is a pointer to an instantiation of a guard type.
func (m Matcher) IsGuard(t types.Type) bool {
	ptr, ok := types.Unalias(t).(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := types.Unalias(ptr.Elem()).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Origin().Obj()
	if obj.Name() != TypeName || obj.Pkg() == nil {
		return false
	}

	return slices.Contains(m.paths, obj.Pkg().Path())
}

// ResultAt returns the type of the i-th value produced by an expression of type t
// that is used on the right-hand side of a multi-value assignment.
func ResultAt(t types.Type, i int) types.Type {
	tuple, ok := t.(*types.Tuple)
	if !ok {
		if i == 0 {
			return t
		}

		return nil
	}

	if i >= tuple.Len() {
		return nil
	}

	return tuple.At(i).Type()
}
