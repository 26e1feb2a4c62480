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

package exits

import (
	"go/types"
	"strings"
)

// FuncName identifies a function or method independent of type parameters.
type FuncName struct {
	Path     string // Package path, empty for universe objects and interface methods
	Receiver string // Receiver type name, empty for functions
	Name     string
}

// FuncNameOf returns the [FuncName] of fun. Methods of generic types use the origin type's name,
// pointer receivers are reported like value receivers.
func FuncNameOf(fun *types.Func) FuncName {
	recv := fun.Signature().Recv()
	if recv == nil {
		return FuncName{Path: pkgPath(fun.Pkg()), Name: fun.Name()}
	}

	t := types.Unalias(recv.Type())
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Origin().Obj()

		return FuncName{Path: pkgPath(obj.Pkg()), Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}

// String returns the name in the form used by go/types, e.g. "os.Exit" or "(log.Logger).Fatal".
func (f FuncName) String() string {
	var b strings.Builder

	qualified := f.Path
	if f.Receiver != "" {
		if qualified != "" {
			qualified += "."
		}

		qualified = "(" + qualified + f.Receiver + ")"
	}

	if qualified != "" {
		b.WriteString(qualified) // ignore error
		b.WriteByte('.')         // ignore error
	}

	b.WriteString(f.Name) // ignore error

	return b.String()
}
