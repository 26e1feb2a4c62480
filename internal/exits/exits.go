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

// Package exits recognizes calls that end the process without running deferred functions.
package exits

import (
	"go/ast"
	"go/types"
)

// _knownFuncs are functions that terminate the process. Deferred functions don't run.
//
// panic, runtime.Goexit and testing's FailNow do run deferred functions and are not listed.
var _knownFuncs = map[FuncName]struct{}{
	{Path: "log", Name: "Fatal"}:   {},
	{Path: "log", Name: "Fatalf"}:  {},
	{Path: "log", Name: "Fatalln"}: {},

	{Path: "log", Receiver: "Logger", Name: "Fatal"}:   {},
	{Path: "log", Receiver: "Logger", Name: "Fatalf"}:  {},
	{Path: "log", Receiver: "Logger", Name: "Fatalln"}: {},

	{Path: "os", Name: "Exit"}:      {},
	{Path: "syscall", Name: "Exit"}: {},

	{Path: "github.com/sirupsen/logrus", Name: "Exit"}:                        {},
	{Path: "github.com/sirupsen/logrus", Name: "Fatal"}:                       {},
	{Path: "github.com/sirupsen/logrus", Name: "Fatalf"}:                      {},
	{Path: "github.com/sirupsen/logrus", Name: "Fatalln"}:                     {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Fatal"}:    {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Fatalf"}:   {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Entry", Name: "Fatalln"}:  {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Exit"}:    {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Fatal"}:   {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Fatalf"}:  {},
	{Path: "github.com/sirupsen/logrus", Receiver: "Logger", Name: "Fatalln"}: {},
	{Path: "go.uber.org/zap", Receiver: "Logger", Name: "Fatal"}:              {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatal"}:       {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalf"}:      {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalln"}:     {},
	{Path: "go.uber.org/zap", Receiver: "SugaredLogger", Name: "Fatalw"}:      {},
	{Path: "k8s.io/klog", Name: "Exit"}:                                       {},
	{Path: "k8s.io/klog", Name: "ExitDepth"}:                                  {},
	{Path: "k8s.io/klog", Name: "Exitf"}:                                      {},
	{Path: "k8s.io/klog", Name: "Exitln"}:                                     {},
	{Path: "k8s.io/klog", Name: "Fatal"}:                                      {},
	{Path: "k8s.io/klog", Name: "FatalDepth"}:                                 {},
	{Path: "k8s.io/klog", Name: "Fatalf"}:                                     {},
	{Path: "k8s.io/klog", Name: "Fatalln"}:                                    {},
	{Path: "k8s.io/klog/v2", Name: "Exit"}:                                    {},
	{Path: "k8s.io/klog/v2", Name: "ExitDepth"}:                               {},
	{Path: "k8s.io/klog/v2", Name: "Exitf"}:                                   {},
	{Path: "k8s.io/klog/v2", Name: "Exitln"}:                                  {},
	{Path: "k8s.io/klog/v2", Name: "Fatal"}:                                   {},
	{Path: "k8s.io/klog/v2", Name: "FatalDepth"}:                              {},
	{Path: "k8s.io/klog/v2", Name: "Fatalf"}:                                  {},
	{Path: "k8s.io/klog/v2", Name: "Fatalln"}:                                 {},
}

// Terminates reports whether the call n ends the process, returning the called function's name.
func Terminates(info *types.Info, n *ast.CallExpr) (FuncName, bool) {
	ex := n.Fun

unwrap:
	switch e := ex.(type) {
	case *ast.Ident:
		return terminatingFunc(info, e)

	case *ast.SelectorExpr:
		return terminatingFunc(info, e.Sel)

	case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
		ex = e.X
		goto unwrap

	case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
		ex = e.X
		goto unwrap

	case *ast.ParenExpr: // Parenthesized expression ("(myFunc)")
		ex = e.X
		goto unwrap

	default: // Pointer dereference or another function reference.
		return FuncName{}, false
	}
}

func terminatingFunc(info *types.Info, id *ast.Ident) (FuncName, bool) {
	fun, ok := info.Uses[id].(*types.Func)
	if !ok {
		return FuncName{}, false
	}

	name := FuncNameOf(fun)
	_, ok = _knownFuncs[name]

	return name, ok
}
