// Copyright 2015 Google Inc. All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry maps a compiler-kind name to the ccdriver.CompilerDriver
// constructor for it, the same way kati's func.go keeps a string-keyed map
// of make built-in constructors rather than a long if/else chain.
package registry

import (
	"fmt"

	"github.com/fastbuild-go/ccdriver"
)

// Kind names one of the ten supported compiler flavors.
type Kind string

const (
	KindCL             Kind = "cl"
	KindClangCL        Kind = "clang-cl"
	KindGCC            Kind = "gcc"
	KindClang          Kind = "clang"
	KindClangTidy      Kind = "clang-tidy"
	KindCUDA           Kind = "cuda"
	KindCodeWarriorWii Kind = "codewarrior-wii"
	KindGreenHillsWiiU Kind = "greenhills-wiiu"
	KindOrbisWavePSSLC Kind = "orbis-wave-psslc"
	KindQtRCC          Kind = "qt-rcc"
	KindSNC            Kind = "snc"
	KindVBCC           Kind = "vbcc"
)

var constructors = map[Kind]func() ccdriver.CompilerDriver{
	KindCL:             func() ccdriver.CompilerDriver { return ccdriver.NewCL(false) },
	KindClangCL:        func() ccdriver.CompilerDriver { return ccdriver.NewCL(true) },
	KindGCC:            func() ccdriver.CompilerDriver { return ccdriver.NewGCCClang(false) },
	KindClang:          func() ccdriver.CompilerDriver { return ccdriver.NewGCCClang(true) },
	KindClangTidy:      func() ccdriver.CompilerDriver { return ccdriver.NewClangTidy() },
	KindCUDA:           func() ccdriver.CompilerDriver { return ccdriver.NewCUDA() },
	KindCodeWarriorWii: func() ccdriver.CompilerDriver { return ccdriver.NewCodeWarriorWii() },
	KindGreenHillsWiiU: func() ccdriver.CompilerDriver { return ccdriver.NewGreenHillsWiiU() },
	KindOrbisWavePSSLC: func() ccdriver.CompilerDriver { return ccdriver.NewOrbisWavePSSLC() },
	KindQtRCC:          func() ccdriver.CompilerDriver { return ccdriver.NewQtRCC() },
	KindSNC:            func() ccdriver.CompilerDriver { return ccdriver.NewSNC() },
	KindVBCC:           func() ccdriver.CompilerDriver { return ccdriver.NewVBCC() },
}

// New returns a fresh CompilerDriver for kind. Unlike the programming-error
// panics inside ccdriver itself, an unknown kind here is a user input
// error -- it most likely came from a CLI flag or a PrepareRequest read off
// a queue -- so it is reported as an error, not a panic.
func New(kind Kind) (ccdriver.CompilerDriver, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown compiler kind %q", kind)
	}
	return ctor(), nil
}

// Kinds returns every registered kind, for -help output and flag validation.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	return kinds
}
