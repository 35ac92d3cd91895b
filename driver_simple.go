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

package ccdriver

// stripOutputAndCompile strips -o (with arg) and -c, the pattern shared by
// every "simple" preprocessor-only variant below.
func stripOutputAndCompile(token string, index *int) bool {
	if StripTokenWithArg("-o", token, index) {
		return true
	}
	if StripToken("-c", token, false) {
		return true
	}
	return false
}

func emitPreprocessorE(out *Args) {
	out.AddString("-E")
	out.AddDelimiter()
}

// CUDA drives nvcc.
type CUDA struct{ DriverBase }

func NewCUDA() *CUDA { return &CUDA{} }

func (d *CUDA) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return stripOutputAndCompile(token, index)
}

func (d *CUDA) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

// CodeWarriorWii drives the Wii's CodeWarrior mwcceppc.exe.
type CodeWarriorWii struct{ DriverBase }

func NewCodeWarriorWii() *CodeWarriorWii { return &CodeWarriorWii{} }

func (d *CodeWarriorWii) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return stripOutputAndCompile(token, index)
}

func (d *CodeWarriorWii) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

// GreenHillsWiiU drives the Wii U's Green Hills compiler.
type GreenHillsWiiU struct{ DriverBase }

func NewGreenHillsWiiU() *GreenHillsWiiU { return &GreenHillsWiiU{} }

func (d *GreenHillsWiiU) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return stripOutputAndCompile(token, index)
}

func (d *GreenHillsWiiU) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

// OrbisWavePSSLC drives Orbis's PSSL shader compiler. It additionally
// strips -include (with arg) once the source is already preprocessed,
// since the shader toolchain re-resolves includes from the preprocessed
// output and chokes on a forced extra header.
type OrbisWavePSSLC struct{ DriverBase }

func NewOrbisWavePSSLC() *OrbisWavePSSLC { return &OrbisWavePSSLC{} }

func (d *OrbisWavePSSLC) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return stripOutputAndCompile(token, index)
}

func (d *OrbisWavePSSLC) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

func (d *OrbisWavePSSLC) ProcessArgCompilePreprocessed(token string, index *int, next string, isLocal bool, out *Args) bool {
	return StripTokenWithArg("-include", token, index)
}

// SNC drives Sony's SNC compiler.
type SNC struct{ DriverBase }

func NewSNC() *SNC { return &SNC{} }

func (d *SNC) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return stripOutputAndCompile(token, index)
}

func (d *SNC) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

// VBCC drives the VBCC compiler. Unlike its siblings it only strips -o;
// VBCC's -c doesn't conflict with preprocessor-only mode the way the
// others' does, so stripping it would drop a flag the caller still wants.
type VBCC struct{ DriverBase }

func NewVBCC() *VBCC { return &VBCC{} }

func (d *VBCC) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	return StripTokenWithArg("-o", token, index)
}

func (d *VBCC) AddAdditionalArgsPreprocessor(out *Args) { emitPreprocessorE(out) }

// QtRCC drives Qt's resource compiler (rcc), which is routed through the
// same preprocessor-only path to produce a dependency listing instead of
// preprocessed output.
type QtRCC struct{ DriverBase }

func NewQtRCC() *QtRCC { return &QtRCC{} }

func (d *QtRCC) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	if StripTokenWithArg("--output", token, index) {
		return true
	}
	if StripTokenWithArg("-o", token, index) {
		return true
	}
	return false
}

func (d *QtRCC) AddAdditionalArgsPreprocessor(out *Args) {
	out.AddString("--list")
	out.AddDelimiter()
}
