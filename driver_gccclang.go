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

import "fmt"

// GCCClang drives both GCC and Clang; the two share almost every rule,
// diverging only where Clang's preprocessed-input handling is stricter
// (it errors on -I when the input is already preprocessed) or richer (the
// analyzer flags, -frewrite-includes).
type GCCClang struct {
	DriverBase
	IsClang bool
}

// NewGCCClang returns a GCCClang driver. isClang selects Clang's extra
// rules over plain GCC.
func NewGCCClang(isClang bool) *GCCClang {
	return &GCCClang{IsClang: isClang}
}

func (g *GCCClang) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	if StripTokenWithArg("-include-pch", token, index) {
		return true
	}
	if g.IsClang {
		if StripToken("--analyze", token, false) {
			return true
		}
		if StripTokenWithArg("-Xanalyzer", token, index) {
			return true
		}
		if StripTokenWithArg("-analyzer-output", token, index) {
			return true
		}
		if StripTokenWithArg("-analyzer-config", token, index) {
			return true
		}
		if StripTokenWithArg("-analyzer-checker", token, index) {
			return true
		}
	}
	if StripTokenWithArg("-o", token, index) {
		return true
	}
	if StripToken("-c", token, false) {
		return true
	}
	return false
}

func (g *GCCClang) AddAdditionalArgsPreprocessor(out *Args) {
	out.AddString("-E")
	out.AddDelimiter()

	if g.node != nil && g.node.IsCreatingPCH() {
		out.AddString("-dD")
		out.AddDelimiter()
	}
	if g.IsClang && g.node != nil && g.node.CompilerCaps().ClangRewriteIncludesEnabled {
		out.AddString("-frewrite-includes")
		out.AddDelimiter()
	}
}

func (g *GCCClang) ProcessArgCompilePreprocessed(token string, index *int, next string, isLocal bool, out *Args) bool {
	if g.IsClang {
		if StripTokenWithArg("-I", token, index) {
			return true
		}
	}
	if StripTokenWithArg("-isysroot", token, index) {
		return true
	}
	if isLocal {
		if g.xLanguageFixup(token, index, next, out) {
			return true
		}
		if g.dependencyOptionFixup(token, index) {
			return true
		}
	}
	if StripTokenWithArg("-include-pch", token, index) {
		return true
	}
	if StripTokenWithArg("-include", token, index) {
		return true
	}
	return false
}

func (g *GCCClang) ProcessArgPreparePreprocessedForRemote(token string, index *int, next string, out *Args) bool {
	if g.xLanguageFixup(token, index, next, out) {
		return true
	}
	if g.dependencyOptionFixup(token, index) {
		return true
	}
	return false
}

func (g *GCCClang) ProcessArgCommon(token string, index *int, out *Args) bool {
	if g.forceColoredDiagnostics {
		if StripToken("-fdiagnostics-color", token, true) {
			return true
		}
		if StripToken("-fno-diagnostics-color", token, false) {
			return true
		}
	}
	return g.DriverBase.ProcessArgCommon(token, index, out)
}

func (g *GCCClang) AddAdditionalArgsCommon(isLocal bool, out *Args) {
	if g.forceColoredDiagnostics {
		out.AddString("-fdiagnostics-color=always")
		out.AddDelimiter()
	}
	if g.sourceMapping != "" && isLocal {
		out.AddString(fmt.Sprintf("\"-fdebug-prefix-map=%s=%s\"", g.workingDir, g.sourceMapping))
		out.AddDelimiter()
	}
}

// xLanguageFixup gates on the node's capability bit; older Clang releases
// mis-handle the rewritten -x argument, so the fixup is opt-in per node.
func (g *GCCClang) xLanguageFixup(token string, index *int, next string, out *Args) bool {
	if g.node == nil || !g.node.CompilerCaps().ClangGCCUpdateXLanguageArgEnabled {
		return false
	}
	if token != "-x" || next == "" {
		return false
	}
	out.AddString("-x")
	out.AddDelimiter()
	out.AddString(rewriteXLanguage(next))
	out.AddDelimiter()
	*index++
	return true
}

func rewriteXLanguage(lang string) string {
	switch lang {
	case "c":
		return "cpp-output"
	case "c++", "objective-c", "objective-c++":
		return lang + "-cpp-output"
	default:
		return lang
	}
}

// dependencyOptionFixup strips dependency-file generation flags: once the
// input is already preprocessed they produce stale or duplicate output, and
// the referenced directory may not even exist on a remote worker.
func (g *GCCClang) dependencyOptionFixup(token string, index *int) bool {
	if StripToken("-MD", token, false) {
		return true
	}
	if StripTokenWithArg("-MF", token, index) {
		return true
	}
	return false
}
