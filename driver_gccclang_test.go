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

import "testing"

// TestGCCClangCompilePreprocessedLocal is scenario 1.
func TestGCCClangCompilePreprocessedLocal(t *testing.T) {
	d := NewGCCClang(true)
	d.Init(StaticObjectNode{
		SourceFile: "main.c",
		OutputName: "main.o",
		Caps: CompilerCaps{
			ClangGCCUpdateXLanguageArgEnabled: true,
		},
	}, "")

	tokens := []string{
		"-I", "/usr/inc",
		"-isysroot", "/sdk",
		"-include-pch", "pch.gch",
		"-include", "force.h",
		"-MD",
		"-MF", "dep.d",
		"-x", "c",
		"main.c",
	}

	out := NewArgs(nil)
	RunCompilePreprocessed(d, tokens, true, out)

	if got, want := out.Buffer(), "-x cpp-output main.c "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

// TestGCCClangXLanguageFixupGate is P7.
func TestGCCClangXLanguageFixupGate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		enabled bool
		want    string
	}{
		{name: "disabled", enabled: false, want: "-x c "},
		{name: "enabled", enabled: true, want: "-x cpp-output "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGCCClang(true)
			d.Init(StaticObjectNode{Caps: CompilerCaps{ClangGCCUpdateXLanguageArgEnabled: tc.enabled}}, "")

			out := NewArgs(nil)
			RunCompilePreprocessed(d, []string{"-x", "c"}, true, out)

			if got := out.Buffer(); got != tc.want {
				t.Errorf("buffer = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestGCCClangDependencyFixup is P8.
func TestGCCClangDependencyFixup(t *testing.T) {
	d := NewGCCClang(false)
	d.Init(StaticObjectNode{}, "")

	i := 0
	if !d.dependencyOptionFixup("-MD", &i) {
		t.Error("dependencyOptionFixup(-MD) = false, want true")
	}

	i = 0
	if !d.dependencyOptionFixup("-MF", &i) || i != 1 {
		t.Errorf("dependencyOptionFixup(-MF) consumed=%v index=%d, want true/1", true, i)
	}

	i = 0
	if !d.dependencyOptionFixup("-MF=foo.d", &i) || i != 0 {
		t.Errorf("dependencyOptionFixup(-MF=foo.d) index=%d, want 0 (glued form doesn't advance)", i)
	}
}

func TestGCCClangPreprocessorOnlyClangAnalyzer(t *testing.T) {
	d := NewGCCClang(true)
	d.Init(StaticObjectNode{}, "")

	out := NewArgs(nil)
	RunPreprocessorOnly(d, []string{"--analyze", "-Xanalyzer", "-analyzer-checker=foo", "-o", "out.o", "-c", "a.c"}, out)

	if got, want := out.Buffer(), "a.c -E "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

// TestGCCClangPreprocessorOnlyClangAnalyzerSpaceSeparatedArg guards against
// treating the analyzer flags as a single "-analyzer-" prefix match: that
// would never advance the index for a space-separated companion argument
// (only a literal token equal to the needle does), leaking it into the
// emitted args unstripped.
func TestGCCClangPreprocessorOnlyClangAnalyzerSpaceSeparatedArg(t *testing.T) {
	d := NewGCCClang(true)
	d.Init(StaticObjectNode{}, "")

	out := NewArgs(nil)
	RunPreprocessorOnly(d, []string{"--analyze", "-analyzer-config", "dir", "-o", "out.o", "-c", "a.c"}, out)

	if got, want := out.Buffer(), "a.c -E "; got != want {
		t.Errorf("buffer = %q, want %q (companion arg \"dir\" must be consumed, not leaked)", got, want)
	}
}

func TestGCCClangPreprocessorEmitPCHAndRewriteIncludes(t *testing.T) {
	d := NewGCCClang(true)
	d.Init(StaticObjectNode{CreatingPCH: true, Caps: CompilerCaps{ClangRewriteIncludesEnabled: true}}, "")

	out := NewArgs(nil)
	RunPreprocessorOnly(d, nil, out)

	if got, want := out.Buffer(), "-E -dD -frewrite-includes "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}
