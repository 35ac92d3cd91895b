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

func TestClangTidyPreprocessorOnlyPanics(t *testing.T) {
	d := NewClangTidy()
	defer func() {
		if recover() == nil {
			t.Fatal("RunPreprocessorOnly on ClangTidy did not panic")
		}
	}()
	RunPreprocessorOnly(d, []string{"a.c"}, NewArgs(nil))
}

func TestClangTidyStripsConfigFileAndColor(t *testing.T) {
	d := NewClangTidy()
	d.SetForceColoredDiagnostics(true)

	out := NewArgs(nil)
	RunCommon(d, []string{"--config-file=foo.yaml", "-fno-diagnostics-color", "-checks=*"}, true, out)

	if got, want := out.Buffer(), "-checks=* -fdiagnostics-color=always "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestClangTidyAddPreliminaryArgs(t *testing.T) {
	d := NewClangTidy()
	d.SetOverrideSourceFile("/proj/foo")

	out := NewArgs(nil)
	d.AddPreliminaryArgs(true, out)

	if got, want := out.Buffer(), "--config-file=/proj/foo.config.yaml "; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestClangTidyAddPreliminaryArgsNoOverride(t *testing.T) {
	d := NewClangTidy()
	out := NewArgs(nil)
	d.AddPreliminaryArgs(true, out)

	if got, want := out.Buffer(), "--config-file=.config.yaml "; got != want {
		t.Errorf("buffer = %q, want %q (the --config-file flag is emitted even with no override source)", got, want)
	}
}
