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

// ClangTidy drives clang-tidy. It is never asked to preprocess: clang-tidy
// always re-parses the original source together with its own compilation
// database, so being routed into preprocessor-only mode is a caller bug.
type ClangTidy struct {
	DriverBase
}

// NewClangTidy returns a ClangTidy driver.
func NewClangTidy() *ClangTidy {
	return &ClangTidy{}
}

func (c *ClangTidy) ProcessArgPreprocessorOnly(token string, index *int, next string, out *Args) bool {
	panic("ccdriver: clang-tidy does not support preprocessor-only mode")
}

func (c *ClangTidy) ProcessArgCommon(token string, index *int, out *Args) bool {
	if StripToken("--config-file=", token, true) {
		return true
	}
	if c.forceColoredDiagnostics {
		if StripToken("-fdiagnostics-color", token, true) {
			return true
		}
		if StripToken("-fno-diagnostics-color", token, false) {
			return true
		}
	}
	return c.DriverBase.ProcessArgCommon(token, index, out)
}

func (c *ClangTidy) AddAdditionalArgsCommon(isLocal bool, out *Args) {
	if c.forceColoredDiagnostics {
		out.AddString("-fdiagnostics-color=always")
		out.AddDelimiter()
	}
}

// AddPreliminaryArgs prepends the --config-file argument that must appear
// before the "--" separator introducing the forwarded clang arguments.
func (c *ClangTidy) AddPreliminaryArgs(isLocal bool, out *Args) {
	out.AddString(fmt.Sprintf("--config-file=%s.config.yaml", c.overrideSourceFile))
	out.AddDelimiter()
}
