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

// CL drives MSVC's cl.exe and clang-cl, which share the same /-or-- flag
// grammar. clang-cl additionally understands GCC-style diagnostics-color
// flags that cl.exe doesn't, so those are only stripped (and re-added) when
// IsClangCL is set.
type CL struct {
	DriverBase
	IsClangCL bool
}

// NewCL returns a CL driver. isClangCL selects clang-cl's extra
// diagnostics-color handling over plain cl.exe.
func NewCL(isClangCL bool) *CL {
	return &CL{IsClangCL: isClangCL}
}

// NeedsEscapedSlashes is true for both cl.exe and clang-cl: MSVC's
// @response.txt reader treats a bare backslash as an escape character, so
// the response file must double every backslash.
func (c *CL) NeedsEscapedSlashes() bool {
	return true
}

func (c *CL) ProcessArgCommon(token string, index *int, out *Args) bool {
	if c.IsClangCL && c.forceColoredDiagnostics {
		if stripTokenMSVC("fdiagnostics-color", token, true) {
			return true
		}
	}
	return c.DriverBase.ProcessArgCommon(token, index, out)
}

func (c *CL) AddAdditionalArgsCommon(isLocal bool, out *Args) {
	if c.IsClangCL && c.forceColoredDiagnostics {
		out.AddString("-fdiagnostics-color=always")
		out.AddDelimiter()
	}
	c.DriverBase.AddAdditionalArgsCommon(isLocal, out)
}
