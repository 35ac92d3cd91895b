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

// isStartOfCompilerArgMSVC reports whether b introduces an MSVC-style flag;
// unlike GCC/Clang, MSVC (and clang-CL) accept both '/' and '-'.
func isStartOfCompilerArgMSVC(b byte) bool {
	return b == '/' || b == '-'
}

func isCompilerArgMSVC(token string) bool {
	return len(token) > 0 && isStartOfCompilerArgMSVC(token[0])
}

// stripTokenMSVC is StripToken with MSVC's dual-prefix convention: needle is
// given without its leading slash/dash and is checked against token with
// either prefix stripped.
func stripTokenMSVC(needle, token string, allowPrefix bool) bool {
	if isQuoted(token) {
		return stripTokenMSVC(needle, stripQuotes(token), allowPrefix)
	}
	if !isCompilerArgMSVC(token) {
		return false
	}
	return StripToken(needle, token[1:], allowPrefix)
}

// stripTokenWithArgMSVC is StripTokenWithArg with MSVC's dual-prefix
// convention.
func stripTokenWithArgMSVC(needle, token string, index *int) bool {
	if isQuoted(token) {
		return stripTokenWithArgMSVC(needle, stripQuotes(token), index)
	}
	if !isCompilerArgMSVC(token) {
		return false
	}
	return StripTokenWithArg(needle, token[1:], index)
}
