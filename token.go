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

// A Token is one lexical command-line argument, bytes as received from
// whatever tokenizer split the raw command line. It may still be wrapped in
// a matching pair of '"' or '\'' -- unwrapping is the caller's job, see
// stripQuotes, StripTokenWithArg and the MSVC helpers in msvc.go.
type Token = string

// stripQuotes implements the Args helper of the same name: it drops one
// leading '"' or '\'' and one trailing '"' or '\'' from s, each checked on
// its own (the two need not match), and returns the inner text. Used
// wherever a driver needs to unwrap a quoted flag before pattern-matching it.
func stripQuotes(s string) string {
	start, end := 0, len(s)
	if start == end {
		return ""
	}
	if isQuoteByte(s[start]) {
		start++
	}
	if end > start && isQuoteByte(s[end-1]) {
		end--
	}
	if end < start {
		return ""
	}
	return s[start:end]
}

func isQuoteByte(b byte) bool {
	return b == '"' || b == '\''
}

// isQuoted reports whether token is wrapped in a single balanced pair of
// '"' or '\'' with at least one byte of content inside (length > 2).
func isQuoted(token string) bool {
	if len(token) <= 2 {
		return false
	}
	first, last := token[0], token[len(token)-1]
	return isQuoteByte(first) && first == last
}
