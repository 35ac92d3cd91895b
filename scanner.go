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

import "strings"

// StripToken reports whether token matches needle. With allowPrefix it is a
// prefix match (used for flags like "-fdiagnostics-color" that take a
// glued suffix); otherwise it is an exact match. StripToken never mutates
// anything -- it only tells the caller whether to drop the token.
func StripToken(needle, token string, allowPrefix bool) bool {
	if allowPrefix {
		return strings.HasPrefix(token, needle)
	}
	return token == needle
}

// StripTokenWithArg reports whether token is needle itself (its argument is
// the next token, so *index is advanced by one to consume it) or needle
// glued to a suffix (needle<suffix>, argument inline, *index untouched). If
// token is wrapped in a single balanced pair of quotes it is unwrapped and
// matched again with the same index -- only one unwrap is ever performed,
// mirroring the C++ original's single level of recursion.
func StripTokenWithArg(needle, token string, index *int) bool {
	if matchTokenWithArg(needle, token, index) {
		return true
	}
	if isQuoted(token) {
		// Exactly one unwrap: match the unquoted content directly rather
		// than recursing back into StripTokenWithArg, so a second layer of
		// quoting is never peeled.
		return matchTokenWithArg(needle, stripQuotes(token), index)
	}
	return false
}

func matchTokenWithArg(needle, token string, index *int) bool {
	if !strings.HasPrefix(token, needle) {
		return false
	}
	if token == needle {
		*index++ // the argument is the next token; skip over it
	}
	return true
}
