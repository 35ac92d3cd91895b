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

func TestStripToken(t *testing.T) {
	for _, tc := range []struct {
		needle      string
		token       string
		allowPrefix bool
		want        bool
	}{
		{needle: "-c", token: "-c", allowPrefix: false, want: true},
		{needle: "-c", token: "-color", allowPrefix: false, want: false},
		{needle: "-fdiagnostics-color", token: "-fdiagnostics-color=always", allowPrefix: true, want: true},
		{needle: "-fdiagnostics-color", token: "-fdiagnostics-color=always", allowPrefix: false, want: false},
	} {
		if got := StripToken(tc.needle, tc.token, tc.allowPrefix); got != tc.want {
			t.Errorf("StripToken(%q, %q, %v) = %v, want %v", tc.needle, tc.token, tc.allowPrefix, got, tc.want)
		}
	}
}

// TestStripTokenWithArgCompanionConsumption is property P3: the index
// advances by exactly one for the bare-needle form and not at all for the
// glued-suffix form.
func TestStripTokenWithArgCompanionConsumption(t *testing.T) {
	i := 0
	if !StripTokenWithArg("-o", "-o", &i) {
		t.Fatal("StripTokenWithArg(-o, -o) = false, want true")
	}
	if i != 1 {
		t.Errorf("index after bare needle = %d, want 1", i)
	}

	i = 0
	if !StripTokenWithArg("-o", "-oout.o", &i) {
		t.Fatal("StripTokenWithArg(-o, -oout.o) = false, want true")
	}
	if i != 0 {
		t.Errorf("index after glued suffix = %d, want 0", i)
	}
}

// TestStripTokenWithArgQuoteRecursion is property P4.
func TestStripTokenWithArgQuoteRecursion(t *testing.T) {
	iQuoted, iPlain := 0, 0
	gotQuoted := StripTokenWithArg("-o", `"-o"`, &iQuoted)
	gotPlain := StripTokenWithArg("-o", "-o", &iPlain)

	if gotQuoted != gotPlain || iQuoted != iPlain {
		t.Errorf(`StripTokenWithArg(-o, "-o") = (%v, %d), want same as unquoted (%v, %d)`, gotQuoted, iQuoted, gotPlain, iPlain)
	}

	// Doubly-nested quotes are not recursed -- only one unwrap.
	i := 0
	if StripTokenWithArg("-o", `"'-o'"`, &i) {
		t.Error(`StripTokenWithArg(-o, "'-o'") = true, want false (only one quote layer is unwrapped)`)
	}
}

func TestStripTokenWithArgNoMatch(t *testing.T) {
	i := 0
	if StripTokenWithArg("-o", "-c", &i) {
		t.Error("StripTokenWithArg(-o, -c) = true, want false")
	}
	if i != 0 {
		t.Errorf("index mutated on no-match: %d", i)
	}
}
