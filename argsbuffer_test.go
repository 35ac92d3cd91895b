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

func TestArgsBufferBasic(t *testing.T) {
	var b argsBuffer
	b.writeString("-c")
	b.addDelimiter()
	b.writeString("foo.c")

	if got, want := b.String(), "-c foo.c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := b.len(), len("-c foo.c"); got != want {
		t.Errorf("len() = %d, want %d", got, want)
	}
}

func TestArgsBufferClear(t *testing.T) {
	var b argsBuffer
	b.writeString("foo")
	b.addDelimiter()
	b.clear()

	if got := b.len(); got != 0 {
		t.Errorf("len() after clear = %d, want 0", got)
	}
	if got := b.String(); got != "" {
		t.Errorf("String() after clear = %q, want empty", got)
	}
}

// TestArgsBufferRewriteDelimitersToNewlines is property P6: every recorded
// delimiter byte becomes '\n' and total length is unchanged.
func TestArgsBufferRewriteDelimitersToNewlines(t *testing.T) {
	var b argsBuffer
	b.writeString("foo")
	b.addDelimiter()
	b.writeString("bar")
	b.addDelimiter()
	b.writeString("baz")

	before := b.len()
	b.rewriteDelimitersToNewlines()

	if b.len() != before {
		t.Errorf("len() changed across rewrite: %d -> %d", before, b.len())
	}
	if got, want := b.String(), "foo\nbar\nbaz"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	for _, off := range b.delimiters {
		if b.buf[off] != '\n' {
			t.Errorf("delimiter at %d = %q, want '\\n'", off, b.buf[off])
		}
	}
}

func TestArgsBufferRewriteDelimitersDesyncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("rewriteDelimitersToNewlines with a desynced offset did not panic")
		}
	}()

	var b argsBuffer
	b.writeString("foo")
	b.delimiters = append(b.delimiters, 0) // points at 'f', not a space
	b.rewriteDelimitersToNewlines()
}
