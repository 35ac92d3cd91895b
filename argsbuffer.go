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

// argsBuffer is an append-only byte buffer plus the ordered list of
// delimiter offsets the builder inserted between tokens. It never shrinks
// except via clear, and it is the only thing in this package with a
// caller-visible in-place mutation (rewriteDelimitersToNewlines).
type argsBuffer struct {
	buf        []byte
	delimiters []int
}

func (b *argsBuffer) writeByte(c byte) {
	b.buf = append(b.buf, c)
}

func (b *argsBuffer) writeString(s string) {
	b.buf = append(b.buf, s...)
}

// addDelimiter records the current length as a delimiter offset and appends
// a single separating space. Offsets must be recorded in strictly
// increasing order; since the buffer is append-only and len only grows,
// this holds automatically.
func (b *argsBuffer) addDelimiter() {
	b.delimiters = append(b.delimiters, len(b.buf))
	b.writeByte(' ')
}

func (b *argsBuffer) len() int {
	return len(b.buf)
}

func (b *argsBuffer) String() string {
	return string(b.buf)
}

func (b *argsBuffer) clear() {
	b.buf = b.buf[:0]
	b.delimiters = b.delimiters[:0]
}

// rewriteDelimitersToNewlines turns every recorded delimiter byte from ' '
// into '\n' in place. It is the one permitted in-place mutation of the
// buffer (see Args.Finalize), used for response files long enough to hit
// the Windows linker's per-line length limit. Every offset must still
// point at a space; a mismatch means a delimiter was recorded out of sync
// with the buffer, which is a programming error.
func (b *argsBuffer) rewriteDelimitersToNewlines() {
	for _, off := range b.delimiters {
		if b.buf[off] != ' ' {
			panic("ccdriver: delimiter offset does not point at a space")
		}
		b.buf[off] = '\n'
	}
}
