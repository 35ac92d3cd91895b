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

import (
	"fmt"
	"runtime"

	"github.com/fastbuild-go/ccdriver/internal/driverlog"
)

// ResponseFileMode is the closed set of policies Args.Finalize can apply
// when deciding whether to emit the command line inline or behind a
// response file.
type ResponseFileMode int

const (
	// ResponseFileModeNever never falls back to a response file; an
	// overflowing command line is a recoverable failure.
	ResponseFileModeNever ResponseFileMode = iota
	// ResponseFileModeIfNeeded emits inline when it fits, and falls back
	// to a response file only when it doesn't.
	ResponseFileModeIfNeeded
	// ResponseFileModeAlways always emits a response file, regardless of
	// whether the inline command would have fit.
	ResponseFileModeAlways
)

func (m ResponseFileMode) String() string {
	switch m {
	case ResponseFileModeNever:
		return "never"
	case ResponseFileModeIfNeeded:
		return "if-needed"
	case ResponseFileModeAlways:
		return "always"
	default:
		return fmt.Sprintf("ResponseFileMode(%d)", int(m))
	}
}

// Platform command-line-length limits, bit-exact per the FASTBuild
// original: the documented CreateProcess cap on Windows, and Darwin's
// ARG_MAX (262144) minus one. Linux enforces no inline cap;
// the interaction with the environment block isn't portably determinable.
const (
	windowsArgLimit = 32767
	darwinArgMax    = 262144
	darwinArgLimit  = darwinArgMax - 1

	// windowsResponseFileNewlineThreshold is the documented per-line limit
	// of the Windows linker's response-file reader: at or above this raw
	// args length, delimiters are rewritten from spaces to newlines.
	windowsResponseFileNewlineThreshold = 131071
)

func platformArgLimit() (limit int, enforced bool) {
	switch runtime.GOOS {
	case "windows":
		return windowsArgLimit, true
	case "darwin":
		return darwinArgLimit, true
	default:
		return 0, false
	}
}

// Args accumulates a command line for one compiler invocation. It is
// filled by a single driver pass and finalized exactly once; after that it
// is read-only, enforced by the finalized flag.
type Args struct {
	buf argsBuffer

	sink ResponseFileSink
	rf   *ResponseFile

	finalized                bool
	disableResponseFileWrite bool

	escapeSlashes bool

	finalArgs string
}

// NewArgs returns an empty Args. sink may be nil only if
// DisableResponseFileWrite is subsequently set (tests do this to avoid
// touching the filesystem).
func NewArgs(sink ResponseFileSink) *Args {
	return &Args{sink: sink}
}

// DisableResponseFileWrite skips the actual on-disk write during Finalize;
// GetFinalArgs still returns an @"..." indirection, with the fixed
// placeholder <disabled-response-file> in place of a real path. Used by tests.
func (a *Args) DisableResponseFileWrite(disable bool) {
	a.disableResponseFileWrite = disable
}

// SetEscapeSlashes controls whether Finalize asks the sink to double
// backslashes when writing a response file. Only the CL driver variant
// turns this on (see ResponseFile.EscapeSlashes).
func (a *Args) SetEscapeSlashes(escape bool) {
	a.escapeSlashes = escape
}

func (a *Args) assertNotFinalized() {
	if a.finalized {
		panic("ccdriver: Args appended to after Finalize")
	}
}

// AddString appends s verbatim to the buffer.
func (a *Args) AddString(s string) {
	a.assertNotFinalized()
	a.buf.writeString(s)
}

// AddByte appends a single byte to the buffer.
func (a *Args) AddByte(c byte) {
	a.assertNotFinalized()
	a.buf.writeByte(c)
}

// AddDelimiter records the current buffer length as a delimiter offset and
// appends a single separating space.
func (a *Args) AddDelimiter() {
	a.assertNotFinalized()
	a.buf.addDelimiter()
}

// Clear resets the buffer and delimiter list. It is only valid before
// Finalize.
func (a *Args) Clear() {
	a.assertNotFinalized()
	a.buf.clear()
}

// Len returns the number of bytes appended so far, not counting the
// executable or any response-file indirection.
func (a *Args) Len() int {
	return a.buf.len()
}

// Buffer returns the buffer's current contents: the raw, space- (or, after
// the Windows newline rewrite, newline-) delimited token stream, with no
// response-file indirection applied. ResponseFileSink implementations use
// this to decide what to write to disk.
func (a *Args) Buffer() string {
	return a.buf.String()
}

// Finalize decides between an inline command line and a response file,
// given the executable path (used only for size accounting), a node name
// (used only in the overflow error message), and a ResponseFileMode. It
// may be called exactly once.
//
// On success it returns true and GetFinalArgs returns the chosen
// representation. On a recoverable overflow (mode Never, command line too
// long) it returns false and logs an error of the form:
//
//	FBuild: Error: Command Line Limit Exceeded (len: <N>, limit: <M>) '<node>'
func (a *Args) Finalize(exe, node string, mode ResponseFileMode) bool {
	if a.finalized {
		panic("ccdriver: Args.Finalize called more than once")
	}

	argsLen := a.buf.len()
	totalLen := argsLen + len(exe) + 3 // two quotes + one separating space

	limit, enforced := platformArgLimit()
	fits := !enforced || totalLen <= limit

	switch mode {
	case ResponseFileModeNever:
		if !fits {
			driverlog.Errorf("FBuild: Error: Command Line Limit Exceeded (len: %d, limit: %d) '%s'", argsLen, limit, node)
			return false
		}
		a.finalized = true
		a.finalArgs = a.Buffer()
		return true

	case ResponseFileModeIfNeeded:
		if fits {
			a.finalized = true
			a.finalArgs = a.Buffer()
			return true
		}
		return a.finalizeToResponseFile(node)

	case ResponseFileModeAlways:
		return a.finalizeToResponseFile(node)

	default:
		panic(fmt.Sprintf("ccdriver: unknown ResponseFileMode %d", int(mode)))
	}
}

func (a *Args) finalizeToResponseFile(node string) bool {
	if runtime.GOOS == "windows" && a.buf.len() >= windowsResponseFileNewlineThreshold {
		a.buf.rewriteDelimitersToNewlines()
	}

	a.finalized = true

	if a.disableResponseFileWrite {
		a.finalArgs = `@"<disabled-response-file>"`
		return true
	}

	rf, err := a.sink.Create(a)
	if err != nil {
		driverlog.Errorf("FBuild: Error: failed to write response file for '%s': %v", node, err)
		return false
	}
	a.rf = rf
	a.finalArgs = fmt.Sprintf(`@"%s"`, rf.Path)
	return true
}

// GetFinalArgs returns the finalized command line: either the response-file
// indirection or the raw inline buffer. Calling it before Finalize panics.
func (a *Args) GetFinalArgs() string {
	if !a.finalized {
		panic("ccdriver: GetFinalArgs called before Finalize")
	}
	return a.finalArgs
}

// ResponseFile returns the ResponseFile created during Finalize, or nil if
// the command line was emitted inline.
func (a *Args) ResponseFile() *ResponseFile {
	return a.rf
}

// EscapeSlashes reports whether the sink should double backslashes when
// writing this Args out as a response file.
func (a *Args) EscapeSlashes() bool {
	return a.escapeSlashes
}
