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

// CompilerCaps is the small capability-bit set an ObjectNode's configured
// compiler exposes. These bits selectively enable rule changes that would
// otherwise break older toolchains (see the -x language fixup in
// driver_gccclang.go).
type CompilerCaps struct {
	// ClangRewriteIncludesEnabled turns on -frewrite-includes during
	// preprocessing.
	ClangRewriteIncludesEnabled bool

	// ClangGCCUpdateXLanguageArgEnabled gates the "-x c" -> "-x
	// cpp-output" rewrite. Older clang releases break if this rewrite
	// runs, so it is opt-in per node.
	ClangGCCUpdateXLanguageArgEnabled bool
}

// StaticObjectNode is a plain-data ObjectNode for callers that don't have a
// real build graph to hand -- the CLI entry point and the worker pool below
// both construct one per request from flags or queue payload fields.
type StaticObjectNode struct {
	SourceFile  string
	OutputName  string
	CreatingPCH bool
	Caps        CompilerCaps
}

func (n StaticObjectNode) SourceFileName() string   { return n.SourceFile }
func (n StaticObjectNode) Name() string             { return n.OutputName }
func (n StaticObjectNode) IsCreatingPCH() bool       { return n.CreatingPCH }
func (n StaticObjectNode) CompilerCaps() CompilerCaps { return n.Caps }

// ObjectNode is the build-graph collaborator the driver consumes. The
// driver never owns it -- it is a borrowed, read-only view bound for the
// lifetime of one compile-command preparation. The build graph itself
// (scheduling, caching, dependency tracking) is out of scope for this
// subsystem; only this narrow interface crosses the boundary.
type ObjectNode interface {
	// SourceFileName is the input source file, substituted for %1.
	SourceFileName() string

	// Name is the output object file, substituted for %2.
	Name() string

	// IsCreatingPCH reports whether this compile produces a precompiled
	// header, which changes preprocessor emission (-dD).
	IsCreatingPCH() bool

	// CompilerCaps returns the node's compiler capability bits.
	CompilerCaps() CompilerCaps
}
