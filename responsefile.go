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

// ResponseFile is the on-disk artifact an Args falls back to once its
// inline command line would exceed the platform limit. It is tied 1:1 to
// the Args that created it.
type ResponseFile struct {
	// Path is where the response file was written.
	Path string

	// EscapeSlashes doubles every backslash before writing, which MSVC's
	// "@response.txt" reader requires for quoted Windows paths. Only the
	// CL driver variant sets this.
	EscapeSlashes bool
}

// ResponseFileSink is the side-effecting collaborator that actually writes
// a ResponseFile to disk. Args.Finalize calls it at most once per Args,
// guarded by the finalized flag; Args itself never touches the filesystem.
type ResponseFileSink interface {
	Create(args *Args) (*ResponseFile, error)
}
