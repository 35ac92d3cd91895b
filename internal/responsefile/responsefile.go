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

// Package responsefile is the concrete, filesystem-backed
// ccdriver.ResponseFileSink. The core package never touches disk itself;
// this is the one place that does, mirroring how kati's ioutil.go/
// fileutil.go keep all raw os/path-filepath calls out of the evaluator.
package responsefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fastbuild-go/ccdriver"
)

// Sink writes response files as plain temp files under Dir (or the system
// temp directory, if Dir is empty).
type Sink struct {
	Dir    string
	Prefix string
}

// New returns a Sink rooted at dir. An empty dir means os.TempDir().
func New(dir string) *Sink {
	return &Sink{Dir: dir, Prefix: "fbccdriver-"}
}

// Create writes args's buffer to a new temp file and returns its path.
func (s *Sink) Create(args *ccdriver.Args) (*ccdriver.ResponseFile, error) {
	dir := s.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	prefix := s.Prefix
	if prefix == "" {
		prefix = "fbccdriver-"
	}

	f, err := os.CreateTemp(dir, prefix+"*.rsp")
	if err != nil {
		return nil, fmt.Errorf("responsefile: create: %w", err)
	}
	defer f.Close()

	content := args.Buffer()
	if args.EscapeSlashes() {
		content = strings.ReplaceAll(content, `\`, `\\`)
	}

	if _, err := f.WriteString(content); err != nil {
		return nil, fmt.Errorf("responsefile: write %s: %w", f.Name(), err)
	}

	return &ccdriver.ResponseFile{
		Path:          filepath.Clean(f.Name()),
		EscapeSlashes: args.EscapeSlashes(),
	}, nil
}
