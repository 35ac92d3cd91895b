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

// Package preparepool runs many independent compile-command preparations
// concurrently. It is a bounded goroutine pool in kati's worker.go/para.go
// style (a fixed number of workers draining a job channel, a WaitGroup
// gating completion) rather than one goroutine per request, because a
// build can enqueue thousands of object files at once.
package preparepool

import (
	"context"
	"fmt"
	"sync"

	"github.com/fastbuild-go/ccdriver"
	"github.com/fastbuild-go/ccdriver/internal/registry"
	"github.com/fastbuild-go/ccdriver/internal/responsefile"
)

func errCommandLineTooLong(node string) error {
	return fmt.Errorf("preparepool: command line limit exceeded for %q", node)
}

// PrepareRequest is a queue-friendly stand-in for a real build-graph
// ObjectNode: the worker pool never touches the build graph itself, only
// what the driver needs out of it.
type PrepareRequest struct {
	Kind        registry.Kind
	RewriteMode ccdriver.RewriteMode
	Tokens      []string
	IsLocal     bool
	Mode        ccdriver.ResponseFileMode
	Exe         string
	NodeName    string
	WorkDir     string

	SourceMapping      string
	RelativeBasePath   string
	OverrideSourceFile string
	RemoteSourceRoot   string
	ForceColor         bool

	Node ccdriver.StaticObjectNode
}

// PrepareResult is the outcome of running one PrepareRequest through the
// core driver pipeline.
type PrepareResult struct {
	Request   PrepareRequest
	FinalArgs string
	Err       error
}

// Run drives requests through the core CompilerDriver pipeline using
// concurrency workers (at least one). Each worker builds its own driver and
// Args per request -- never shared across goroutines, preserving the
// package's no-synchronization-inside-one-preparation invariant -- and
// writes response files (when needed) under a scratch Sink.
func Run(ctx context.Context, requests []PrepareRequest, concurrency int) []PrepareResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]PrepareResult, len(requests))
	jobs := make(chan int, len(requests))
	for i := range requests {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	sink := responsefile.New("")

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					results[i] = PrepareResult{Request: requests[i], Err: ctx.Err()}
					continue
				default:
				}
				results[i] = prepareOne(requests[i], sink)
			}
		}()
	}
	wg.Wait()

	return results
}

func prepareOne(req PrepareRequest, sink ccdriver.ResponseFileSink) PrepareResult {
	driver, err := registry.New(req.Kind)
	if err != nil {
		return PrepareResult{Request: req, Err: err}
	}

	driver.Init(req.Node, req.RemoteSourceRoot)
	driver.SetSourceMapping(req.SourceMapping)
	driver.SetRelativeBasePath(req.RelativeBasePath)
	driver.SetOverrideSourceFile(req.OverrideSourceFile)
	driver.SetForceColoredDiagnostics(req.ForceColor)
	driver.SetWorkingDir(req.WorkDir)

	out := ccdriver.NewArgs(sink)
	out.SetEscapeSlashes(driver.NeedsEscapedSlashes())
	ccdriver.Run(driver, req.RewriteMode, req.Tokens, req.IsLocal, out)

	if !out.Finalize(req.Exe, req.NodeName, req.Mode) {
		return PrepareResult{Request: req, Err: errCommandLineTooLong(req.NodeName)}
	}

	return PrepareResult{Request: req, FinalArgs: out.GetFinalArgs()}
}
