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

// Command fbccdriver is a thin manual- and golden-file-testing wrapper
// around the ccdriver argument-rewriting rules: it reads a raw compiler
// command line off argv, runs one rewriting mode, and prints the result.
// It is not itself a build system; the real caller is a worker-pool job
// queue driving internal/preparepool.
package main

import (
	"fmt"
	"os"
	"sort"

	"flag"

	"github.com/fastbuild-go/ccdriver"
	"github.com/fastbuild-go/ccdriver/internal/registry"
	"github.com/fastbuild-go/ccdriver/internal/responsefile"
)

var (
	compilerFlag    = flag.String("compiler", "", "compiler kind (see -list-compilers)")
	modeFlag        = flag.String("mode", "never", "response file mode: never, if-needed, always")
	rewriteFlag     = flag.String("rewrite-mode", "common", "rewrite pass: preprocessor-only, compile-preprocessed, common, prepare-remote")
	exeFlag         = flag.String("exe", "", "compiler executable path, used for size accounting")
	nodeFlag        = flag.String("node", "", "node name, used in error messages")
	workdirFlag     = flag.String("workdir", "", "working directory the compiler runs in")
	sourceMapFlag   = flag.String("source-mapping", "", "path substituted for workdir in -fdebug-prefix-map")
	remoteRootFlag  = flag.String("remote-source-root", "", "absolute sources root on the distributed worker")
	localFlag       = flag.Bool("local", true, "run the local-only rule variants")
	remoteFlag      = flag.Bool("remote", false, "run the remote rule variants (overrides -local)")
	pchFlag         = flag.Bool("creating-pch", false, "the node produces a precompiled header")
	rewriteInclFlag = flag.Bool("rewrite-includes", false, "enable clang's -frewrite-includes capability")
	updateXLangFlag = flag.Bool("update-x-language-arg", false, "enable the -x language fixup capability")
	forceColorFlag  = flag.Bool("force-color", false, "force colored diagnostics")
	overrideSrcFlag = flag.String("override-source", "", "override the %1 source file substitution")
	sourceFlag      = flag.String("source", "", "the node's source file, substituted for %1")
	outputFlag      = flag.String("output", "", "the node's output file, substituted for %2")
	relBaseFlag     = flag.String("relative-base-path", "", "base path %1/%2 are resolved relative to")
	listCompilers   = flag.Bool("list-compilers", false, "print supported -compiler values and exit")
)

func main() {
	flag.Parse()

	if *listCompilers {
		printCompilerKinds()
		return
	}

	tokens := flag.Args()
	isLocal := *localFlag && !*remoteFlag

	mode, err := parseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rewriteMode, err := parseRewriteMode(*rewriteFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	driver, err := registry.New(registry.Kind(*compilerFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	node := ccdriver.StaticObjectNode{
		SourceFile:  *sourceFlag,
		OutputName:  *outputFlag,
		CreatingPCH: *pchFlag,
		Caps: ccdriver.CompilerCaps{
			ClangRewriteIncludesEnabled:       *rewriteInclFlag,
			ClangGCCUpdateXLanguageArgEnabled: *updateXLangFlag,
		},
	}

	driver.Init(node, *remoteRootFlag)
	driver.SetSourceMapping(*sourceMapFlag)
	driver.SetRelativeBasePath(*relBaseFlag)
	driver.SetOverrideSourceFile(*overrideSrcFlag)
	driver.SetForceColoredDiagnostics(*forceColorFlag)
	driver.SetWorkingDir(*workdirFlag)

	out := ccdriver.NewArgs(responsefile.New(""))
	out.SetEscapeSlashes(driver.NeedsEscapedSlashes())
	ccdriver.Run(driver, rewriteMode, tokens, isLocal, out)

	if !out.Finalize(*exeFlag, *nodeFlag, mode) {
		os.Exit(2)
	}

	fmt.Println(out.GetFinalArgs())
}

func parseMode(s string) (ccdriver.ResponseFileMode, error) {
	switch s {
	case "never":
		return ccdriver.ResponseFileModeNever, nil
	case "if-needed":
		return ccdriver.ResponseFileModeIfNeeded, nil
	case "always":
		return ccdriver.ResponseFileModeAlways, nil
	default:
		return 0, fmt.Errorf("fbccdriver: unknown -mode %q (want never, if-needed, or always)", s)
	}
}

func parseRewriteMode(s string) (ccdriver.RewriteMode, error) {
	switch s {
	case "preprocessor-only":
		return ccdriver.RewriteModePreprocessorOnly, nil
	case "compile-preprocessed":
		return ccdriver.RewriteModeCompilePreprocessed, nil
	case "common":
		return ccdriver.RewriteModeCommon, nil
	case "prepare-remote":
		return ccdriver.RewriteModePreparePreprocessedForRemote, nil
	default:
		return 0, fmt.Errorf("fbccdriver: unknown -rewrite-mode %q", s)
	}
}

func printCompilerKinds() {
	kinds := registry.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}
