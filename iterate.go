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

	"github.com/fastbuild-go/ccdriver/internal/driverlog"
)

// The four entry points below drive one full pass over a token sequence for
// one of FASTBuild's four argument-rewriting modes. Each token is offered,
// in order, to the mode-specific rule hook, then (if unconsumed) to
// build-time %1/%2 substitution, and finally emitted verbatim with a
// trailing delimiter. Every hook may consume an extra companion token by
// advancing the shared cursor; the loop always resumes at cursor+1.

// RunPreprocessorOnly rewrites tokens for the preprocessor-only command
// line, then appends the variant's preprocessor-emit tokens.
func RunPreprocessorOnly(d CompilerDriver, tokens []string, out *Args) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		var next string
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		if d.ProcessArgPreprocessorOnly(token, &i, next, out) {
			continue
		}
		if d.ProcessArgBuildTimeSubstitution(token, &i, out) {
			continue
		}
		emitVerbatim(token, out)
	}
	d.AddAdditionalArgsPreprocessor(out)
}

// RunCompilePreprocessed rewrites tokens for compiling an already
// preprocessed source, local or remote.
func RunCompilePreprocessed(d CompilerDriver, tokens []string, isLocal bool, out *Args) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		var next string
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		if d.ProcessArgCompilePreprocessed(token, &i, next, isLocal, out) {
			continue
		}
		if d.ProcessArgBuildTimeSubstitution(token, &i, out) {
			continue
		}
		emitVerbatim(token, out)
	}
}

// RunCommon rewrites tokens shared by every mode (diagnostics color,
// debug-prefix-map, and anything a variant doesn't special-case) and
// appends the variant's common-emit tokens.
func RunCommon(d CompilerDriver, tokens []string, isLocal bool, out *Args) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if d.ProcessArgCommon(token, &i, out) {
			continue
		}
		if d.ProcessArgBuildTimeSubstitution(token, &i, out) {
			continue
		}
		emitVerbatim(token, out)
	}
	d.AddAdditionalArgsCommon(isLocal, out)
}

// RunPreparePreprocessedForRemote rewrites tokens for the prepare-for-remote
// step: stripping anything that only makes sense on the machine that owns
// the original (non-preprocessed) sources.
func RunPreparePreprocessedForRemote(d CompilerDriver, tokens []string, out *Args) {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		var next string
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		if d.ProcessArgPreparePreprocessedForRemote(token, &i, next, out) {
			continue
		}
		if d.ProcessArgBuildTimeSubstitution(token, &i, out) {
			continue
		}
		emitVerbatim(token, out)
	}
	d.AddAdditionalArgsPreparePreprocessedForRemote(out)
}

// RewriteMode names one of the four argument-rewriting passes a caller can
// ask for. It exists purely to let ambient callers (the CLI, the worker
// pool) pick a pass by name/flag/queue field; within the core package only
// Run switches on it; callers that already know which Run* function they
// want can call it directly instead.
type RewriteMode int

const (
	RewriteModePreprocessorOnly RewriteMode = iota
	RewriteModeCompilePreprocessed
	RewriteModeCommon
	RewriteModePreparePreprocessedForRemote
)

func (m RewriteMode) String() string {
	switch m {
	case RewriteModePreprocessorOnly:
		return "preprocessor-only"
	case RewriteModeCompilePreprocessed:
		return "compile-preprocessed"
	case RewriteModeCommon:
		return "common"
	case RewriteModePreparePreprocessedForRemote:
		return "prepare-preprocessed-for-remote"
	default:
		return "unknown"
	}
}

// Run dispatches to the Run* function matching mode.
func Run(d CompilerDriver, mode RewriteMode, tokens []string, isLocal bool, out *Args) {
	switch mode {
	case RewriteModePreprocessorOnly:
		RunPreprocessorOnly(d, tokens, out)
	case RewriteModeCompilePreprocessed:
		RunCompilePreprocessed(d, tokens, isLocal, out)
	case RewriteModeCommon:
		RunCommon(d, tokens, isLocal, out)
	case RewriteModePreparePreprocessedForRemote:
		RunPreparePreprocessedForRemote(d, tokens, out)
	default:
		panic(fmt.Sprintf("ccdriver: unknown RewriteMode %d", int(mode)))
	}
}

func emitVerbatim(token string, out *Args) {
	if token == "" {
		driverlog.V(2).Infof("ccdriver: emitting empty token verbatim")
	}
	out.AddString(token)
	out.AddDelimiter()
}
