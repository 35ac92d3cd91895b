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

// Package driverlog is the logging facade every other ccdriver package
// logs through, a thin wrapper over glog so call sites read like kati's
// own glog.V(n).Infof calls. Trace-level decisions (token strips, -x fixups, response-file
// threshold crossings) go through V(n); recoverable and unexpected
// failures go through Errorf/Warningf.
package driverlog

import "github.com/golang/glog"

// InfoLogger is satisfied by glog.Verbose; kept as an interface so callers
// don't need to import glog directly.
type InfoLogger interface {
	Infof(format string, args ...interface{})
}

// V reports whether verbosity level n is enabled and returns a logger to
// use if so; at a disabled level Infof calls on the result are no-ops.
func V(level glog.Level) InfoLogger {
	return glog.V(level)
}

// Errorf logs a recoverable-failure message.
func Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}

// Warningf logs a non-fatal warning.
func Warningf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}
