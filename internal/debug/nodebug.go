// Copyright 2025 Buf Technologies, Inc.
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

//go:build !debug

// Package debug includes debugging helpers.
package debug

// Enabled is true if the module is being built with the debug tag, which
// enables various debugging features.
const Enabled = false

// Capture is a no-op outside of debug mode.
func Capture(interface{ Log(...any) }) func() { return func() {} }

// Log is a no-op outside of debug mode.
func Log([]any, string, string, ...any) {}

// Assert is a no-op outside of debug mode.
func Assert(bool, string, ...any) {}
