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

// Package redact holds the process-wide display redaction flag.
//
// When the flag is set, formatting code renders every text and bytes value as
// [Placeholder] instead of its contents. Accessors never consult it: only
// code that displays values does.
package redact

import "sync/atomic"

// Placeholder is what redacted text and bytes values are rendered as.
const Placeholder = "???"

var enabled atomic.Bool

// Enabled returns whether redaction is on. It is off unless [Set] turns it on.
func Enabled() bool {
	return enabled.Load()
}

// Set turns redaction on or off, and returns the previous setting.
//
// It may be called at any time, from any goroutine.
func Set(on bool) (prev bool) {
	return enabled.Swap(on)
}

// Override sets redaction to on, and returns a function that restores the
// previous setting. It is intended for use with defer in tests.
func Override(on bool) (restore func()) {
	prev := Set(on)
	return func() { Set(prev) }
}
