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

package debug

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupported is wrapped by every error returned from [Unsupported].
var ErrUnsupported = errors.New("protoaccess: unsupported operation")

// Unsupported returns an "unsupported" error naming the calling function.
//
// Read-only views panic with this value when a caller attempts to mutate
// them.
func Unsupported() error {
	pc, _, _, _ := runtime.Caller(1)
	return &errUnsupported{pc}
}

type errUnsupported struct{ pc uintptr }

// Unwrap implements error unwrapping via [errors.Unwrap].
func (e *errUnsupported) Unwrap() error { return ErrUnsupported }

// Error implements [error].
func (e *errUnsupported) Error() string {
	name := runtime.FuncForPC(e.pc).Name()
	if name == "" {
		return ErrUnsupported.Error()
	}

	slash := strings.LastIndexByte(name, '/')
	name = name[slash+1:]
	return fmt.Sprintf("protoaccess: %s() is not supported", name)
}
