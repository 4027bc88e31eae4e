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

package protoaccess

import (
	"errors"
	"fmt"

	"buf.build/go/protoaccess/internal/debug"
)

// Reasons a [Violation] may carry. Use [errors.Is] on a recovered *Violation
// to tell them apart.
var (
	// ErrShapeMismatch means an accessor method was called that does not
	// match the accessor's bound shape.
	ErrShapeMismatch = errors.New("accessor shape mismatch")
	// ErrIndexOutOfRange means a repeated element was requested at an index
	// outside of [0, Len).
	ErrIndexOutOfRange = errors.New("repeated index out of range")
	// ErrWrongMessage means an accessor was invoked on a record of a type other
	// than the one it was built for.
	ErrWrongMessage = errors.New("accessor invoked on wrong record type")
	// ErrNotContainer means a mutable view was requested from a field that is
	// not a list or map.
	ErrNotContainer = errors.New("field is not a container")
)

// Violation is the panic value raised when an accessor's contract is broken.
//
// Violations indicate bugs in generated code or in the construction of a field
// table, never bad data. They are not meant to be recovered in production.
type Violation struct {
	// The name of the field whose accessor was misused.
	Field string
	// The accessor method that was called, such as "GetUint32".
	Op string
	// The shape the accessor was bound to.
	Shape Shape
	// One of the Err* reasons in this package.
	Err error

	detail string
	stack  string
}

// Unwrap implements error unwrapping via [errors.Unwrap].
func (v *Violation) Unwrap() error { return v.Err }

// Error implements [error].
func (v *Violation) Error() string {
	msg := fmt.Sprintf("protoaccess: %s on %v field %q: %v", v.Op, v.Shape, v.Field, v.Err)
	if v.detail != "" {
		msg += ": " + v.detail
	}
	if v.stack != "" {
		msg += "\n" + v.stack
	}
	return msg
}

func newViolation(field, op string, shape Shape, err error, format string, args ...any) *Violation {
	v := &Violation{
		Field: field,
		Op:    op,
		Shape: shape,
		Err:   err,
	}
	if format != "" {
		v.detail = fmt.Sprintf(format, args...)
	}
	if debug.Enabled {
		v.stack = debug.Stack(3)
	}
	return v
}
