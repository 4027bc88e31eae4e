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

// Package equal compares records structurally, using only the field tables
// registered with [protoaccess.Register].
//
// Two records are equal if they are of the same type and every field agrees
// on presence and, where present, on value. Bytes compare by content, enums by
// number, and submessages and container views element by element. Generated
// protobuf messages with no registered table are compared through
// [protoreflect].
package equal

import (
	"errors"
	"fmt"
	"strings"

	"buf.build/go/protoaccess"
)

// ErrUnregistered is returned when asked to compare a record type that has no
// registered field table and is not a protobuf message.
var ErrUnregistered = errors.New("equal: no field table registered")

// Option is a configuration setting for [Equal] and [Diff].
type Option struct{ apply func(*options) }

type options struct {
	nanEqual bool
}

// WithNaNEqual causes NaN floating-point values to compare equal to each
// other. By default, as with ==, NaN is not equal to anything.
func WithNaNEqual() Option {
	return Option{func(o *options) { o.nanEqual = true }}
}

// Equal returns whether a and b are structurally equal.
func Equal(a, b protoaccess.Message, opts ...Option) bool {
	return Diff(a, b, opts...) == nil
}

// Diff returns nil if a and b are structurally equal. Otherwise it returns a
// [*Difference] describing the first difference found, in field declaration
// order, or an error wrapping [ErrUnregistered].
func Diff(a, b protoaccess.Message, opts ...Option) error {
	d := differ{}
	for _, opt := range opts {
		opt.apply(&d.opts)
	}
	return d.record(a, b)
}

// Difference is the first place at which two records were found to differ.
type Difference struct {
	// The path to the differing value, such as children[1].id.
	Path string
	// What differs there.
	Reason string
}

// Error implements [error].
func (d *Difference) Error() string {
	return fmt.Sprintf("equal: at %s: %s", d.Path, d.Reason)
}

// formatPath renders a path of field names, list indices and map keys.
func formatPath(path []any) string {
	if len(path) == 0 {
		return "."
	}

	buf := new(strings.Builder)
	for _, e := range path {
		switch e := e.(type) {
		case name:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(string(e))
		case string:
			fmt.Fprintf(buf, "[%q]", e)
		default:
			fmt.Fprintf(buf, "[%v]", e)
		}
	}
	return buf.String()
}

// name is a field name path component, as opposed to a string map key.
type name string
