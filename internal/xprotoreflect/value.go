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

// Package xprotoreflect contains helpers for moving Go values in and out of
// [protoreflect.Value] with precise failure messages.
package xprotoreflect

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Scalar is any Go type that a [protoreflect.Value] can hold directly.
type Scalar interface {
	bool | int32 | int64 | uint32 | uint64 | float32 | float64 |
		string | []byte | protoreflect.EnumNumber
}

// Get extracts a T out of a [protoreflect.Value].
//
// Panics if v does not hold a T.
func Get[T Scalar](v protoreflect.Value) T {
	x, ok := v.Interface().(T)
	if !ok {
		var z T
		panic(typeMismatch(protoreflect.ValueOf(z), v))
	}
	return x
}

// GetMessage extracts a message out of a [protoreflect.Value] and converts it
// back into its concrete Go type.
//
// Panics if v does not hold a message, or holds a message of a different
// type.
func GetMessage[T any](v protoreflect.Value) T {
	m, ok := v.Interface().(protoreflect.Message)
	if !ok {
		panic(fmt.Sprintf("type mismatch: cannot convert %s to message", TypeName(v)))
	}
	x, ok := m.Interface().(T)
	if !ok {
		var z T
		panic(fmt.Sprintf("type mismatch: cannot convert %T to %T", m.Interface(), z))
	}
	return x
}

func typeMismatch(want, got protoreflect.Value) string {
	return fmt.Sprintf("type mismatch: cannot convert %s to %s",
		TypeName(got), TypeName(want))
}

// TypeName returns the protoreflect name of the type held by v, such as
// "int32" or "message".
func TypeName(v protoreflect.Value) string {
	switch v.Interface().(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case protoreflect.EnumNumber:
		return "enum"
	case protoreflect.Message:
		return "message"
	case protoreflect.List:
		return "list"
	case protoreflect.Map:
		return "map"
	default:
		return fmt.Sprintf("<unknown: %T>", v.Interface())
	}
}
