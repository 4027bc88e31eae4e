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

// Package fieldvalue reads fields through a [protoaccess.FieldAccessor] as
// [protoreflect.Value]s, so that algorithms over records can treat every
// scalar kind alike.
package fieldvalue

import (
	"cmp"
	"reflect"
	"slices"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess"
)

// Singular reads a singular scalar field of m. Returns the invalid value for
// enum and message fields.
func Singular(f protoaccess.FieldAccessor, m protoaccess.Message) protoreflect.Value {
	switch f.Shape().Kind {
	case protoaccess.Uint32Kind:
		return protoreflect.ValueOfUint32(f.GetUint32(m))
	case protoaccess.Uint64Kind:
		return protoreflect.ValueOfUint64(f.GetUint64(m))
	case protoaccess.Int32Kind:
		return protoreflect.ValueOfInt32(f.GetInt32(m))
	case protoaccess.Int64Kind:
		return protoreflect.ValueOfInt64(f.GetInt64(m))
	case protoaccess.Float32Kind:
		return protoreflect.ValueOfFloat32(f.GetFloat32(m))
	case protoaccess.Float64Kind:
		return protoreflect.ValueOfFloat64(f.GetFloat64(m))
	case protoaccess.BoolKind:
		return protoreflect.ValueOfBool(f.GetBool(m))
	case protoaccess.StringKind:
		return protoreflect.ValueOfString(f.GetString(m))
	case protoaccess.BytesKind:
		return protoreflect.ValueOfBytes(f.GetBytes(m))
	default:
		return protoreflect.Value{}
	}
}

// Repeated reads a repeated scalar field of m. Returns nil for enum and
// message fields.
func Repeated(f protoaccess.FieldAccessor, m protoaccess.Message) []protoreflect.Value {
	switch f.Shape().Kind {
	case protoaccess.Uint32Kind:
		return values(f.GetRepeatedUint32(m), protoreflect.ValueOfUint32)
	case protoaccess.Uint64Kind:
		return values(f.GetRepeatedUint64(m), protoreflect.ValueOfUint64)
	case protoaccess.Int32Kind:
		return values(f.GetRepeatedInt32(m), protoreflect.ValueOfInt32)
	case protoaccess.Int64Kind:
		return values(f.GetRepeatedInt64(m), protoreflect.ValueOfInt64)
	case protoaccess.Float32Kind:
		return values(f.GetRepeatedFloat32(m), protoreflect.ValueOfFloat32)
	case protoaccess.Float64Kind:
		return values(f.GetRepeatedFloat64(m), protoreflect.ValueOfFloat64)
	case protoaccess.BoolKind:
		return values(f.GetRepeatedBool(m), protoreflect.ValueOfBool)
	case protoaccess.StringKind:
		return values(f.GetRepeatedString(m), protoreflect.ValueOfString)
	case protoaccess.BytesKind:
		return values(f.GetRepeatedBytes(m), protoreflect.ValueOfBytes)
	default:
		return nil
	}
}

func values[V any](s []V, of func(V) protoreflect.Value) []protoreflect.Value {
	out := make([]protoreflect.Value, len(s))
	for i, v := range s {
		out[i] = of(v)
	}
	return out
}

// SortedKeys returns the keys of m in ascending order: false before true,
// integers numerically, and strings bytewise.
func SortedKeys(m protoreflect.Map) []protoreflect.MapKey {
	keys := make([]protoreflect.MapKey, 0, m.Len())
	m.Range(func(k protoreflect.MapKey, _ protoreflect.Value) bool {
		keys = append(keys, k)
		return true
	})
	slices.SortFunc(keys, CompareKeys)
	return keys
}

// CompareKeys orders two map keys of the same type.
func CompareKeys(a, b protoreflect.MapKey) int {
	switch a.Interface().(type) {
	case bool:
		switch x, y := a.Bool(), b.Bool(); {
		case x == y:
			return 0
		case x:
			return 1
		default:
			return -1
		}
	case int32, int64:
		return cmp.Compare(a.Int(), b.Int())
	case uint32, uint64:
		return cmp.Compare(a.Uint(), b.Uint())
	default:
		return strings.Compare(a.String(), b.String())
	}
}

// IsNil returns whether m is nil, or a nil pointer (or other nilable value)
// wrapped in an interface.
func IsNil(m protoaccess.Message) bool {
	if m == nil {
		return true
	}
	switch v := reflect.ValueOf(m); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
