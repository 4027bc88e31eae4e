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

// Package merge combines and resets records through their container views.
//
// Only list and map fields can be written through a [protoaccess.FieldAccessor];
// fields exposed through getters alone are left untouched.
package merge

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/tiendc/go-deepcopy"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess"
)

var (
	// ErrUnregistered is returned when asked to merge or clear a record type
	// that has no registered field table.
	ErrUnregistered = errors.New("merge: no field table registered")
	// ErrMismatchedTypes is returned when merging records of different types.
	ErrMismatchedTypes = errors.New("merge: mismatched record types")
)

// Merge appends every element of src's list fields to dst's, and sets every
// entry of src's map fields in dst's, replacing existing entries.
//
// Message and bytes elements are copied, so dst shares no storage with src
// afterwards.
func Merge(dst, src protoaccess.Message) error {
	if td, ts := reflect.TypeOf(dst), reflect.TypeOf(src); td != ts {
		return fmt.Errorf("%w: %v and %v", ErrMismatchedTypes, td, ts)
	}
	fields, err := lookup(dst)
	if err != nil {
		return err
	}

	for _, f := range fields.All() {
		switch f.Shape().Cardinality {
		case protoaccess.ListField:
			from := f.Reflect(src).List()
			n := from.Len() // src may alias dst.
			to := f.Mutable(dst).List()
			for i := range n {
				to.Append(clone(from.Get(i)))
			}

		case protoaccess.MapField:
			from := f.Reflect(src).Map()
			if from.Len() == 0 {
				continue
			}
			to := f.Mutable(dst).Map()
			from.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
				to.Set(k, clone(v))
				return true
			})
		}
	}
	return nil
}

// Clear empties every list and map field of m.
func Clear(m protoaccess.Message) error {
	fields, err := lookup(m)
	if err != nil {
		return err
	}

	for _, f := range fields.All() {
		switch f.Shape().Cardinality {
		case protoaccess.ListField:
			f.Mutable(m).List().Truncate(0)

		case protoaccess.MapField:
			view := f.Mutable(m).Map()
			var keys []protoreflect.MapKey
			view.Range(func(k protoreflect.MapKey, _ protoreflect.Value) bool {
				keys = append(keys, k)
				return true
			})
			for _, k := range keys {
				view.Clear(k)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of m, including fields that are not reachable
// through its field table.
func Clone[M protoaccess.Message](m M) (M, error) {
	var out M
	if err := deepcopy.Copy(&out, &m); err != nil {
		return out, fmt.Errorf("merge: cloning %T: %w", m, err)
	}
	return out, nil
}

func lookup(m protoaccess.Message) (*protoaccess.Fields, error) {
	fields, ok := protoaccess.Lookup(m)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnregistered, m)
	}
	return fields, nil
}

// clone copies a container element that would otherwise be shared.
func clone(v protoreflect.Value) protoreflect.Value {
	switch x := v.Interface().(type) {
	case []byte:
		return protoreflect.ValueOfBytes(bytes.Clone(x))
	case protoreflect.Message:
		return protoreflect.ValueOfMessage(proto.Clone(x.Interface()).ProtoReflect())
	default:
		return v
	}
}
