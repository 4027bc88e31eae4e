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
	"fmt"
	"iter"
	"reflect"

	"buf.build/go/protoaccess/internal/debug"
)

// Fields is the immutable field table of one record type.
//
// A Fields is the only place where accessors lose their static record type:
// [NewFields] only accepts accessors built for the same record type, so every
// accessor reachable from a table is sound to invoke on records of
// [Fields.Type].
type Fields struct {
	ty      reflect.Type
	fields  []FieldAccessor
	byName  map[string]int
	accepts func(Message) bool
}

// NewFields builds the field table for record type M, in declaration order.
//
// Panics if two accessors share a name, or if M is an interface type: tables
// are looked up by a record's dynamic type, which is never an interface.
func NewFields[M Message](accessors ...*Accessor[M]) *Fields {
	if ty := reflect.TypeFor[M](); ty.Kind() == reflect.Interface {
		panic(fmt.Sprintf("protoaccess: record type %v is an interface", ty))
	}

	f := &Fields{
		ty:     reflect.TypeFor[M](),
		fields: make([]FieldAccessor, len(accessors)),
		byName: make(map[string]int, len(accessors)),
		accepts: func(m Message) bool {
			_, ok := m.(M)
			return ok
		},
	}

	for i, a := range accessors {
		if a == nil {
			panic(fmt.Sprintf("protoaccess: nil accessor at index %d for %v", i, f.ty))
		}
		if j, ok := f.byName[a.name]; ok {
			panic(fmt.Sprintf("protoaccess: duplicate field %q at indices %d and %d for %v", a.name, j, i, f.ty))
		}
		f.fields[i] = a
		f.byName[a.name] = i
	}

	debug.Log(nil, "fields", "%v: %d fields", f.ty, len(f.fields))
	return f
}

// Type returns the record type this table describes.
func (f *Fields) Type() reflect.Type { return f.ty }

// Accepts returns whether m is a record of the type this table describes.
func (f *Fields) Accepts(m Message) bool { return f.accepts(m) }

// Len returns the number of fields in this table.
func (f *Fields) Len() int { return len(f.fields) }

// Get returns the n-th field in declaration order.
func (f *Fields) Get(n int) FieldAccessor { return f.fields[n] }

// ByName returns the field with the given name, or nil if there is no such
// field.
func (f *Fields) ByName(name string) FieldAccessor {
	n, ok := f.byName[name]
	if !ok {
		return nil
	}
	return f.fields[n]
}

// All returns an iterator over the fields in declaration order.
func (f *Fields) All() iter.Seq2[int, FieldAccessor] {
	return func(yield func(int, FieldAccessor) bool) {
		for i, a := range f.fields {
			if !yield(i, a) {
				return
			}
		}
	}
}
