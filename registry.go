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
	"iter"
	"reflect"

	"buf.build/go/protoaccess/internal/debug"
	"buf.build/go/protoaccess/internal/xsync"
)

var (
	// ErrNilFields is returned when registering a nil table.
	ErrNilFields = errors.New("protoaccess: nil field table")
	// ErrConflictingRegistration is returned when a different table is
	// already registered for the same record type.
	ErrConflictingRegistration = errors.New("protoaccess: conflicting field table registration")
)

// registry maps record types to their field tables. Tables are registered once,
// typically from generated init functions, and read by generic algorithms.
var registry xsync.Map[reflect.Type, *Fields]

// Register installs f as the field table for f.Type().
//
// Registering the same table twice is a no-op.
func Register(f *Fields) error {
	if f == nil {
		return ErrNilFields
	}

	actual, loaded := registry.LoadOrStore(f.ty, f)
	if loaded && actual != f {
		return fmt.Errorf("%w: %v", ErrConflictingRegistration, f.ty)
	}

	if !loaded {
		debug.Log(nil, "register", "%v", f.ty)
	}
	return nil
}

// MustRegister is like [Register], but panics on error. It is meant to be
// called from init functions.
func MustRegister(f *Fields) *Fields {
	if err := Register(f); err != nil {
		panic(err)
	}
	return f
}

// Lookup returns the field table registered for m's dynamic type.
func Lookup(m Message) (*Fields, bool) {
	return LookupType(reflect.TypeOf(m))
}

// LookupType returns the field table registered for ty.
func LookupType(ty reflect.Type) (*Fields, bool) {
	if ty == nil {
		return nil, false
	}
	return registry.Load(ty)
}

// Registered returns an iterator over every registered field table, in no
// particular order.
func Registered() iter.Seq[*Fields] {
	return func(yield func(*Fields) bool) {
		for _, f := range registry.All() {
			if !yield(f) {
				return
			}
		}
	}
}
