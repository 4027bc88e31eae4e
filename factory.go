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

	"buf.build/go/protoaccess/internal/debug"
)

// Presence is the presence policy of a singular field.
//
// The zero Presence is [Implicit].
type Presence[M Message] struct {
	has func(M) bool
}

// Explicit returns the presence policy for fields that track whether they have
// been set, such as proto2 optional and required fields, or proto3 optional
// fields. has reports whether the field is set.
func Explicit[M Message](has func(M) bool) Presence[M] {
	if has == nil {
		panic("protoaccess: nil presence predicate")
	}
	return Presence[M]{has}
}

// Implicit returns the presence policy for fields that always have a value,
// falling back to their default; such fields always report being set.
func Implicit[M Message]() Presence[M] {
	return Presence[M]{}
}

func (p Presence[M]) predicate() func(M) bool {
	if p.has == nil {
		return alwaysSet[M]
	}
	return p.has
}

func alwaysSet[M Message](M) bool { return true }

// Singular returns an accessor for a singular scalar, string or bytes field.
func Singular[M Message, V any](name string, ty Type[V], p Presence[M], get func(M) V) *Accessor[M] {
	checkScalar(name, ty)
	checkGetter(name, get == nil)
	return build(name, Shape{SingularField, ty.Kind()}, p.predicate(), nil, get)
}

// SingularEnum returns an accessor for a singular enum field.
func SingularEnum[M Message, E Enum](name string, p Presence[M], get func(M) E) *Accessor[M] {
	checkGetter(name, get == nil)
	return build(name, Shape{SingularField, EnumKind}, p.predicate(), nil,
		enumGetter[M](singularEnum[M, E]{get}))
}

// SingularMessage returns an accessor for a singular message field.
func SingularMessage[M Message, N Message](name string, p Presence[M], get func(M) N) *Accessor[M] {
	checkGetter(name, get == nil)
	return build(name, Shape{SingularField, MessageKind}, p.predicate(), nil,
		messageGetter[M](singularMessage[M, N]{get}))
}

// Repeated returns an accessor for a repeated scalar, string or bytes field.
func Repeated[M Message, V any](name string, ty Type[V], get func(M) []V) *Accessor[M] {
	checkScalar(name, ty)
	checkGetter(name, get == nil)
	size := func(m M) int { return len(get(m)) }
	return build(name, Shape{RepeatedField, ty.Kind()}, nil, size, get)
}

// RepeatedEnum returns an accessor for a repeated enum field.
func RepeatedEnum[M Message, E Enum](name string, get func(M) []E) *Accessor[M] {
	checkGetter(name, get == nil)
	b := repeatedEnum[M, E]{get}
	return build(name, Shape{RepeatedField, EnumKind}, nil, b.size, enumItems[M](b))
}

// RepeatedMessage returns an accessor for a repeated message field.
func RepeatedMessage[M Message, N Message](name string, get func(M) []N) *Accessor[M] {
	checkGetter(name, get == nil)
	b := repeatedMessage[M, N]{get}
	return build(name, Shape{RepeatedField, MessageKind}, nil, b.size, messageItems[M](b))
}

// NewList returns an accessor that exposes a repeated field as a container
// view. get returns the field's slice; mut returns a pointer to it so that
// the view can grow or shrink it.
func NewList[M Message, V any](name string, ty Type[V], get func(M) []V, mut func(M) *[]V) *Accessor[M] {
	checkType(name, ty)
	checkGetter(name, get == nil || mut == nil)
	b := sliceBridge[M, V]{ty: ty, get: get, mut: mut}
	return build(name, Shape{ListField, ty.Kind()}, nil, b.size, listBridge[M](b))
}

// NewMap returns an accessor that exposes a map field as a container view.
// get returns the field's map; mut returns a pointer to it so that the view
// can allocate it on first write.
//
// Keys must be of a kind protobuf allows as a map key: an integer, bool or
// string kind.
func NewMap[M Message, K comparable, V any](name string, key Type[K], value Type[V], get func(M) map[K]V, mut func(M) *map[K]V) *Accessor[M] {
	checkType(name, key)
	checkType(name, value)
	switch key.Kind() {
	case Uint32Kind, Uint64Kind, Int32Kind, Int64Kind, BoolKind, StringKind:
	default:
		panic(fmt.Sprintf("protoaccess: invalid map key kind %v for field %q", key.Kind(), name))
	}
	checkGetter(name, get == nil || mut == nil)
	b := mapFieldBridge[M, K, V]{key: key, value: value, get: get, mut: mut}
	return build(name, Shape{MapField, value.Kind()}, nil, b.size, mapBridge[M](b))
}

// build packages an accessor. Every constraint beyond a non-empty name is
// enforced by the signatures of the exported constructors.
func build[M Message](name string, shape Shape, has func(M) bool, size func(M) int, bridge any) *Accessor[M] {
	if name == "" {
		panic("protoaccess: empty field name")
	}
	debug.Assert(shape.IsValid(), "invalid shape %v for field %q", shape, name)

	a := &Accessor[M]{
		name:   name,
		shape:  shape,
		has:    has,
		size:   size,
		bridge: bridge,
	}
	debug.Log(nil, "build", "%v", a)
	return a
}

func checkScalar[V any](name string, ty Type[V]) {
	checkType(name, ty)
	if !ty.Kind().IsScalar() {
		panic(fmt.Sprintf("protoaccess: %v is not a scalar kind (field %q)", ty.Kind(), name))
	}
}

func checkGetter(name string, isNil bool) {
	if isNil {
		panic(fmt.Sprintf("protoaccess: nil getter for field %q", name))
	}
}

func checkType[V any](name string, ty Type[V]) {
	if !ty.isValid() {
		panic(fmt.Sprintf("protoaccess: invalid value type for field %q", name))
	}
}
