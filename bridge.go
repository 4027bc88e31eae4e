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
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Bridges adapt a statically-typed getter on a record type M to a
// shape-specific interface that does not mention the getter's value type.
//
// Scalar shapes need no bridge type: their bridge is the getter itself,
// a func(M) V or func(M) []V, recovered by type assertion after the shape has
// been matched.

// enumGetter is the bridge for singular enum fields.
type enumGetter[M Message] interface {
	enum(M) protoreflect.EnumValueDescriptor
}

// messageGetter is the bridge for singular message fields.
type messageGetter[M Message] interface {
	message(M) Message
}

// enumItems is the bridge for repeated enum fields.
type enumItems[M Message] interface {
	size(M) int
	enum(M, int) protoreflect.EnumValueDescriptor
}

// messageItems is the bridge for repeated message fields.
type messageItems[M Message] interface {
	size(M) int
	message(M, int) Message
}

// listBridge is the bridge for list-shaped fields.
type listBridge[M Message] interface {
	size(M) int
	enum() protoreflect.EnumDescriptor
	view(M) protoreflect.List
	mutable(M) protoreflect.List
}

// mapBridge is the bridge for map-shaped fields.
type mapBridge[M Message] interface {
	size(M) int
	enum() protoreflect.EnumDescriptor
	view(M) protoreflect.Map
	mutable(M) protoreflect.Map
}

type singularEnum[M Message, E Enum] struct {
	get func(M) E
}

func (b singularEnum[M, E]) enum(m M) protoreflect.EnumValueDescriptor {
	return enumValue(b.get(m))
}

type singularMessage[M Message, N Message] struct {
	get func(M) N
}

func (b singularMessage[M, N]) message(m M) Message {
	return b.get(m)
}

type repeatedEnum[M Message, E Enum] struct {
	get func(M) []E
}

func (b repeatedEnum[M, E]) size(m M) int {
	return len(b.get(m))
}

func (b repeatedEnum[M, E]) enum(m M, n int) protoreflect.EnumValueDescriptor {
	return enumValue(b.get(m)[n])
}

type repeatedMessage[M Message, N Message] struct {
	get func(M) []N
}

func (b repeatedMessage[M, N]) size(m M) int {
	return len(b.get(m))
}

func (b repeatedMessage[M, N]) message(m M, n int) Message {
	return b.get(m)[n]
}

type sliceBridge[M Message, V any] struct {
	ty  Type[V]
	get func(M) []V
	mut func(M) *[]V
}

func (b sliceBridge[M, V]) size(m M) int {
	return len(b.get(m))
}

func (b sliceBridge[M, V]) enum() protoreflect.EnumDescriptor {
	return b.ty.Enum()
}

func (b sliceBridge[M, V]) view(m M) protoreflect.List {
	return &listView[V]{ty: b.ty, raw: b.get(m)}
}

func (b sliceBridge[M, V]) mutable(m M) protoreflect.List {
	return &mutableList[V]{ty: b.ty, raw: b.mut(m)}
}

type mapFieldBridge[M Message, K comparable, V any] struct {
	key   Type[K]
	value Type[V]
	get   func(M) map[K]V
	mut   func(M) *map[K]V
}

func (b mapFieldBridge[M, K, V]) size(m M) int {
	return len(b.get(m))
}

func (b mapFieldBridge[M, K, V]) enum() protoreflect.EnumDescriptor {
	return b.value.Enum()
}

func (b mapFieldBridge[M, K, V]) view(m M) protoreflect.Map {
	return &mapView[K, V]{key: b.key, value: b.value, raw: b.get(m)}
}

func (b mapFieldBridge[M, K, V]) mutable(m M) protoreflect.Map {
	return &mutableMap[K, V]{key: b.key, value: b.value, raw: b.mut(m)}
}
