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
	"reflect"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// FieldAccessor is the uniform, schema-agnostic interface to one field of one
// record type.
//
// Every method must only be called with a record of the type the accessor was
// built for, and only if it matches the accessor's [Shape]; anything else is a
// contract violation and panics with a [*Violation]. Accessors hold no
// mutable state and are safe for concurrent use.
type FieldAccessor interface {
	// Name returns the field's name.
	Name() string
	// Shape returns the shape this accessor is bound to.
	Shape() Shape

	// Has returns whether a singular field is set. Fields with implicit
	// presence are always set.
	Has(m Message) bool
	// Len returns the number of elements of a repeated, list or map field.
	Len(m Message) int

	GetUint32(m Message) uint32
	GetUint64(m Message) uint64
	GetInt32(m Message) int32
	GetInt64(m Message) int64
	GetFloat32(m Message) float32
	GetFloat64(m Message) float64
	GetBool(m Message) bool
	GetString(m Message) string
	GetBytes(m Message) []byte

	// The repeated getters return the record's storage, not a copy. Callers
	// must not modify it.
	GetRepeatedUint32(m Message) []uint32
	GetRepeatedUint64(m Message) []uint64
	GetRepeatedInt32(m Message) []int32
	GetRepeatedInt64(m Message) []int64
	GetRepeatedFloat32(m Message) []float32
	GetRepeatedFloat64(m Message) []float64
	GetRepeatedBool(m Message) []bool
	GetRepeatedString(m Message) []string
	GetRepeatedBytes(m Message) [][]byte

	// GetEnum returns the descriptor of a singular enum field's value. If the
	// enum does not declare the value, the descriptor is a placeholder that
	// only reports its number and parent enum.
	GetEnum(m Message) protoreflect.EnumValueDescriptor
	// GetRepeatedEnum is like GetEnum, for the n-th element of a repeated
	// enum field.
	GetRepeatedEnum(m Message, n int) protoreflect.EnumValueDescriptor

	// GetMessage returns a singular message field.
	GetMessage(m Message) Message
	// GetRepeatedMessage returns the n-th element of a repeated message
	// field.
	GetRepeatedMessage(m Message, n int) Message

	// Reflect returns a read-only view of a list or map field. For any other
	// shape, it returns a view of kind [NotContainer].
	Reflect(m Message) View
	// Mutable returns a view of a list or map field that writes through to m.
	//
	// The caller must not use any other view of the same field while holding
	// a mutable one.
	Mutable(m Message) View
}

// Accessor is the [FieldAccessor] for one field of record type M.
//
// Accessors are built by the constructors in this package and installed into
// a [Fields] table for M. They are immutable after construction.
type Accessor[M Message] struct {
	name  string
	shape Shape

	has  func(M) bool // Singular only.
	size func(M) int  // Repeated and containers only.

	// The getter bridge for this field. Which type it holds is determined by
	// shape; see bridge.go.
	bridge any
}

var _ FieldAccessor = (*Accessor[any])(nil)

// Name implements [FieldAccessor].
func (a *Accessor[M]) Name() string { return a.name }

// Shape implements [FieldAccessor].
func (a *Accessor[M]) Shape() Shape { return a.shape }

// Has implements [FieldAccessor].
func (a *Accessor[M]) Has(m Message) bool {
	if a.has == nil {
		panic(a.violation("Has", ErrShapeMismatch, "want a singular field"))
	}
	return a.has(a.downcast("Has", m))
}

// Len implements [FieldAccessor].
func (a *Accessor[M]) Len(m Message) int {
	if a.size == nil {
		panic(a.violation("Len", ErrShapeMismatch, "want a repeated, list or map field"))
	}
	return a.size(a.downcast("Len", m))
}

// GetUint32 implements [FieldAccessor].
func (a *Accessor[M]) GetUint32(m Message) uint32 {
	return singular[uint32](a, "GetUint32", Uint32Kind, m)
}

// GetUint64 implements [FieldAccessor].
func (a *Accessor[M]) GetUint64(m Message) uint64 {
	return singular[uint64](a, "GetUint64", Uint64Kind, m)
}

// GetInt32 implements [FieldAccessor].
func (a *Accessor[M]) GetInt32(m Message) int32 {
	return singular[int32](a, "GetInt32", Int32Kind, m)
}

// GetInt64 implements [FieldAccessor].
func (a *Accessor[M]) GetInt64(m Message) int64 {
	return singular[int64](a, "GetInt64", Int64Kind, m)
}

// GetFloat32 implements [FieldAccessor].
func (a *Accessor[M]) GetFloat32(m Message) float32 {
	return singular[float32](a, "GetFloat32", Float32Kind, m)
}

// GetFloat64 implements [FieldAccessor].
func (a *Accessor[M]) GetFloat64(m Message) float64 {
	return singular[float64](a, "GetFloat64", Float64Kind, m)
}

// GetBool implements [FieldAccessor].
func (a *Accessor[M]) GetBool(m Message) bool {
	return singular[bool](a, "GetBool", BoolKind, m)
}

// GetString implements [FieldAccessor].
func (a *Accessor[M]) GetString(m Message) string {
	return singular[string](a, "GetString", StringKind, m)
}

// GetBytes implements [FieldAccessor].
func (a *Accessor[M]) GetBytes(m Message) []byte {
	return singular[[]byte](a, "GetBytes", BytesKind, m)
}

// GetRepeatedUint32 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedUint32(m Message) []uint32 {
	return repeated[uint32](a, "GetRepeatedUint32", Uint32Kind, m)
}

// GetRepeatedUint64 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedUint64(m Message) []uint64 {
	return repeated[uint64](a, "GetRepeatedUint64", Uint64Kind, m)
}

// GetRepeatedInt32 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedInt32(m Message) []int32 {
	return repeated[int32](a, "GetRepeatedInt32", Int32Kind, m)
}

// GetRepeatedInt64 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedInt64(m Message) []int64 {
	return repeated[int64](a, "GetRepeatedInt64", Int64Kind, m)
}

// GetRepeatedFloat32 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedFloat32(m Message) []float32 {
	return repeated[float32](a, "GetRepeatedFloat32", Float32Kind, m)
}

// GetRepeatedFloat64 implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedFloat64(m Message) []float64 {
	return repeated[float64](a, "GetRepeatedFloat64", Float64Kind, m)
}

// GetRepeatedBool implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedBool(m Message) []bool {
	return repeated[bool](a, "GetRepeatedBool", BoolKind, m)
}

// GetRepeatedString implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedString(m Message) []string {
	return repeated[string](a, "GetRepeatedString", StringKind, m)
}

// GetRepeatedBytes implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedBytes(m Message) [][]byte {
	return repeated[[]byte](a, "GetRepeatedBytes", BytesKind, m)
}

// GetEnum implements [FieldAccessor].
func (a *Accessor[M]) GetEnum(m Message) protoreflect.EnumValueDescriptor {
	const op = "GetEnum"
	a.expect(op, Shape{SingularField, EnumKind})
	return a.bridge.(enumGetter[M]).enum(a.downcast(op, m)) //nolint:errcheck
}

// GetRepeatedEnum implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedEnum(m Message, n int) protoreflect.EnumValueDescriptor {
	const op = "GetRepeatedEnum"
	a.expect(op, Shape{RepeatedField, EnumKind})
	b := a.bridge.(enumItems[M]) //nolint:errcheck
	r := a.downcast(op, m)
	a.checkIndex(op, n, b.size(r))
	return b.enum(r, n)
}

// GetMessage implements [FieldAccessor].
func (a *Accessor[M]) GetMessage(m Message) Message {
	const op = "GetMessage"
	a.expect(op, Shape{SingularField, MessageKind})
	return a.bridge.(messageGetter[M]).message(a.downcast(op, m)) //nolint:errcheck
}

// GetRepeatedMessage implements [FieldAccessor].
func (a *Accessor[M]) GetRepeatedMessage(m Message, n int) Message {
	const op = "GetRepeatedMessage"
	a.expect(op, Shape{RepeatedField, MessageKind})
	b := a.bridge.(messageItems[M]) //nolint:errcheck
	r := a.downcast(op, m)
	a.checkIndex(op, n, b.size(r))
	return b.message(r, n)
}

// Reflect implements [FieldAccessor].
func (a *Accessor[M]) Reflect(m Message) View {
	switch b := a.bridge.(type) {
	case listBridge[M]:
		return View{list: b.view(a.downcast("Reflect", m)), enum: b.enum()}
	case mapBridge[M]:
		return View{map_: b.view(a.downcast("Reflect", m)), enum: b.enum()}
	default:
		return View{}
	}
}

// Mutable implements [FieldAccessor].
func (a *Accessor[M]) Mutable(m Message) View {
	switch b := a.bridge.(type) {
	case listBridge[M]:
		return View{list: b.mutable(a.downcast("Mutable", m)), enum: b.enum()}
	case mapBridge[M]:
		return View{map_: b.mutable(a.downcast("Mutable", m)), enum: b.enum()}
	default:
		panic(a.violation("Mutable", ErrNotContainer, ""))
	}
}

// singular implements the singular scalar getters.
func singular[V any, M Message](a *Accessor[M], op string, kind Kind, m Message) V {
	a.expect(op, Shape{SingularField, kind})
	return a.bridge.(func(M) V)(a.downcast(op, m)) //nolint:errcheck
}

// repeated implements the repeated scalar getters.
func repeated[V any, M Message](a *Accessor[M], op string, kind Kind, m Message) []V {
	a.expect(op, Shape{RepeatedField, kind})
	return a.bridge.(func(M) []V)(a.downcast(op, m)) //nolint:errcheck
}

// expect panics if this accessor is not bound to want.
func (a *Accessor[M]) expect(op string, want Shape) {
	if a.shape != want {
		panic(a.violation(op, ErrShapeMismatch, "want %v", want))
	}
}

// checkIndex panics if n is not a valid index into a sequence of length size.
func (a *Accessor[M]) checkIndex(op string, n, size int) {
	if uint(n) >= uint(size) {
		panic(a.violation(op, ErrIndexOutOfRange, "index %d, length %d", n, size))
	}
}

// downcast narrows m to the record type this accessor was built for.
//
// This is sound as long as accessors are only reached through the [Fields]
// table of their own record type, which [NewFields] enforces statically. The
// assertion is a single type-word comparison; it exists to turn a broken
// table into a [Violation] rather than into silently wrong results.
func (a *Accessor[M]) downcast(op string, m Message) M {
	r, ok := m.(M)
	if !ok {
		panic(a.violation(op, ErrWrongMessage, "got %T, want %v", m, reflect.TypeFor[M]()))
	}
	return r
}

func (a *Accessor[M]) violation(op string, err error, format string, args ...any) *Violation {
	return newViolation(a.name, op, a.shape, err, format, args...)
}
