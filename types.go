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
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess/internal/xprotoreflect"
)

// Type is a value-kind descriptor: it describes how a Go type V is handed out
// by accessors, and how container views move a V in and out of a
// [protoreflect.Value].
//
// Types are immutable and safe to share. Use the predeclared descriptors for
// scalars, and [EnumType] and [MessageType] for generated enums and messages.
type Type[V any] struct {
	kind  Kind
	enum  protoreflect.EnumDescriptor // EnumKind only.
	value func(V) protoreflect.Value
	from  func(protoreflect.Value) V
	new   func() V
}

// The predeclared scalar types.
var (
	Uint32  = scalarType[uint32](Uint32Kind)
	Uint64  = scalarType[uint64](Uint64Kind)
	Int32   = scalarType[int32](Int32Kind)
	Int64   = scalarType[int64](Int64Kind)
	Float32 = scalarType[float32](Float32Kind)
	Float64 = scalarType[float64](Float64Kind)
	Bool    = scalarType[bool](BoolKind)
	String  = scalarType[string](StringKind)
	Bytes   = scalarType[[]byte](BytesKind)
)

// EnumType returns the value-kind descriptor for a generated enum. Its values
// are carried in views as [protoreflect.EnumNumber]s.
func EnumType[E Enum]() Type[E] {
	var z E
	return Type[E]{
		kind:  EnumKind,
		enum:  z.Descriptor(),
		value: func(e E) protoreflect.Value { return protoreflect.ValueOfEnum(e.Number()) },
		from:  func(v protoreflect.Value) E { return E(v.Enum()) },
		new:   func() E { return 0 },
	}
}

// MessageType returns the value-kind descriptor for a generated message. Views
// carry its values as [protoreflect.Message]s.
func MessageType[N proto.Message]() Type[N] {
	return Type[N]{
		kind: MessageKind,
		value: func(n N) protoreflect.Value {
			return protoreflect.ValueOfMessage(n.ProtoReflect())
		},
		from: xprotoreflect.GetMessage[N],
		new: func() N {
			// Generated messages support ProtoReflect on a nil receiver.
			var z N
			return z.ProtoReflect().Type().New().Interface().(N) //nolint:errcheck
		},
	}
}

func scalarType[V xprotoreflect.Scalar](k Kind) Type[V] {
	return Type[V]{
		kind:  k,
		value: func(v V) protoreflect.Value { return protoreflect.ValueOf(v) },
		from:  xprotoreflect.Get[V],
		new: func() V {
			var z V
			return z
		},
	}
}

// Kind returns the value kind this type descriptor describes.
func (t Type[V]) Kind() Kind { return t.kind }

// Enum returns the descriptor of the enum this type describes, or nil if it
// is not an enum type.
func (t Type[V]) Enum() protoreflect.EnumDescriptor { return t.enum }

// ValueOf converts v into a [protoreflect.Value].
func (t Type[V]) ValueOf(v V) protoreflect.Value { return t.value(v) }

// Unwrap converts a [protoreflect.Value] back into a V.
//
// Panics if v does not hold a value of this type.
func (t Type[V]) Unwrap(v protoreflect.Value) V { return t.from(v) }

// New returns a new, empty V. For messages, this is a freshly allocated,
// mutable message.
func (t Type[V]) New() V { return t.new() }

func (t Type[V]) isValid() bool { return t.kind.IsValid() && t.value != nil }
