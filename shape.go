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

import "fmt"

// Kind is the value kind of a field: the Go representation an accessor hands
// out for one element of it.
type Kind uint8

const (
	invalidKind Kind = iota

	Uint32Kind
	Uint64Kind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	BoolKind
	StringKind
	BytesKind

	// EnumKind values are handed out as [protoreflect.EnumValueDescriptor]s,
	// not as raw numbers.
	EnumKind
	// MessageKind values are handed out as [Message]s.
	MessageKind
)

var kindNames = [...]string{
	invalidKind: "<invalid>",
	Uint32Kind:  "uint32",
	Uint64Kind:  "uint64",
	Int32Kind:   "int32",
	Int64Kind:   "int64",
	Float32Kind: "float32",
	Float64Kind: "float64",
	BoolKind:    "bool",
	StringKind:  "string",
	BytesKind:   "bytes",
	EnumKind:    "enum",
	MessageKind: "message",
}

// IsValid returns whether this is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > invalidKind && int(k) < len(kindNames)
}

// IsScalar returns whether values of this kind are neither enums nor
// messages.
func (k Kind) IsScalar() bool {
	return k.IsValid() && k < EnumKind
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Cardinality describes how a field's storage is shaped.
type Cardinality uint8

const (
	invalidCardinality Cardinality = iota

	// SingularField fields hold one value, read through a getter and a presence
	// predicate.
	SingularField
	// RepeatedField fields hold a sequence, read through a getter returning a
	// borrowed slice.
	RepeatedField
	// ListField fields are repeated fields exposed as a mutable container view.
	ListField
	// MapField fields are exposed as a mutable associative container view.
	MapField
)

var cardinalityNames = [...]string{
	invalidCardinality: "<invalid>",
	SingularField:      "singular",
	RepeatedField:      "repeated",
	ListField:          "list",
	MapField:           "map",
}

// String implements [fmt.Stringer].
func (c Cardinality) String() string {
	if int(c) >= len(cardinalityNames) {
		return fmt.Sprintf("Cardinality(%d)", uint8(c))
	}
	return cardinalityNames[c]
}

// IsContainer returns whether fields of this cardinality are reached through
// a [View] rather than through getters.
func (c Cardinality) IsContainer() bool {
	return c == ListField || c == MapField
}

// Shape is the representation category of a field. Every accessor is bound to
// exactly one shape when it is constructed, and only the methods matching that
// shape may be called on it.
//
// For [MapField] shapes, Kind is the kind of the map's values.
type Shape struct {
	Cardinality Cardinality
	Kind        Kind
}

// IsValid returns whether this shape can be bound to an accessor.
func (s Shape) IsValid() bool {
	switch s.Cardinality {
	case SingularField, RepeatedField, ListField, MapField:
		return s.Kind.IsValid()
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (s Shape) String() string {
	if s.Cardinality == MapField {
		return fmt.Sprintf("map<_, %v>", s.Kind)
	}
	return fmt.Sprintf("%v %v", s.Cardinality, s.Kind)
}
