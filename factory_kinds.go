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

// Per-kind constructors, in the form generated code calls them. Each one is a
// thin wrapper over [Singular], [SingularEnum], [SingularMessage], [Repeated],
// [RepeatedEnum] or [RepeatedMessage].
//
// NewSingular* constructors are for fields with explicit presence; the has
// predicate reports whether the field is set. NewImplicit* constructors are
// for fields that are always present.

// NewSingularUint32 returns an accessor for a singular uint32 field with explicit
// presence.
func NewSingularUint32[M Message](name string, has func(M) bool, get func(M) uint32) *Accessor[M] {
	return Singular(name, Uint32, Explicit(has), get)
}

// NewImplicitUint32 returns an accessor for a singular uint32 field that is always
// present.
func NewImplicitUint32[M Message](name string, get func(M) uint32) *Accessor[M] {
	return Singular(name, Uint32, Implicit[M](), get)
}

// NewSingularUint64 returns an accessor for a singular uint64 field with explicit
// presence.
func NewSingularUint64[M Message](name string, has func(M) bool, get func(M) uint64) *Accessor[M] {
	return Singular(name, Uint64, Explicit(has), get)
}

// NewImplicitUint64 returns an accessor for a singular uint64 field that is always
// present.
func NewImplicitUint64[M Message](name string, get func(M) uint64) *Accessor[M] {
	return Singular(name, Uint64, Implicit[M](), get)
}

// NewSingularInt32 returns an accessor for a singular int32 field with explicit
// presence.
func NewSingularInt32[M Message](name string, has func(M) bool, get func(M) int32) *Accessor[M] {
	return Singular(name, Int32, Explicit(has), get)
}

// NewImplicitInt32 returns an accessor for a singular int32 field that is always
// present.
func NewImplicitInt32[M Message](name string, get func(M) int32) *Accessor[M] {
	return Singular(name, Int32, Implicit[M](), get)
}

// NewSingularInt64 returns an accessor for a singular int64 field with explicit
// presence.
func NewSingularInt64[M Message](name string, has func(M) bool, get func(M) int64) *Accessor[M] {
	return Singular(name, Int64, Explicit(has), get)
}

// NewImplicitInt64 returns an accessor for a singular int64 field that is always
// present.
func NewImplicitInt64[M Message](name string, get func(M) int64) *Accessor[M] {
	return Singular(name, Int64, Implicit[M](), get)
}

// NewSingularFloat32 returns an accessor for a singular float32 field with explicit
// presence.
func NewSingularFloat32[M Message](name string, has func(M) bool, get func(M) float32) *Accessor[M] {
	return Singular(name, Float32, Explicit(has), get)
}

// NewImplicitFloat32 returns an accessor for a singular float32 field that is always
// present.
func NewImplicitFloat32[M Message](name string, get func(M) float32) *Accessor[M] {
	return Singular(name, Float32, Implicit[M](), get)
}

// NewSingularFloat64 returns an accessor for a singular float64 field with explicit
// presence.
func NewSingularFloat64[M Message](name string, has func(M) bool, get func(M) float64) *Accessor[M] {
	return Singular(name, Float64, Explicit(has), get)
}

// NewImplicitFloat64 returns an accessor for a singular float64 field that is always
// present.
func NewImplicitFloat64[M Message](name string, get func(M) float64) *Accessor[M] {
	return Singular(name, Float64, Implicit[M](), get)
}

// NewSingularBool returns an accessor for a singular bool field with explicit
// presence.
func NewSingularBool[M Message](name string, has func(M) bool, get func(M) bool) *Accessor[M] {
	return Singular(name, Bool, Explicit(has), get)
}

// NewImplicitBool returns an accessor for a singular bool field that is always
// present.
func NewImplicitBool[M Message](name string, get func(M) bool) *Accessor[M] {
	return Singular(name, Bool, Implicit[M](), get)
}

// NewSingularString returns an accessor for a singular string field with explicit
// presence.
func NewSingularString[M Message](name string, has func(M) bool, get func(M) string) *Accessor[M] {
	return Singular(name, String, Explicit(has), get)
}

// NewImplicitString returns an accessor for a singular string field that is always
// present.
func NewImplicitString[M Message](name string, get func(M) string) *Accessor[M] {
	return Singular(name, String, Implicit[M](), get)
}

// NewSingularBytes returns an accessor for a singular []byte field with explicit
// presence.
func NewSingularBytes[M Message](name string, has func(M) bool, get func(M) []byte) *Accessor[M] {
	return Singular(name, Bytes, Explicit(has), get)
}

// NewImplicitBytes returns an accessor for a singular []byte field that is always
// present.
func NewImplicitBytes[M Message](name string, get func(M) []byte) *Accessor[M] {
	return Singular(name, Bytes, Implicit[M](), get)
}

// NewSingularEnum returns an accessor for a singular enum field with explicit
// presence.
func NewSingularEnum[M Message, E Enum](name string, has func(M) bool, get func(M) E) *Accessor[M] {
	return SingularEnum(name, Explicit(has), get)
}

// NewImplicitEnum returns an accessor for a singular enum field that is always
// present.
func NewImplicitEnum[M Message, E Enum](name string, get func(M) E) *Accessor[M] {
	return SingularEnum(name, Implicit[M](), get)
}

// NewSingularMessage returns an accessor for a singular message field.
func NewSingularMessage[M Message, N Message](name string, has func(M) bool, get func(M) N) *Accessor[M] {
	return SingularMessage(name, Explicit(has), get)
}

// NewRepeatedUint32 returns an accessor for a repeated uint32 field.
func NewRepeatedUint32[M Message](name string, get func(M) []uint32) *Accessor[M] {
	return Repeated(name, Uint32, get)
}

// NewRepeatedUint64 returns an accessor for a repeated uint64 field.
func NewRepeatedUint64[M Message](name string, get func(M) []uint64) *Accessor[M] {
	return Repeated(name, Uint64, get)
}

// NewRepeatedInt32 returns an accessor for a repeated int32 field.
func NewRepeatedInt32[M Message](name string, get func(M) []int32) *Accessor[M] {
	return Repeated(name, Int32, get)
}

// NewRepeatedInt64 returns an accessor for a repeated int64 field.
func NewRepeatedInt64[M Message](name string, get func(M) []int64) *Accessor[M] {
	return Repeated(name, Int64, get)
}

// NewRepeatedFloat32 returns an accessor for a repeated float32 field.
func NewRepeatedFloat32[M Message](name string, get func(M) []float32) *Accessor[M] {
	return Repeated(name, Float32, get)
}

// NewRepeatedFloat64 returns an accessor for a repeated float64 field.
func NewRepeatedFloat64[M Message](name string, get func(M) []float64) *Accessor[M] {
	return Repeated(name, Float64, get)
}

// NewRepeatedBool returns an accessor for a repeated bool field.
func NewRepeatedBool[M Message](name string, get func(M) []bool) *Accessor[M] {
	return Repeated(name, Bool, get)
}

// NewRepeatedString returns an accessor for a repeated string field.
func NewRepeatedString[M Message](name string, get func(M) []string) *Accessor[M] {
	return Repeated(name, String, get)
}

// NewRepeatedBytes returns an accessor for a repeated []byte field.
func NewRepeatedBytes[M Message](name string, get func(M) [][]byte) *Accessor[M] {
	return Repeated(name, Bytes, get)
}

// NewRepeatedEnum returns an accessor for a repeated enum field.
func NewRepeatedEnum[M Message, E Enum](name string, get func(M) []E) *Accessor[M] {
	return RepeatedEnum(name, get)
}

// NewRepeatedMessage returns an accessor for a repeated message field.
func NewRepeatedMessage[M Message, N Message](name string, get func(M) []N) *Accessor[M] {
	return RepeatedMessage(name, get)
}
