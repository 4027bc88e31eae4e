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

// Package protoaccess is the reflection layer for generated record types: it
// lets schema-agnostic algorithms, such as text formatting, structural
// equality and merging, read and mutate any field of any record through one
// uniform interface, [FieldAccessor].
//
// Generated code builds one [Accessor] per declared field from plain getter
// functions, using either the generic constructors ([Singular], [Repeated],
// [NewList], [NewMap] and their enum and message variants) or the per-kind
// wrappers such as [NewSingularInt32]. The accessors for a record type are
// gathered into a [Fields] table with [NewFields], and usually installed with
// [MustRegister] so that algorithms can find them with [Lookup].
//
// # Shapes
//
// Every accessor is bound to one [Shape] when it is built. Calling a method
// that does not match that shape, such as GetInt32 on a string field, or
// calling any method with a record of the wrong type, is a bug in generated
// code and panics with a [*Violation]. Absence is not an error: it is reported
// by [FieldAccessor.Has].
//
// # Containers
//
// Fields built with [NewList] and [NewMap] are reached through a [View], which
// wraps the record's slice or map as a [protoreflect.List] or
// [protoreflect.Map] without copying it. This is what allows generic code to
// clear, append to and iterate over containers without knowing their element
// type.
//
// # Concurrency
//
// Accessors and field tables are immutable, and safe to use from any number of
// goroutines. Records are not synchronized: callers must not hold a mutable
// view of a field while any other view of the same record is in use.
package protoaccess
