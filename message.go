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

// Message is the abstract record capability accessors operate on.
//
// Any Go type can be a record. Generated code conventionally uses pointers to
// structs, and each [Accessor] only accepts values of the exact record type it
// was built for.
type Message any

// Enum is the constraint satisfied by generated enum types: an int32-backed
// type that knows its own descriptor.
//
// All enums generated by protoc-gen-go satisfy it.
type Enum interface {
	~int32
	protoreflect.Enum
}

// enumValue resolves e to its process-wide value descriptor.
//
// If e's number is not declared by its enum, which can happen for open enums,
// this returns a placeholder that still reports the number and parent enum.
func enumValue[E Enum](e E) protoreflect.EnumValueDescriptor {
	enum := e.Descriptor()
	if v := enum.Values().ByNumber(e.Number()); v != nil {
		return v
	}
	return undeclared{enum: enum, number: e.Number()}
}

// undeclared is the value descriptor of an enum number that its enum does not
// declare. Only the number and the parent are meaningful; IsPlaceholder
// reports true.
type undeclared struct {
	protoreflect.EnumValueDescriptor // Nil; satisfies the unexported methods.

	enum   protoreflect.EnumDescriptor
	number protoreflect.EnumNumber
}

func (v undeclared) ParentFile() protoreflect.FileDescriptor { return v.enum.ParentFile() }
func (v undeclared) Parent() protoreflect.Descriptor { return v.enum }
func (v undeclared) Index() int { return -1 }
func (v undeclared) Syntax() protoreflect.Syntax { return v.enum.Syntax() }
func (v undeclared) Name() protoreflect.Name { return "" }
func (v undeclared) FullName() protoreflect.FullName { return v.enum.FullName() }
func (v undeclared) IsPlaceholder() bool { return true }
func (v undeclared) Options() protoreflect.ProtoMessage { return nil }
func (v undeclared) Number() protoreflect.EnumNumber { return v.number }
