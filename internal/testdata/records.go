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

// Package testdata provides hand-written records, shaped the way generated
// code shapes them, together with their registered field tables. It is shared
// by the tests of every package in this module.
package testdata

import (
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"buf.build/go/protoaccess"
)

// FieldType is a real generated enum, used wherever a record needs one.
type FieldType = descriptorpb.FieldDescriptorProto_Type

// Scalars has one explicit-presence field of every scalar kind.
type Scalars struct {
	U32 *uint32
	U64 *uint64
	I32 *int32
	I64 *int64
	F32 *float32
	F64 *float64
	B   *bool
	S   *string
	Raw []byte
}

func (x *Scalars) GetU32() uint32 {
	if x != nil && x.U32 != nil {
		return *x.U32
	}
	return 0
}

func (x *Scalars) GetU64() uint64 {
	if x != nil && x.U64 != nil {
		return *x.U64
	}
	return 0
}

func (x *Scalars) GetI32() int32 {
	if x != nil && x.I32 != nil {
		return *x.I32
	}
	return 0
}

func (x *Scalars) GetI64() int64 {
	if x != nil && x.I64 != nil {
		return *x.I64
	}
	return 0
}

func (x *Scalars) GetF32() float32 {
	if x != nil && x.F32 != nil {
		return *x.F32
	}
	return 0
}

func (x *Scalars) GetF64() float64 {
	if x != nil && x.F64 != nil {
		return *x.F64
	}
	return 0
}

func (x *Scalars) GetB() bool {
	if x != nil && x.B != nil {
		return *x.B
	}
	return false
}

func (x *Scalars) GetS() string {
	if x != nil && x.S != nil {
		return *x.S
	}
	return ""
}

func (x *Scalars) GetRaw() []byte {
	if x != nil {
		return x.Raw
	}
	return nil
}

// Repeated has one repeated field of every scalar kind.
type Repeated struct {
	U32 []uint32
	U64 []uint64
	I32 []int32
	I64 []int64
	F32 []float32
	F64 []float64
	B   []bool
	S   []string
	Raw [][]byte
}

// Node exercises every other shape: implicit presence, enums, submessages,
// and container views over scalar, enum and message elements.
type Node struct {
	ID       *int32
	Name     string
	Type     *FieldType
	Weight   float64
	Child    *Node
	Children []*Node
	Types    []FieldType
	Tags     []string
	Kinds    []FieldType
	Counts   map[string]int64
	Notes    []*wrapperspb.StringValue
	Limits   map[int32]*wrapperspb.Int64Value
	Flags    map[bool]FieldType
}

func (x *Node) GetID() int32 {
	if x != nil && x.ID != nil {
		return *x.ID
	}
	return 0
}

func (x *Node) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Node) GetType() FieldType {
	if x != nil && x.Type != nil {
		return *x.Type
	}
	return descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
}

func (x *Node) GetWeight() float64 {
	if x != nil {
		return x.Weight
	}
	return 0
}

func (x *Node) GetChild() *Node {
	if x != nil {
		return x.Child
	}
	return nil
}

func (x *Node) GetChildren() []*Node {
	if x != nil {
		return x.Children
	}
	return nil
}

// Field tables, registered on init.
var (
	ScalarsFields = protoaccess.MustRegister(protoaccess.NewFields(
		protoaccess.NewSingularUint32("u32", func(x *Scalars) bool { return x.U32 != nil }, (*Scalars).GetU32),
		protoaccess.NewSingularUint64("u64", func(x *Scalars) bool { return x.U64 != nil }, (*Scalars).GetU64),
		protoaccess.NewSingularInt32("i32", func(x *Scalars) bool { return x.I32 != nil }, (*Scalars).GetI32),
		protoaccess.NewSingularInt64("i64", func(x *Scalars) bool { return x.I64 != nil }, (*Scalars).GetI64),
		protoaccess.NewSingularFloat32("f32", func(x *Scalars) bool { return x.F32 != nil }, (*Scalars).GetF32),
		protoaccess.NewSingularFloat64("f64", func(x *Scalars) bool { return x.F64 != nil }, (*Scalars).GetF64),
		protoaccess.NewSingularBool("b", func(x *Scalars) bool { return x.B != nil }, (*Scalars).GetB),
		protoaccess.NewSingularString("s", func(x *Scalars) bool { return x.S != nil }, (*Scalars).GetS),
		protoaccess.NewSingularBytes("raw", func(x *Scalars) bool { return x.Raw != nil }, (*Scalars).GetRaw),
	))

	RepeatedFields = protoaccess.MustRegister(protoaccess.NewFields(
		protoaccess.NewRepeatedUint32("u32", func(x *Repeated) []uint32 { return x.U32 }),
		protoaccess.NewRepeatedUint64("u64", func(x *Repeated) []uint64 { return x.U64 }),
		protoaccess.NewRepeatedInt32("i32", func(x *Repeated) []int32 { return x.I32 }),
		protoaccess.NewRepeatedInt64("i64", func(x *Repeated) []int64 { return x.I64 }),
		protoaccess.NewRepeatedFloat32("f32", func(x *Repeated) []float32 { return x.F32 }),
		protoaccess.NewRepeatedFloat64("f64", func(x *Repeated) []float64 { return x.F64 }),
		protoaccess.NewRepeatedBool("b", func(x *Repeated) []bool { return x.B }),
		protoaccess.NewRepeatedString("s", func(x *Repeated) []string { return x.S }),
		protoaccess.NewRepeatedBytes("raw", func(x *Repeated) [][]byte { return x.Raw }),
	))

	NodeFields = protoaccess.MustRegister(protoaccess.NewFields(
		protoaccess.NewSingularInt32("id", func(x *Node) bool { return x.ID != nil }, (*Node).GetID),
		protoaccess.NewImplicitString("name", (*Node).GetName),
		protoaccess.NewSingularEnum("type", func(x *Node) bool { return x.Type != nil }, (*Node).GetType),
		protoaccess.Singular("weight", protoaccess.Float64, protoaccess.Implicit[*Node](), (*Node).GetWeight),
		protoaccess.NewSingularMessage("child", func(x *Node) bool { return x.Child != nil }, (*Node).GetChild),
		protoaccess.NewRepeatedMessage("children", (*Node).GetChildren),
		protoaccess.NewRepeatedEnum("types", func(x *Node) []FieldType { return x.Types }),
		protoaccess.NewList("tags", protoaccess.String,
			func(x *Node) []string { return x.Tags },
			func(x *Node) *[]string { return &x.Tags }),
		protoaccess.NewList("kinds", protoaccess.EnumType[FieldType](),
			func(x *Node) []FieldType { return x.Kinds },
			func(x *Node) *[]FieldType { return &x.Kinds }),
		protoaccess.NewMap("counts", protoaccess.String, protoaccess.Int64,
			func(x *Node) map[string]int64 { return x.Counts },
			func(x *Node) *map[string]int64 { return &x.Counts }),
		protoaccess.NewList("notes", protoaccess.MessageType[*wrapperspb.StringValue](),
			func(x *Node) []*wrapperspb.StringValue { return x.Notes },
			func(x *Node) *[]*wrapperspb.StringValue { return &x.Notes }),
		protoaccess.NewMap("limits", protoaccess.Int32, protoaccess.MessageType[*wrapperspb.Int64Value](),
			func(x *Node) map[int32]*wrapperspb.Int64Value { return x.Limits },
			func(x *Node) *map[int32]*wrapperspb.Int64Value { return &x.Limits }),
		protoaccess.NewMap("flags", protoaccess.Bool, protoaccess.EnumType[FieldType](),
			func(x *Node) map[bool]FieldType { return x.Flags },
			func(x *Node) *map[bool]FieldType { return &x.Flags }),
	))
)
