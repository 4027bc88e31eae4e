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

package testdata

import (
	"embed"
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gopkg.in/yaml.v3"

	"buf.build/go/protoaccess"
)

//go:embed *.yaml
var corpus embed.FS

// Fixtures are named record constructors. Each call returns a fresh record,
// so tests may mutate what they get.
var Fixtures = map[string]func() protoaccess.Message{
	"scalars-empty": func() protoaccess.Message {
		return new(Scalars)
	},
	"scalars": func() protoaccess.Message {
		return &Scalars{
			U32: proto.Uint32(1),
			U64: proto.Uint64(2),
			I32: proto.Int32(-3),
			I64: proto.Int64(-4),
			F32: proto.Float32(1.5),
			F64: proto.Float64(0.25),
			B:   proto.Bool(true),
			S:   proto.String(`hi "there"`),
			Raw: []byte("\x00ab"),
		}
	},
	"repeated": func() protoaccess.Message {
		return &Repeated{
			U32: []uint32{1, 2},
			F64: []float64{1.5},
			B:   []bool{true, false},
			S:   []string{"a", "b"},
			Raw: [][]byte{[]byte("x")},
		}
	},
	"node": func() protoaccess.Message {
		return &Node{
			ID:   proto.Int32(42),
			Name: "root",
			Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
		}
	},
	"undeclared": func() protoaccess.Message {
		return &Node{Type: FieldType(99).Enum()}
	},
	"tree": func() protoaccess.Message {
		return &Node{
			ID:    proto.Int32(1),
			Name:  "a",
			Child: &Node{ID: proto.Int32(2)},
			Children: []*Node{
				{Name: "c1"},
				{ID: proto.Int32(3), Types: []FieldType{
					descriptorpb.FieldDescriptorProto_TYPE_INT32,
					descriptorpb.FieldDescriptorProto_TYPE_BOOL,
				}},
			},
		}
	},
	"containers": func() protoaccess.Message {
		return &Node{
			Name: "m",
			Tags: []string{"x", "y"},
			Kinds: []FieldType{
				descriptorpb.FieldDescriptorProto_TYPE_BYTES,
				99,
			},
			Counts: map[string]int64{"b": 2, "a": 1},
			Notes:  []*wrapperspb.StringValue{wrapperspb.String("n1")},
			Limits: map[int32]*wrapperspb.Int64Value{
				7:  wrapperspb.Int64(70),
				-1: {},
			},
			Flags: map[bool]FieldType{
				true:  descriptorpb.FieldDescriptorProto_TYPE_ENUM,
				false: descriptorpb.FieldDescriptorProto_TYPE_GROUP,
			},
		}
	},
}

// Fixture returns a fresh record for the named fixture.
//
// Panics if there is no such fixture.
func Fixture(name string) protoaccess.Message {
	f, ok := Fixtures[name]
	if !ok {
		panic(fmt.Sprintf("testdata: unknown fixture %q", name))
	}
	return f()
}

// FixtureNames returns the names of all fixtures, sorted.
func FixtureNames() []string {
	return slices.Sorted(maps.Keys(Fixtures))
}

// FormatCase is one golden from the formatting corpus.
type FormatCase struct {
	Name string `yaml:"-"`

	Fixture string `yaml:"fixture"`
	Indent  string `yaml:"indent"`
	Redact  bool   `yaml:"redact"`
	Want    string `yaml:"want"`
}

// FormatCases loads the formatting corpus, in file order.
func FormatCases(t testing.TB) []FormatCase {
	t.Helper()

	data, err := corpus.ReadFile("format.yaml")
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Content, 1)

	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind, "corpus must be a mapping")

	cases := make([]FormatCase, 0, len(root.Content)/2)
	for i := 0; i < len(root.Content); i += 2 {
		var c FormatCase
		require.NoError(t, root.Content[i+1].Decode(&c), "decoding %s", root.Content[i].Value)
		c.Name = root.Content[i].Value
		require.Contains(t, Fixtures, c.Fixture, "case %s", c.Name)
		cases = append(cases, c)
	}
	return cases
}
