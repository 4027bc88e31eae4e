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

package protoaccess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/protoaccess"
)

func TestShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape protoaccess.Shape
		want  string
		valid bool
	}{
		{protoaccess.Shape{Cardinality: protoaccess.SingularField, Kind: protoaccess.Uint32Kind}, "singular uint32", true},
		{protoaccess.Shape{Cardinality: protoaccess.RepeatedField, Kind: protoaccess.EnumKind}, "repeated enum", true},
		{protoaccess.Shape{Cardinality: protoaccess.ListField, Kind: protoaccess.MessageKind}, "list message", true},
		{protoaccess.Shape{Cardinality: protoaccess.MapField, Kind: protoaccess.BytesKind}, "map<_, bytes>", true},
		{protoaccess.Shape{Kind: protoaccess.StringKind}, "<invalid> string", false},
		{protoaccess.Shape{Cardinality: protoaccess.SingularField}, "singular <invalid>", false},
		{protoaccess.Shape{Cardinality: protoaccess.SingularField, Kind: 42}, "singular Kind(42)", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.shape.String())
			assert.Equal(t, tt.valid, tt.shape.IsValid())
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	scalars := []protoaccess.Kind{
		protoaccess.Uint32Kind, protoaccess.Uint64Kind,
		protoaccess.Int32Kind, protoaccess.Int64Kind,
		protoaccess.Float32Kind, protoaccess.Float64Kind,
		protoaccess.BoolKind, protoaccess.StringKind, protoaccess.BytesKind,
	}
	for _, k := range scalars {
		assert.True(t, k.IsValid(), "%v", k)
		assert.True(t, k.IsScalar(), "%v", k)
	}

	for _, k := range []protoaccess.Kind{protoaccess.EnumKind, protoaccess.MessageKind} {
		assert.True(t, k.IsValid(), "%v", k)
		assert.False(t, k.IsScalar(), "%v", k)
	}

	var zero protoaccess.Kind
	assert.False(t, zero.IsValid())
	assert.False(t, zero.IsScalar())
}

func TestCardinality(t *testing.T) {
	t.Parallel()

	assert.False(t, protoaccess.SingularField.IsContainer())
	assert.False(t, protoaccess.RepeatedField.IsContainer())
	assert.True(t, protoaccess.ListField.IsContainer())
	assert.True(t, protoaccess.MapField.IsContainer())
	assert.Equal(t, "Cardinality(9)", protoaccess.Cardinality(9).String())
}
