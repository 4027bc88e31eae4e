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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"buf.build/go/protoaccess"
	"buf.build/go/protoaccess/internal/debug"
	"buf.build/go/protoaccess/internal/testdata"
)

func TestListView(t *testing.T) {
	t.Parallel()

	tags := testdata.NodeFields.ByName("tags")
	n := &testdata.Node{Tags: []string{"a", "b"}}

	v := tags.Reflect(n)
	require.Equal(t, protoaccess.ListView, v.Kind())
	assert.Nil(t, v.Map())
	assert.Nil(t, v.Enum())
	assert.True(t, v.List().IsValid())
	assert.Equal(t, 2, v.List().Len())
	assert.Equal(t, "b", v.List().Get(1).String())
	assert.Equal(t, 2, tags.Len(n))

	// Two read-only views of the same field observe the same contents.
	w := tags.Reflect(n)
	for i := range v.List().Len() {
		assert.True(t, v.List().Get(i).Equal(w.List().Get(i)))
	}

	// Read-only views reject mutation.
	assertUnsupported(t, func() { v.List().Append(protoreflect.ValueOfString("c")) })
	assertUnsupported(t, func() { v.List().Truncate(0) })
	assertUnsupported(t, func() { v.List().Set(0, protoreflect.ValueOfString("c")) })

	// Mutations through a mutable view are visible through read-only ones.
	mut := tags.Mutable(n).List()
	mut.Append(protoreflect.ValueOfString("c"))
	mut.Set(0, protoreflect.ValueOfString("z"))
	assert.Equal(t, []string{"z", "b", "c"}, n.Tags)
	assert.Equal(t, 3, tags.Reflect(n).List().Len())
	assert.Equal(t, "z", tags.Reflect(n).List().Get(0).String())

	mut.Truncate(1)
	assert.Equal(t, []string{"z"}, n.Tags)
	assert.Equal(t, "", mut.NewElement().String())
	assertUnsupported(t, func() { mut.AppendMutable() })
}

func TestEnumListView(t *testing.T) {
	t.Parallel()

	kinds := testdata.NodeFields.ByName("kinds")
	n := testdata.Fixture("containers")

	v := kinds.Reflect(n)
	require.NotNil(t, v.Enum())
	assert.Equal(t, protoreflect.FullName("google.protobuf.FieldDescriptorProto.Type"), v.Enum().FullName())
	assert.Equal(t, protoreflect.EnumNumber(descriptorpb.FieldDescriptorProto_TYPE_BYTES), v.List().Get(0).Enum())
	assert.Equal(t, protoreflect.EnumNumber(99), v.List().Get(1).Enum())

	kinds.Mutable(n).List().Append(protoreflect.ValueOfEnum(6))
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_FIXED64, n.(*testdata.Node).Kinds[2])
}

func TestMessageListView(t *testing.T) {
	t.Parallel()

	notes := testdata.NodeFields.ByName("notes")
	n := new(testdata.Node)

	mut := notes.Mutable(n).List()
	msg := mut.AppendMutable().Message()
	msg.Set(msg.Descriptor().Fields().ByName("value"), protoreflect.ValueOfString("hello"))
	require.Len(t, n.Notes, 1)
	assert.Equal(t, "hello", n.Notes[0].GetValue())

	mut.Append(protoreflect.ValueOfMessage(wrapperspb.String("world").ProtoReflect()))
	assert.Equal(t, "world", n.Notes[1].GetValue())

	got := notes.Reflect(n).List().Get(0).Message().Interface()
	assert.Same(t, n.Notes[0], got)

	assert.True(t, mut.NewElement().Message().IsValid())
}

func TestMapView(t *testing.T) {
	t.Parallel()

	counts := testdata.NodeFields.ByName("counts")
	n := new(testdata.Node)
	k := protoreflect.ValueOfString("a").MapKey()

	v := counts.Reflect(n)
	require.Equal(t, protoaccess.MapView, v.Kind())
	assert.Nil(t, v.List())
	assert.Zero(t, v.Map().Len())
	assert.False(t, v.Map().Has(k))
	assert.False(t, v.Map().Get(k).IsValid())
	assertUnsupported(t, func() { v.Map().Set(k, protoreflect.ValueOfInt64(1)) })
	assertUnsupported(t, func() { v.Map().Clear(k) })

	// The record's map is allocated on first write.
	mut := counts.Mutable(n).Map()
	assert.Nil(t, n.Counts)
	mut.Set(k, protoreflect.ValueOfInt64(1))
	mut.Set(protoreflect.ValueOfString("b").MapKey(), protoreflect.ValueOfInt64(2))
	assert.Equal(t, map[string]int64{"a": 1, "b": 2}, n.Counts)

	v = counts.Reflect(n)
	assert.Equal(t, 2, v.Map().Len())
	assert.True(t, v.Map().Has(k))
	assert.Equal(t, int64(1), v.Map().Get(k).Int())
	assert.Equal(t, 2, counts.Len(n))

	seen := map[string]int64{}
	v.Map().Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
		seen[k.String()] = v.Int()
		return true
	})
	assert.Equal(t, n.Counts, seen)

	mut.Clear(k)
	assert.Equal(t, map[string]int64{"b": 2}, n.Counts)
	assert.Equal(t, int64(0), mut.NewValue().Int())
	assertUnsupported(t, func() { mut.Mutable(k) })
}

func TestMessageMapView(t *testing.T) {
	t.Parallel()

	limits := testdata.NodeFields.ByName("limits")
	n := new(testdata.Node)
	k := protoreflect.ValueOfInt32(3).MapKey()

	mut := limits.Mutable(n).Map()
	msg := mut.Mutable(k).Message()
	msg.Set(msg.Descriptor().Fields().ByName("value"), protoreflect.ValueOfInt64(30))
	assert.Equal(t, int64(30), n.Limits[3].GetValue())

	// A second call returns the existing entry.
	assert.Same(t, n.Limits[3], mut.Mutable(k).Message().Interface())

	flags := testdata.NodeFields.ByName("flags")
	v := flags.Reflect(testdata.Fixture("containers"))
	require.NotNil(t, v.Enum())
	got := v.Map().Get(protoreflect.ValueOfBool(true).MapKey()).Enum()
	assert.Equal(t, "TYPE_ENUM", string(v.Enum().Values().ByNumber(got).Name()))
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	fields := testdata.NodeFields
	n := testdata.Fixture("containers")

	type snapshot struct {
		name   string
		weight float64
		tags   []any
		kinds  []any
		counts map[any]any
		flags  map[any]any
	}
	list := func(field string) []any {
		var out []any
		l := fields.ByName(field).Reflect(n).List()
		for i := range l.Len() {
			out = append(out, l.Get(i).Interface())
		}
		return out
	}
	entries := func(field string) map[any]any {
		out := make(map[any]any)
		fields.ByName(field).Reflect(n).Map().Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
			out[k.Interface()] = v.Interface()
			return true
		})
		return out
	}
	take := func() snapshot {
		return snapshot{
			name:   fields.ByName("name").GetString(n),
			weight: fields.ByName("weight").GetFloat64(n),
			tags:   list("tags"),
			kinds:  list("kinds"),
			counts: entries("counts"),
			flags:  entries("flags"),
		}
	}

	want := take()
	require.Len(t, want.tags, 2)
	require.Len(t, want.counts, 2)

	const readers = 8
	got := make([]snapshot, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = take()
		}()
	}
	wg.Wait()

	for _, s := range got {
		assert.Equal(t, want, s)
	}
}

func TestTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, protoaccess.BytesKind, protoaccess.Bytes.Kind())
	assert.Equal(t, []byte("x"), protoaccess.Bytes.Unwrap(protoaccess.Bytes.ValueOf([]byte("x"))))
	assert.Nil(t, protoaccess.Uint64.Enum())

	enum := protoaccess.EnumType[testdata.FieldType]()
	assert.Equal(t, protoaccess.EnumKind, enum.Kind())
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_INT32, enum.Unwrap(enum.ValueOf(descriptorpb.FieldDescriptorProto_TYPE_INT32)))
	assert.Equal(t, testdata.FieldType(0), enum.New())

	msg := protoaccess.MessageType[*wrapperspb.BytesValue]()
	assert.Equal(t, protoaccess.MessageKind, msg.Kind())
	fresh := msg.New()
	require.NotNil(t, fresh)
	fresh.Value = []byte("y")
	assert.Same(t, fresh, msg.Unwrap(msg.ValueOf(fresh)))

	assert.PanicsWithValue(t, "type mismatch: cannot convert string to int32", func() {
		protoaccess.Int32.Unwrap(protoreflect.ValueOfString("x"))
	})
}

func assertUnsupported(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		err, _ := recover().(error)
		assert.ErrorIs(t, err, debug.ErrUnsupported)
	}()
	f()
}
