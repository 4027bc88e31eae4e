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

	"buf.build/go/protoaccess/internal/debug"
	"buf.build/go/protoaccess/internal/empty"
)

// ViewKind discriminates a [View].
type ViewKind uint8

const (
	// NotContainer views carry nothing: the field must be read through the
	// scalar, enum and message getters instead.
	NotContainer ViewKind = iota
	// ListView views carry a [protoreflect.List].
	ListView
	// MapView views carry a [protoreflect.Map].
	MapView
)

// View is a reflected view of one field of one record: either a list, a map,
// or nothing at all.
//
// Views borrow the record's storage; they never copy it. A view obtained from
// [FieldAccessor.Reflect] is read-only and panics on mutation. A view obtained
// from [FieldAccessor.Mutable] writes through to the record.
type View struct {
	list protoreflect.List
	map_ protoreflect.Map
	enum protoreflect.EnumDescriptor
}

// Kind returns which kind of view this is.
func (v View) Kind() ViewKind {
	switch {
	case v.list != nil:
		return ListView
	case v.map_ != nil:
		return MapView
	default:
		return NotContainer
	}
}

// List returns the list this view carries, or nil if it is not a list view.
func (v View) List() protoreflect.List { return v.list }

// Map returns the map this view carries, or nil if it is not a map view.
func (v View) Map() protoreflect.Map { return v.map_ }

// Enum returns the descriptor of the enum this view's elements (or, for maps,
// values) belong to, or nil if they are not enums.
//
// Views carry enums as bare [protoreflect.EnumNumber]s; this is what gives
// them a name.
func (v View) Enum() protoreflect.EnumDescriptor { return v.enum }

// listView is a read-only [protoreflect.List] over a borrowed slice.
type listView[V any] struct {
	empty.List
	ty  Type[V]
	raw []V
}

// IsValid implements [protoreflect.List].
func (l *listView[_]) IsValid() bool { return l != nil }

// Len implements [protoreflect.List].
func (l *listView[_]) Len() int { return len(l.raw) }

// Get implements [protoreflect.List].
func (l *listView[V]) Get(n int) protoreflect.Value {
	return l.ty.ValueOf(l.raw[n])
}

// mutableList is a [protoreflect.List] that writes through to a slice owned
// by a record.
type mutableList[V any] struct {
	ty  Type[V]
	raw *[]V
}

var _ protoreflect.List = (*mutableList[int32])(nil)

// IsValid implements [protoreflect.List].
func (l *mutableList[_]) IsValid() bool { return l != nil }

// Len implements [protoreflect.List].
func (l *mutableList[_]) Len() int { return len(*l.raw) }

// Get implements [protoreflect.List].
func (l *mutableList[V]) Get(n int) protoreflect.Value {
	return l.ty.ValueOf((*l.raw)[n])
}

// Set implements [protoreflect.List].
func (l *mutableList[V]) Set(n int, v protoreflect.Value) {
	(*l.raw)[n] = l.ty.Unwrap(v)
}

// Append implements [protoreflect.List].
func (l *mutableList[V]) Append(v protoreflect.Value) {
	*l.raw = append(*l.raw, l.ty.Unwrap(v))
}

// AppendMutable implements [protoreflect.List].
func (l *mutableList[V]) AppendMutable() protoreflect.Value {
	if l.ty.Kind() != MessageKind {
		panic(debug.Unsupported())
	}
	e := l.ty.New()
	*l.raw = append(*l.raw, e)
	return l.ty.ValueOf(e)
}

// NewElement implements [protoreflect.List].
func (l *mutableList[V]) NewElement() protoreflect.Value {
	return l.ty.ValueOf(l.ty.New())
}

// Truncate implements [protoreflect.List].
func (l *mutableList[V]) Truncate(n int) {
	clear((*l.raw)[n:]) // Drop references held by the tail.
	*l.raw = (*l.raw)[:n]
}

// mapView is a read-only [protoreflect.Map] over a borrowed map.
type mapView[K comparable, V any] struct {
	empty.Map
	key   Type[K]
	value Type[V]
	raw   map[K]V
}

// IsValid implements [protoreflect.Map].
func (m *mapView[_, _]) IsValid() bool { return m != nil }

// Len implements [protoreflect.Map].
func (m *mapView[_, _]) Len() int { return len(m.raw) }

// Has implements [protoreflect.Map].
func (m *mapView[K, V]) Has(k protoreflect.MapKey) bool {
	_, ok := m.raw[m.key.Unwrap(k.Value())]
	return ok
}

// Get implements [protoreflect.Map].
func (m *mapView[K, V]) Get(k protoreflect.MapKey) protoreflect.Value {
	return getMapValue(m.raw, m.key, m.value, k)
}

// Range implements [protoreflect.Map].
func (m *mapView[K, V]) Range(yield func(protoreflect.MapKey, protoreflect.Value) bool) {
	rangeMap(m.raw, m.key, m.value, yield)
}

// mutableMap is a [protoreflect.Map] that writes through to a map owned by a
// record. The record's map is allocated on first write.
type mutableMap[K comparable, V any] struct {
	key   Type[K]
	value Type[V]
	raw   *map[K]V
}

var _ protoreflect.Map = (*mutableMap[string, int32])(nil)

// IsValid implements [protoreflect.Map].
func (m *mutableMap[_, _]) IsValid() bool { return m != nil }

// Len implements [protoreflect.Map].
func (m *mutableMap[_, _]) Len() int { return len(*m.raw) }

// Has implements [protoreflect.Map].
func (m *mutableMap[K, V]) Has(k protoreflect.MapKey) bool {
	_, ok := (*m.raw)[m.key.Unwrap(k.Value())]
	return ok
}

// Get implements [protoreflect.Map].
func (m *mutableMap[K, V]) Get(k protoreflect.MapKey) protoreflect.Value {
	return getMapValue(*m.raw, m.key, m.value, k)
}

// Range implements [protoreflect.Map].
func (m *mutableMap[K, V]) Range(yield func(protoreflect.MapKey, protoreflect.Value) bool) {
	rangeMap(*m.raw, m.key, m.value, yield)
}

// Set implements [protoreflect.Map].
func (m *mutableMap[K, V]) Set(k protoreflect.MapKey, v protoreflect.Value) {
	if *m.raw == nil {
		*m.raw = make(map[K]V)
	}
	(*m.raw)[m.key.Unwrap(k.Value())] = m.value.Unwrap(v)
}

// Clear implements [protoreflect.Map].
func (m *mutableMap[K, V]) Clear(k protoreflect.MapKey) {
	delete(*m.raw, m.key.Unwrap(k.Value()))
}

// Mutable implements [protoreflect.Map].
func (m *mutableMap[K, V]) Mutable(k protoreflect.MapKey) protoreflect.Value {
	if m.value.Kind() != MessageKind {
		panic(debug.Unsupported())
	}

	key := m.key.Unwrap(k.Value())
	if v, ok := (*m.raw)[key]; ok {
		return m.value.ValueOf(v)
	}

	v := m.value.New()
	m.Set(k, m.value.ValueOf(v))
	return m.value.ValueOf(v)
}

// NewValue implements [protoreflect.Map].
func (m *mutableMap[K, V]) NewValue() protoreflect.Value {
	return m.value.ValueOf(m.value.New())
}

func getMapValue[K comparable, V any](raw map[K]V, key Type[K], value Type[V], k protoreflect.MapKey) protoreflect.Value {
	v, ok := raw[key.Unwrap(k.Value())]
	if !ok {
		return protoreflect.Value{}
	}
	return value.ValueOf(v)
}

func rangeMap[K comparable, V any](raw map[K]V, key Type[K], value Type[V], yield func(protoreflect.MapKey, protoreflect.Value) bool) {
	for k, v := range raw {
		if !yield(key.ValueOf(k).MapKey(), value.ValueOf(v)) {
			return
		}
	}
}
