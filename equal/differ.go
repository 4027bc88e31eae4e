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

package equal

import (
	"fmt"
	"math"
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess"
	"buf.build/go/protoaccess/internal/fieldvalue"
)

// differ walks two records in lockstep, stopping at the first difference.
type differ struct {
	opts options
	path []any
}

// class is how an element of a given kind is compared.
type class uint8

const (
	byValue class = iota
	byFloat
	byMessage
)

func classOf(k protoaccess.Kind) class {
	switch k {
	case protoaccess.Float32Kind, protoaccess.Float64Kind:
		return byFloat
	case protoaccess.MessageKind:
		return byMessage
	default:
		return byValue
	}
}

func classOfField(fd protoreflect.FieldDescriptor) class {
	switch fd.Kind() {
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return byFloat
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return byMessage
	default:
		return byValue
	}
}

func (d *differ) record(a, b protoaccess.Message) error {
	if ta, tb := reflect.TypeOf(a), reflect.TypeOf(b); ta != tb {
		return d.fail("want %v, got %v", ta, tb)
	}
	if na, nb := fieldvalue.IsNil(a), fieldvalue.IsNil(b); na || nb {
		if na != nb {
			return d.fail("want nil=%v, got nil=%v", na, nb)
		}
		return nil
	}

	fields, ok := protoaccess.Lookup(a)
	if !ok {
		if pa, ok := a.(proto.Message); ok {
			return d.reflected(pa.ProtoReflect(), b.(proto.Message).ProtoReflect()) //nolint:errcheck // Same type as a.
		}
		return fmt.Errorf("%w: %T", ErrUnregistered, a)
	}

	for _, f := range fields.All() {
		err := d.push(name(f.Name()), func() error { return d.field(f, a, b) })
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *differ) field(f protoaccess.FieldAccessor, a, b protoaccess.Message) error {
	shape := f.Shape()
	switch shape.Cardinality {
	case protoaccess.SingularField:
		ha, hb := f.Has(a), f.Has(b)
		if ha != hb {
			return d.fail("want set=%v, got set=%v", ha, hb)
		}
		if !ha {
			return nil
		}

		switch shape.Kind {
		case protoaccess.MessageKind:
			return d.record(f.GetMessage(a), f.GetMessage(b))
		case protoaccess.EnumKind:
			return d.enum(f.GetEnum(a), f.GetEnum(b))
		default:
			return d.value(classOf(shape.Kind), fieldvalue.Singular(f, a), fieldvalue.Singular(f, b))
		}

	case protoaccess.RepeatedField:
		la, lb := f.Len(a), f.Len(b)
		if la != lb {
			return d.fail("want length %d, got %d", la, lb)
		}

		var va, vb []protoreflect.Value
		if shape.Kind.IsScalar() {
			va, vb = fieldvalue.Repeated(f, a), fieldvalue.Repeated(f, b)
		}
		for i := range la {
			err := d.push(i, func() error {
				switch shape.Kind {
				case protoaccess.MessageKind:
					return d.record(f.GetRepeatedMessage(a, i), f.GetRepeatedMessage(b, i))
				case protoaccess.EnumKind:
					return d.enum(f.GetRepeatedEnum(a, i), f.GetRepeatedEnum(b, i))
				default:
					return d.value(classOf(shape.Kind), va[i], vb[i])
				}
			})
			if err != nil {
				return err
			}
		}
		return nil

	case protoaccess.ListField:
		return d.list(classOf(shape.Kind), f.Reflect(a).List(), f.Reflect(b).List())

	case protoaccess.MapField:
		return d.map_(classOf(shape.Kind), f.Reflect(a).Map(), f.Reflect(b).Map())
	}

	return nil
}

// reflected compares two protobuf messages of the same type.
func (d *differ) reflected(a, b protoreflect.Message) error {
	fds := a.Descriptor().Fields()
	for i := range fds.Len() {
		fd := fds.Get(i)
		err := d.push(name(fd.Name()), func() error {
			ha, hb := a.Has(fd), b.Has(fd)
			if ha != hb {
				return d.fail("want set=%v, got set=%v", ha, hb)
			}
			if !ha {
				return nil
			}

			va, vb := a.Get(fd), b.Get(fd)
			switch {
			case fd.IsList():
				return d.list(classOfField(fd), va.List(), vb.List())
			case fd.IsMap():
				return d.map_(classOfField(fd.MapValue()), va.Map(), vb.Map())
			default:
				return d.value(classOfField(fd), va, vb)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *differ) list(c class, a, b protoreflect.List) error {
	if a.Len() != b.Len() {
		return d.fail("want length %d, got %d", a.Len(), b.Len())
	}
	for i := range a.Len() {
		if err := d.push(i, func() error { return d.value(c, a.Get(i), b.Get(i)) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *differ) map_(c class, a, b protoreflect.Map) error {
	if a.Len() != b.Len() {
		return d.fail("want %d entries, got %d", a.Len(), b.Len())
	}
	for _, k := range fieldvalue.SortedKeys(a) {
		err := d.push(k.Interface(), func() error {
			if !b.Has(k) {
				return d.fail("missing entry")
			}
			return d.value(c, a.Get(k), b.Get(k))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// value compares two non-nil values of the same kind.
func (d *differ) value(c class, a, b protoreflect.Value) error {
	switch c {
	case byMessage:
		return d.record(a.Message().Interface(), b.Message().Interface())
	case byFloat:
		x, y := a.Float(), b.Float()
		if x == y || (d.opts.nanEqual && math.IsNaN(x) && math.IsNaN(y)) {
			return nil
		}
		return d.fail("want %v, got %v", x, y)
	default:
		if !a.Equal(b) {
			return d.fail("want %v, got %v", a, b)
		}
		return nil
	}
}

func (d *differ) enum(a, b protoreflect.EnumValueDescriptor) error {
	if a.Number() != b.Number() || a.Parent().FullName() != b.Parent().FullName() {
		return d.fail("want %v, got %v", enumString(a), enumString(b))
	}
	return nil
}

func enumString(v protoreflect.EnumValueDescriptor) string {
	if v.IsPlaceholder() {
		return fmt.Sprintf("%v(%d)", v.Parent().FullName(), v.Number())
	}
	return string(v.FullName())
}

func (d *differ) push(elem any, f func() error) error {
	d.path = append(d.path, elem)
	err := f()
	d.path = d.path[:len(d.path)-1]
	return err
}

func (d *differ) fail(format string, args ...any) error {
	return &Difference{
		Path:   formatPath(d.path),
		Reason: fmt.Sprintf(format, args...),
	}
}
