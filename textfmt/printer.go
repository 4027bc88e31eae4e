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

package textfmt

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess"
	"buf.build/go/protoaccess/internal/fieldvalue"
	"buf.build/go/protoaccess/redact"
)

// printer converts records into entries.
type printer struct {
	redact bool
}

// record converts one record. Registered tables take priority over protobuf
// reflection, so that generated messages can be given a table of their own.
func (p *printer) record(m protoaccess.Message) ([]entry, error) {
	if fieldvalue.IsNil(m) {
		return nil, nil
	}

	fields, ok := protoaccess.Lookup(m)
	if !ok {
		if pm, ok := m.(proto.Message); ok {
			return p.reflected(pm.ProtoReflect())
		}
		return nil, fmt.Errorf("%w: %T", ErrUnregistered, m)
	}

	var out []entry
	for _, f := range fields.All() {
		var err error
		if out, err = p.field(out, f, m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// field appends the entries for one field of m.
func (p *printer) field(out []entry, f protoaccess.FieldAccessor, m protoaccess.Message) ([]entry, error) {
	name := f.Name()
	shape := f.Shape()

	switch shape.Cardinality {
	case protoaccess.SingularField:
		if !f.Has(m) {
			return out, nil
		}
		switch shape.Kind {
		case protoaccess.MessageKind:
			sub := f.GetMessage(m)
			if fieldvalue.IsNil(sub) {
				return out, nil
			}
			fields, err := p.record(sub)
			if err != nil {
				return nil, err
			}
			return append(out, message(name, fields)), nil
		case protoaccess.EnumKind:
			return append(out, scalar(name, enumName(f.GetEnum(m)))), nil
		default:
			return append(out, scalar(name, p.scalar(shape.Kind, fieldvalue.Singular(f, m), nil))), nil
		}

	case protoaccess.RepeatedField:
		n := f.Len(m)
		switch shape.Kind {
		case protoaccess.MessageKind:
			for i := range n {
				fields, err := p.record(f.GetRepeatedMessage(m, i))
				if err != nil {
					return nil, err
				}
				out = append(out, message(name, fields))
			}
		case protoaccess.EnumKind:
			for i := range n {
				out = append(out, scalar(name, enumName(f.GetRepeatedEnum(m, i))))
			}
		default:
			for _, v := range fieldvalue.Repeated(f, m) {
				out = append(out, scalar(name, p.scalar(shape.Kind, v, nil)))
			}
		}
		return out, nil

	case protoaccess.ListField:
		view := f.Reflect(m)
		list := view.List()
		for i := range list.Len() {
			e, err := p.value(name, shape.Kind, list.Get(i), view.Enum())
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil

	case protoaccess.MapField:
		view := f.Reflect(m)
		entries := view.Map()
		for _, k := range fieldvalue.SortedKeys(entries) {
			v, err := p.value("value", shape.Kind, entries.Get(k), view.Enum())
			if err != nil {
				return nil, err
			}
			out = append(out, message(name, []entry{scalar("key", formatKey(k)), v}))
		}
		return out, nil
	}

	return out, nil
}

// value converts one element of a container view.
func (p *printer) value(name string, kind protoaccess.Kind, v protoreflect.Value, enum protoreflect.EnumDescriptor) (entry, error) {
	if kind != protoaccess.MessageKind {
		return scalar(name, p.scalar(kind, v, enum)), nil
	}
	fields, err := p.record(v.Message().Interface())
	if err != nil {
		return entry{}, err
	}
	return message(name, fields), nil
}

// scalar formats a non-message value of the given kind.
func (p *printer) scalar(kind protoaccess.Kind, v protoreflect.Value, enum protoreflect.EnumDescriptor) string {
	switch kind {
	case protoaccess.Uint32Kind, protoaccess.Uint64Kind:
		return strconv.FormatUint(v.Uint(), 10)
	case protoaccess.Int32Kind, protoaccess.Int64Kind:
		return strconv.FormatInt(v.Int(), 10)
	case protoaccess.Float32Kind:
		return formatFloat(v.Float(), 32)
	case protoaccess.Float64Kind:
		return formatFloat(v.Float(), 64)
	case protoaccess.BoolKind:
		return strconv.FormatBool(v.Bool())
	case protoaccess.StringKind:
		return p.text(v.String())
	case protoaccess.BytesKind:
		return p.text(string(v.Bytes()))
	case protoaccess.EnumKind:
		return enumNumber(enum, v.Enum())
	default:
		panic(fmt.Sprintf("textfmt: unexpected kind %v", kind))
	}
}

// reflected converts a protobuf message that has no registered table.
func (p *printer) reflected(m protoreflect.Message) ([]entry, error) {
	fds := m.Descriptor().Fields()
	ordered := make([]protoreflect.FieldDescriptor, fds.Len())
	for i := range ordered {
		ordered[i] = fds.Get(i)
	}
	slices.SortFunc(ordered, func(a, b protoreflect.FieldDescriptor) int {
		return cmp.Compare(a.Number(), b.Number())
	})

	var out []entry
	for _, fd := range ordered {
		if !m.Has(fd) {
			continue
		}

		name := string(fd.Name())
		v := m.Get(fd)
		switch {
		case fd.IsList():
			list := v.List()
			for i := range list.Len() {
				e, err := p.reflectedValue(name, fd, list.Get(i))
				if err != nil {
					return nil, err
				}
				out = append(out, e)
			}
		case fd.IsMap():
			for _, k := range fieldvalue.SortedKeys(v.Map()) {
				e, err := p.reflectedValue("value", fd.MapValue(), v.Map().Get(k))
				if err != nil {
					return nil, err
				}
				out = append(out, message(name, []entry{scalar("key", formatKey(k)), e}))
			}
		default:
			e, err := p.reflectedValue(name, fd, v)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
	return out, nil
}

func (p *printer) reflectedValue(name string, fd protoreflect.FieldDescriptor, v protoreflect.Value) (entry, error) {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		fields, err := p.record(v.Message().Interface())
		if err != nil {
			return entry{}, err
		}
		return message(name, fields), nil
	case protoreflect.EnumKind:
		return scalar(name, enumNumber(fd.Enum(), v.Enum())), nil
	case protoreflect.StringKind:
		return scalar(name, p.text(v.String())), nil
	case protoreflect.BytesKind:
		return scalar(name, p.text(string(v.Bytes()))), nil
	case protoreflect.FloatKind:
		return scalar(name, formatFloat(v.Float(), 32)), nil
	case protoreflect.DoubleKind:
		return scalar(name, formatFloat(v.Float(), 64)), nil
	default:
		return scalar(name, fmt.Sprint(v.Interface())), nil
	}
}

func (p *printer) text(s string) string {
	if p.redact {
		s = redact.Placeholder
	}
	return strconv.Quote(s)
}

// enumName formats an enum value obtained through a getter.
func enumName(v protoreflect.EnumValueDescriptor) string {
	if v.IsPlaceholder() {
		return strconv.FormatInt(int64(v.Number()), 10)
	}
	return string(v.Name())
}

// enumNumber formats an enum value by name, or by number if enum does not
// declare it.
func enumNumber(enum protoreflect.EnumDescriptor, n protoreflect.EnumNumber) string {
	if enum != nil {
		if v := enum.Values().ByNumber(n); v != nil {
			return string(v.Name())
		}
	}
	return strconv.FormatInt(int64(n), 10)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}

// formatKey formats a map key. Keys are never redacted.
func formatKey(k protoreflect.MapKey) string {
	if s, ok := k.Interface().(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(k.Interface())
}
