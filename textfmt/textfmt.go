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

// Package textfmt renders records as protobuf-text-like strings, using only
// the field tables registered with [protoaccess.Register].
//
// Singular fields are printed when they are set, repeated fields print one
// entry per element, and nested messages are printed in braces. Map fields
// print one entry per key, in sorted key order. Records that are generated
// protobuf messages but have no registered table are rendered through
// [protoreflect] instead, in field number order.
//
// The output is meant for humans, and is not guaranteed to be stable.
package textfmt

import (
	"errors"
	"fmt"
	"strings"

	"buf.build/go/protoaccess"
	"buf.build/go/protoaccess/redact"
)

// ErrUnregistered is returned when asked to format a record type that has no
// registered field table and is not a protobuf message.
var ErrUnregistered = errors.New("textfmt: no field table registered")

// Option is a configuration setting for [Format].
type Option struct{ apply func(*options) }

type options struct {
	indent string
	redact *bool
}

// WithIndent causes [Format] to print one field per line, indenting nested
// messages by indent per level. The output ends in a newline.
func WithIndent(indent string) Option {
	return Option{func(o *options) { o.indent = indent }}
}

// WithRedaction overrides the process-wide redaction flag in [redact] for one
// call.
func WithRedaction(on bool) Option {
	return Option{func(o *options) { o.redact = &on }}
}

// Format renders m as text.
func Format(m protoaccess.Message, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	p := printer{redact: redact.Enabled()}
	if o.redact != nil {
		p.redact = *o.redact
	}

	entries, err := p.record(m)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if o.indent == "" {
		writeCompact(&b, entries)
	} else {
		writeIndented(&b, entries, o.indent, 0)
	}
	return b.String(), nil
}

// String is like [Format] with no options, but renders any error in place of
// the record.
func String(m protoaccess.Message) string {
	s, err := Format(m)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}

// entry is one line of output: either a scalar value, or a message with
// entries of its own.
type entry struct {
	name  string
	value string

	isMessage bool
	fields    []entry
}

func scalar(name, value string) entry {
	return entry{name: name, value: value}
}

func message(name string, fields []entry) entry {
	return entry{name: name, isMessage: true, fields: fields}
}

func writeCompact(b *strings.Builder, entries []entry) {
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.name)
		switch {
		case !e.isMessage:
			b.WriteString(": ")
			b.WriteString(e.value)
		case len(e.fields) == 0:
			b.WriteString(" {}")
		default:
			b.WriteString(" { ")
			writeCompact(b, e.fields)
			b.WriteString(" }")
		}
	}
}

func writeIndented(b *strings.Builder, entries []entry, indent string, depth int) {
	prefix := strings.Repeat(indent, depth)
	for _, e := range entries {
		b.WriteString(prefix)
		b.WriteString(e.name)
		switch {
		case !e.isMessage:
			b.WriteString(": ")
			b.WriteString(e.value)
		case len(e.fields) == 0:
			b.WriteString(" {}")
		default:
			b.WriteString(" {\n")
			writeIndented(b, e.fields, indent, depth+1)
			b.WriteString(prefix)
			b.WriteString("}")
		}
		b.WriteByte('\n')
	}
}
