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

package empty

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"buf.build/go/protoaccess/internal/debug"
)

// Map is an empty, read-only [protoreflect.Map].
type Map struct{}

var _ protoreflect.Map = Map{}

func (Map) IsValid() bool                { return false }
func (Map) Len() int                     { return 0 }
func (Map) Has(protoreflect.MapKey) bool { return false }
func (Map) Get(protoreflect.MapKey) protoreflect.Value {
	return protoreflect.Value{}
}
func (Map) Range(func(protoreflect.MapKey, protoreflect.Value) bool) {}

func (Map) Clear(protoreflect.MapKey)                      { panic(debug.Unsupported()) }
func (Map) Set(protoreflect.MapKey, protoreflect.Value)    { panic(debug.Unsupported()) }
func (Map) Mutable(protoreflect.MapKey) protoreflect.Value { panic(debug.Unsupported()) }
func (Map) NewValue() protoreflect.Value                   { panic(debug.Unsupported()) }
