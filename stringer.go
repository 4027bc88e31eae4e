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
	"fmt"

	"buf.build/go/protoaccess/internal/debug"
)

// Formatter implementations for debugging. These are placed off to the side
// here since they are not part of any operation's semantics.

// Format implements [fmt.Formatter].
func (a *Accessor[M]) Format(s fmt.State, verb rune) {
	var has any
	if a.has != nil {
		has = debug.Func(a.has)
	}
	debug.Dict(
		fmt.Sprintf("%T", a),
		"name", a.name,
		"shape", a.shape,
		"has", has,
		"bridge", fmt.Sprintf("%T", a.bridge),
	).Format(s, verb)
}

// Format implements [fmt.Formatter].
func (f *Fields) Format(s fmt.State, verb rune) {
	debug.Formatter(func(s fmt.State) {
		fmt.Fprintf(s, "%v[", f.ty)
		for i, a := range f.fields {
			if i > 0 {
				fmt.Fprint(s, ", ")
			}
			fmt.Fprintf(s, "%s: %v", a.Name(), a.Shape())
		}
		fmt.Fprint(s, "]")
	}).Format(s, verb)
}
