// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "fmt"

var _BackendsMap = map[Backends]string{0: `GLCore33`, 1: `Dummy`}

// String returns the string representation of this Backends value.
func (i Backends) String() string {
	if str, ok := _BackendsMap[i]; ok {
		return str
	}
	return fmt.Sprintf("Backends(%d)", int32(i))
}

// IsValid returns whether the value is a valid option for type Backends.
func (i Backends) IsValid() bool {
	_, ok := _BackendsMap[i]
	return ok
}

var _ResourceStatesMap = map[ResourceStates]string{0: `Invalid`, 1: `Valid`}

// String returns the string representation of this ResourceStates value.
func (i ResourceStates) String() string {
	if str, ok := _ResourceStatesMap[i]; ok {
		return str
	}
	return fmt.Sprintf("ResourceStates(%d)", int32(i))
}

var _VertexFormatsMap = map[VertexFormats]string{0: `Invalid`, 1: `Float`, 2: `Float2`, 3: `Float3`, 4: `Float4`, 5: `UByte4N`}

// String returns the string representation of this VertexFormats value.
func (i VertexFormats) String() string {
	if str, ok := _VertexFormatsMap[i]; ok {
		return str
	}
	return fmt.Sprintf("VertexFormats(%d)", int32(i))
}

// IsValid returns whether the value is a valid option for type VertexFormats.
func (i VertexFormats) IsValid() bool {
	_, ok := _VertexFormatsMap[i]
	return ok
}

var _ShaderStagesMap = map[ShaderStages]string{0: `VS`, 1: `FS`}

// String returns the string representation of this ShaderStages value.
func (i ShaderStages) String() string {
	if str, ok := _ShaderStagesMap[i]; ok {
		return str
	}
	return fmt.Sprintf("ShaderStages(%d)", int32(i))
}
