// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"strings"
)

var _VariantsValues = []Variants{0, 1, 2, 3, 4}

// VariantsN is the highest valid value for type Variants, plus one.
const VariantsN Variants = 5

var _VariantsValueMap = map[string]Variants{`colored`: 0, `textured`: 1, `flipped`: 2, `transform`: 3, `scaled`: 4}

var _VariantsDescMap = map[Variants]string{0: `Colored is a triangle of interpolated vertex colors.`, 1: `Textured is a vertex-colored triangle modulated by the image.`, 2: `Flipped is Textured with the image rows flipped on load, so that its first row is at texture coordinate v = 0.`, 3: `Transform is Flipped with positions transformed by a matrix uniform.`, 4: `Scaled is a white textured triangle drawn with the precompiled quad shader, transformed by a matrix and a scale uniform.`}

var _VariantsMap = map[Variants]string{0: `colored`, 1: `textured`, 2: `flipped`, 3: `transform`, 4: `scaled`}

// String returns the string representation of this Variants value.
func (i Variants) String() string {
	if str, ok := _VariantsMap[i]; ok {
		return str
	}
	return fmt.Sprintf("Variants(%d)", int32(i))
}

// SetString sets the Variants value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (i *Variants) SetString(s string) error {
	if val, ok := _VariantsValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Variants (want one of %s)", s, strings.Join(variantsStrings(), ", "))
}

// Int64 returns the Variants value as an int64.
func (i Variants) Int64() int64 { return int64(i) }

// SetInt64 sets the Variants value from an int64.
func (i *Variants) SetInt64(in int64) { *i = Variants(in) }

// Desc returns the description of the Variants value.
func (i Variants) Desc() string {
	if str, ok := _VariantsDescMap[i]; ok {
		return str
	}
	return i.String()
}

// VariantsValues returns all possible values for the type Variants.
func VariantsValues() []Variants { return _VariantsValues }

// Values returns all possible values for the type Variants.
func (i Variants) Values() []Variants { return _VariantsValues }

// IsValid returns whether the value is a valid option for type Variants.
func (i Variants) IsValid() bool {
	_, ok := _VariantsMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Variants) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Variants) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Set and Type make a Variants usable as a command line flag value.
func (i *Variants) Set(s string) error { return i.SetString(s) }

func (i *Variants) Type() string { return "variant" }

func variantsStrings() []string {
	strs := make([]string, len(_VariantsValues))
	for j, v := range _VariantsValues {
		strs[j] = _VariantsMap[v]
	}
	return strs
}
