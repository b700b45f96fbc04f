// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

var _TypesValues = []Types{0, 1, 2, 3, 4}

// TypesN is the highest valid value for type Types, plus one.
const TypesN Types = 5

var _TypesValueMap = map[string]Types{`UnknownType`: 0, `Quit`: 1, `KeyDown`: 2, `KeyUp`: 3, `WindowResize`: 4}

var _TypesMap = map[Types]string{0: `UnknownType`, 1: `Quit`, 2: `KeyDown`, 3: `KeyUp`, 4: `WindowResize`}

// String returns the string representation of this Types value.
func (i Types) String() string {
	if str, ok := _TypesMap[i]; ok {
		return str
	}
	return fmt.Sprintf("Types(%d)", int32(i))
}

// SetString sets the Types value from its string representation,
// and returns an error if the string is invalid.
func (i *Types) SetString(s string) error {
	if val, ok := _TypesValueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type Types", s)
}

// TypesValues returns all possible values for the type Types.
func TypesValues() []Types { return _TypesValues }

// Values returns all possible values for the type Types.
func (i Types) Values() []Types { return _TypesValues }

// IsValid returns whether the value is a valid option for type Types.
func (i Types) IsValid() bool {
	_, ok := _TypesMap[i]
	return ok
}
