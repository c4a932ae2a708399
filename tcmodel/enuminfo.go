// Copyright 2017 Google Inc.
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

package tcmodel

import (
	"strconv"
	"strings"
)

// EnumValue is one (integer_value, text) pair of an enumeration
// (spec.md §3, "EnumInfo").
type EnumValue struct {
	Value int
	Text  string
}

// EnumInfo is the ordered list of enumerated values attached to a
// DataType, used to produce multi-bit choice records.
type EnumInfo struct {
	*base
}

// Values returns the enumeration's (integer_value, text) pairs in
// declaration order.
func (e *EnumInfo) Values() []EnumValue {
	var out []EnumValue
	for _, child := range e.ChildrenByTag("Enum") {
		text, _ := firstChildText(child, "Text")
		v, _ := child.Attr("EnumValue")
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		out = append(out, EnumValue{Value: n, Text: text})
	}
	return out
}
