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

// Bound is one inclusive dimension of an array (spec.md §3,
// "ArrayInfo").
type Bound struct {
	LowerBound int
	UpperBound int
}

// Len returns the number of indices spanned by b.
func (b Bound) Len() int {
	if b.UpperBound < b.LowerBound {
		return 0
	}
	return b.UpperBound - b.LowerBound + 1
}

// ArrayInfo is the ordered list of dimension bounds attached to a
// Symbol or SubItem.
type ArrayInfo struct {
	*base
}

// Bounds returns the array's dimensions in declaration order.
func (a *ArrayInfo) Bounds() []Bound {
	var out []Bound
	for _, child := range a.ChildrenByTag("Elements") {
		lb, _ := firstChildText(child, "LBound")
		elems, _ := firstChildText(child, "Elements")
		lbn, _ := strconv.Atoi(strings.TrimSpace(lb))
		en, _ := strconv.Atoi(strings.TrimSpace(elems))
		if en <= 0 {
			en = 1
		}
		out = append(out, Bound{LowerBound: lbn, UpperBound: lbn + en - 1})
	}
	return out
}

// ElementCount returns the total number of elements across every
// dimension: the cross-product of each bound's length (spec.md §3,
// "Nested/multidimensional arrays produce the full cross-product").
func (a *ArrayInfo) ElementCount() int {
	count := 1
	for _, b := range a.Bounds() {
		count *= b.Len()
	}
	return count
}
