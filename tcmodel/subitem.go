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

// SubItem is a named member of a DataType (spec.md §3, "SubItem").
type SubItem struct {
	*base
}

// Name returns the member's name.
func (s *SubItem) Name() string {
	name, _ := firstChildText(s, "Name")
	return name
}

// TypeName returns the member's qualified type name, with any
// indirection stripped (see PointerDepth).
func (s *SubItem) TypeName() string {
	raw, _ := firstChildText(s, "Type")
	name, _ := stripIndirection(raw)
	return name
}

// PointerDepth returns the number of POINTER TO / REFERENCE TO layers
// wrapping the member's declared type.
func (s *SubItem) PointerDepth() int {
	raw, _ := firstChildText(s, "Type")
	_, depth := stripIndirection(raw)
	return depth
}

// BitOffset returns the member's offset, in bits, from the start of its
// owning DataType.
func (s *SubItem) BitOffset() int {
	v, _ := firstChildText(s, "BitOffs")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// BitSize returns the member's size in bits.
func (s *SubItem) BitSize() int {
	v, _ := firstChildText(s, "BitSize")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// ArrayInfoItem returns the member's array bounds, if it declares an
// array type.
func (s *SubItem) ArrayInfoItem() *ArrayInfo {
	children := s.ChildrenByTag("ArrayInfo")
	if len(children) == 0 {
		return nil
	}
	ai, _ := children[0].(*ArrayInfo)
	return ai
}

// Pragma returns the member's raw pragma attribute text and whether one
// was present.
func (s *SubItem) Pragma() (string, bool) {
	return findPragma(s)
}
