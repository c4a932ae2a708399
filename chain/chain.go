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

// Package chain enumerates every root-to-leaf path of annotated symbols
// through composites and array indices, pairing each level's pragma
// with the item it is attached to (spec component D).
package chain

import (
	"strconv"
	"strings"

	"github.com/ctrlio/tcrecgen/pragma"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

// Level is one item along a chain: its declared name, the raw pragma
// attached to it, and (for a level reached by expanding an array of
// composites) which index produced it.
type Level struct {
	Name       string
	Pragma     pragma.Pragma
	ArrayIndex *int
	// ArrayUpperBound is the declared upper bound of the array
	// dimension being indexed, set alongside ArrayIndex so the
	// configuration merger can size the default "expand" suffix width
	// (spec.md §3, "expand", default auto-sized to array length).
	ArrayUpperBound *int
}

// LeafKind distinguishes how a chain's terminal type should be
// rendered, independent of the direction or array-ness decided later by
// the record builder (spec.md §4.B/§4.D, "a leaf *or* the type is a
// primitive/string/array-of-primitive").
type LeafKind int

const (
	LeafScalar LeafKind = iota
	LeafEnumComposite
)

// Chain is an ordered root-to-leaf path where every level carries a
// non-empty pragma (spec.md §3, "Chain").
type Chain struct {
	Levels []Level

	// LeafFamily is the resolved scalar family of the terminal type.
	LeafFamily tcmodel.Family
	// LeafArray is the array bounds of the terminal type, if it is
	// itself an array of a primitive/enumerated type (a waveform
	// candidate), nil otherwise.
	LeafArray *tcmodel.ArrayInfo
	// LeafStrLen is the declared STRING length, meaningful only when
	// LeafFamily is FamilyString.
	LeafStrLen int
	// LeafEnum carries the enumeration values when LeafFamily is
	// FamilyEnumComposite.
	LeafEnum []tcmodel.EnumValue
	// LeafKind further classifies the terminal type.
	LeafKind LeafKind
}

// TCName returns the chain's dotted, source-order qualified path, e.g.
// "Main.counter.value_d" or "Main.arr[3].value".
func (c *Chain) TCName() string {
	var b strings.Builder
	for i, lvl := range c.Levels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(lvl.Name)
		if lvl.ArrayIndex != nil {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(*lvl.ArrayIndex))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// Pragmas returns every level's pragma, in root-to-leaf order, for the
// configuration merger to combine (spec component E).
func (c *Chain) Pragmas() []pragma.Pragma {
	out := make([]pragma.Pragma, len(c.Levels))
	for i, lvl := range c.Levels {
		out[i] = lvl.Pragma
	}
	return out
}
