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

// Symbol is a named top-level datum within a runtime instance (spec.md
// §3, "Symbol").
type Symbol struct {
	*base
}

// Name returns the symbol's fully qualified declared name, e.g.
// "Main.scale".
func (s *Symbol) Name() string {
	name, _ := firstChildText(s, "Name")
	return name
}

// TypeName returns the symbol's declared type name, stripped of any
// "POINTER TO " / "REFERENCE TO " prefixes accounted for by
// PointerDepth.
func (s *Symbol) TypeName() string {
	raw, _ := firstChildText(s, "Type")
	name, _ := stripIndirection(raw)
	return name
}

// PointerDepth returns the number of POINTER TO / REFERENCE TO layers
// wrapping the declared type. A Symbol with zero pointer depth may be
// resolved to a concrete DataType or a built-in (spec.md §3 invariant).
func (s *Symbol) PointerDepth() int {
	raw, _ := firstChildText(s, "Type")
	_, depth := stripIndirection(raw)
	return depth
}

// ByteOffset returns the symbol's byte offset within its containing
// runtime instance, or 0 if absent.
func (s *Symbol) ByteOffset() int {
	v, _ := firstChildText(s, "Offset")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// BitSize returns the symbol's size in bits, or 0 if absent.
func (s *Symbol) BitSize() int {
	v, _ := firstChildText(s, "BitSize")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// ModuleIndex returns the owning runtime module's index, or 0 if
// absent.
func (s *Symbol) ModuleIndex() int {
	v, _ := firstChildText(s, "Info")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// ArrayInfoItem returns the symbol's array bounds, if it declares an
// array type directly.
func (s *Symbol) ArrayInfoItem() *ArrayInfo {
	children := s.ChildrenByTag("ArrayInfo")
	if len(children) == 0 {
		return nil
	}
	ai, _ := children[0].(*ArrayInfo)
	return ai
}

// Pragma returns the symbol's raw pragma attribute text, carried as a
// <Properties><Property><Name>pytmc</Name><Value>...</Value></Property>
// in the source XML, and whether one was present at all.
func (s *Symbol) Pragma() (string, bool) {
	return findPragma(s)
}

// findPragma walks item's direct <Properties>/<Property> children
// looking for one named pragmaPropertyName, returning its <Value> text.
func findPragma(item Item) (string, bool) {
	for _, props := range item.ChildrenByTag("Properties") {
		for _, prop := range props.ChildrenByTag("Property") {
			name, _ := firstChildText(prop, "Name")
			if !strings.EqualFold(name, pragmaPropertyName) {
				continue
			}
			value, ok := firstChildText(prop, "Value")
			if !ok {
				// Some authoring tools emit the value as the
				// Property's own text body rather than a nested
				// <Value> element.
				value = prop.Text()
			}
			return value, true
		}
	}
	return "", false
}

// pragmaPropertyName is the well-known property name that authoring
// tools use to attach the pragma mini-language to a declaration.
const pragmaPropertyName = "pytmc"

// stripIndirection removes any number of leading "POINTER TO " /
// "REFERENCE TO " tokens from a raw declared type name, returning the
// base type name and how many layers were stripped.
func stripIndirection(raw string) (string, int) {
	name := strings.TrimSpace(raw)
	depth := 0
	for {
		switch {
		case strings.HasPrefix(strings.ToUpper(name), "POINTER TO "):
			name = strings.TrimSpace(name[len("POINTER TO "):])
			depth++
		case strings.HasPrefix(strings.ToUpper(name), "REFERENCE TO "):
			name = strings.TrimSpace(name[len("REFERENCE TO "):])
			depth++
		default:
			return name, depth
		}
	}
}
