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

// Family is the leaf type family that drives record-kind and DTYP
// selection downstream (spec.md §4.B built-in table, §9 "Record-kind
// choice... decision table keyed on (leaf_type_family, direction,
// is_array)"). tcmodel only classifies; recgen owns the decision table
// itself.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyBool
	FamilyInt8
	FamilyInt16
	FamilyInt32
	FamilyUnsupportedWide // LWORD/LINT/ULINT: recognized but unsupported.
	FamilyReal32
	FamilyReal64
	FamilyString
	FamilyEnumComposite // a DataType carrying EnumInfo.
)

// Builtin describes a resolved built-in scalar type.
type Builtin struct {
	Name     string
	Family   Family
	BitSize  int
	StrLen   int // only meaningful for FamilyString.
}

// builtinTable is the abbreviated mapping of spec.md §4.B, keyed by the
// upper-cased bare type name.
var builtinTable = map[string]Builtin{
	"BOOL":  {Family: FamilyBool, BitSize: 1},
	"BYTE":  {Family: FamilyInt8, BitSize: 8},
	"SINT":  {Family: FamilyInt8, BitSize: 8},
	"USINT": {Family: FamilyInt8, BitSize: 8},
	"WORD":  {Family: FamilyInt16, BitSize: 16},
	"INT":   {Family: FamilyInt16, BitSize: 16},
	"UINT":  {Family: FamilyInt16, BitSize: 16},
	"ENUM":  {Family: FamilyInt16, BitSize: 16},
	"DWORD": {Family: FamilyInt32, BitSize: 32},
	"DINT":  {Family: FamilyInt32, BitSize: 32},
	"UDINT": {Family: FamilyInt32, BitSize: 32},
	"LWORD": {Family: FamilyUnsupportedWide, BitSize: 64},
	"LINT":  {Family: FamilyUnsupportedWide, BitSize: 64},
	"ULINT": {Family: FamilyUnsupportedWide, BitSize: 64},
	"REAL":  {Family: FamilyReal32, BitSize: 32},
	"LREAL": {Family: FamilyReal64, BitSize: 64},
}

// ResolveBuiltin returns the Builtin descriptor for a bare type name,
// recognizing the "STRING" and "STRING(n)" forms (spec.md §4.B,
// "STRING(n)"). ok is false if name is not a recognized built-in.
func ResolveBuiltin(name string) (Builtin, bool) {
	trimmed := strings.TrimSpace(name)
	upper := strings.ToUpper(trimmed)

	if upper == "STRING" {
		return Builtin{Name: "STRING", Family: FamilyString, StrLen: 80}, true
	}
	if strings.HasPrefix(upper, "STRING(") && strings.HasSuffix(upper, ")") {
		inner := upper[len("STRING(") : len(upper)-1]
		n, err := strconv.Atoi(strings.TrimSpace(inner))
		if err != nil || n <= 0 {
			n = 80
		}
		return Builtin{Name: "STRING", Family: FamilyString, StrLen: n}, true
	}

	b, ok := builtinTable[upper]
	if !ok {
		return Builtin{}, false
	}
	b.Name = upper
	return b, true
}
