// Copyright 2019 Google Inc.
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

package recgen

import "github.com/ctrlio/tcrecgen/tcmodel"

// transport describes, for one leaf type family, the scalar record kinds
// and DTYP strings and the array (waveform) DTYP/FTVL strings (spec.md
// §4.B built-in table, §9 "Record-kind choice... encoded as a decision
// table keyed on (leaf_type_family, direction, is_array)").
type transport struct {
	scalarKindIn  string
	scalarKindOut string
	scalarDTYP    string

	arrayDTYPIn  string
	arrayDTYPOut string
	ftvl         string
}

// transportTable is keyed by tcmodel.Family; FamilyUnsupportedWide has no
// entry, so Build rejects it when the lookup fails.
var transportTable = map[tcmodel.Family]transport{
	tcmodel.FamilyBool: {
		scalarKindIn: "bi", scalarKindOut: "bo", scalarDTYP: "asynInt32",
		arrayDTYPIn: "asynInt8ArrayIn", arrayDTYPOut: "asynInt8ArrayOut", ftvl: "CHAR",
	},
	tcmodel.FamilyInt8: {
		scalarKindIn: "longin", scalarKindOut: "longout", scalarDTYP: "asynInt32",
		arrayDTYPIn: "asynInt8ArrayIn", arrayDTYPOut: "asynInt8ArrayOut", ftvl: "CHAR",
	},
	tcmodel.FamilyInt16: {
		scalarKindIn: "longin", scalarKindOut: "longout", scalarDTYP: "asynInt32",
		arrayDTYPIn: "asynInt16ArrayIn", arrayDTYPOut: "asynInt16ArrayOut", ftvl: "SHORT",
	},
	tcmodel.FamilyInt32: {
		scalarKindIn: "longin", scalarKindOut: "longout", scalarDTYP: "asynInt32",
		arrayDTYPIn: "asynInt32ArrayIn", arrayDTYPOut: "asynInt32ArrayOut", ftvl: "LONG",
	},
	tcmodel.FamilyReal32: {
		scalarKindIn: "ai", scalarKindOut: "ao", scalarDTYP: "asynFloat64",
		arrayDTYPIn: "asynFloat32ArrayIn", arrayDTYPOut: "asynFloat32ArrayOut", ftvl: "FLOAT",
	},
	tcmodel.FamilyReal64: {
		scalarKindIn: "ai", scalarKindOut: "ao", scalarDTYP: "asynFloat64",
		arrayDTYPIn: "asynFloat64ArrayIn", arrayDTYPOut: "asynFloat64ArrayOut", ftvl: "DOUBLE",
	},
	tcmodel.FamilyString: {
		// STRING has no scalar record form; it is always emitted as a
		// waveform (spec.md §4.B, "STRING(n) | waveform of char").
		arrayDTYPIn: "asynInt8ArrayIn", arrayDTYPOut: "asynInt8ArrayOut", ftvl: "CHAR",
	},
	tcmodel.FamilyEnumComposite: {
		scalarKindIn: "mbbi", scalarKindOut: "mbbo", scalarDTYP: "asynInt32",
	},
}
