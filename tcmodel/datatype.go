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

// DataType is a named composite (spec.md §3, "DataType").
type DataType struct {
	*base
}

// Name returns the data type's bare name.
func (d *DataType) Name() string {
	name, _ := firstChildText(d, "Name")
	return name
}

// Namespace returns the data type's namespace, if declared.
func (d *DataType) Namespace() (string, bool) {
	return firstChildText(d, "Namespace")
}

// GUID returns the data type's globally unique id, if declared.
func (d *DataType) GUID() (string, bool) {
	return firstChildText(d, "Guid")
}

// BitSize returns the data type's declared size in bits.
func (d *DataType) BitSize() int {
	v, _ := firstChildText(d, "BitSize")
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

// SubItems returns the data type's member declarations, in declaration
// order.
func (d *DataType) SubItems() []*SubItem {
	var out []*SubItem
	for _, c := range d.ChildrenByTag("SubItem") {
		if si, ok := c.(*SubItem); ok {
			out = append(out, si)
		}
	}
	return out
}

// Extends returns the single type this data type extends, if any
// (spec.md models extension as "single-inheritance").
func (d *DataType) Extends() (*ExtendsType, bool) {
	children := d.ChildrenByTag("ExtendsType")
	if len(children) == 0 {
		return nil, false
	}
	et, ok := children[0].(*ExtendsType)
	return et, ok
}

// EnumInfoItem returns the data type's enumeration values, if it
// describes an enumerated composite rather than a structure.
func (d *DataType) EnumInfoItem() *EnumInfo {
	children := d.ChildrenByTag("EnumInfo")
	if len(children) == 0 {
		return nil
	}
	ei, _ := children[0].(*EnumInfo)
	return ei
}

// IsEnum reports whether the data type describes an enumerated
// composite (spec.md §4.B "enumerated composite" built-in mapping).
func (d *DataType) IsEnum() bool {
	return d.EnumInfoItem() != nil
}
