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

// ExtendsType names the single type a DataType extends (spec.md §3,
// "optional list of ExtendsType (single extension)").
type ExtendsType struct {
	*base
}

// TypeName returns the extended type's qualified name.
func (e *ExtendsType) TypeName() string {
	return e.Text()
}

// GUID returns the extended type's globally unique id, if present as an
// attribute on the element.
func (e *ExtendsType) GUID() (string, bool) {
	return e.Attr("GUID")
}
