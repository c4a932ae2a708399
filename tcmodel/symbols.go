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

// AllSymbols returns every Symbol node reachable from root, in document
// order. Symbols are not necessarily direct children of root; a compiled
// project description nests them under module/instance wrapper elements
// the object graph does not otherwise need typed accessors for.
func AllSymbols(root Item) []*Symbol {
	var out []*Symbol
	var walk func(Item)
	walk = func(item Item) {
		if s, ok := item.(*Symbol); ok {
			out = append(out, s)
		}
		for _, child := range item.Children() {
			walk(child)
		}
	}
	walk(root)
	return out
}
