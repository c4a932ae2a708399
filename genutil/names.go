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

package genutil

import "fmt"

// MakeNameUnique makes name unique against the set of names already
// recorded in definedNames, appending an underscore until it no longer
// collides. definedNames is updated in place.
func MakeNameUnique(name string, definedNames map[string]bool) string {
	for {
		if _, used := definedNames[name]; !used {
			definedNames[name] = true
			return name
		}
		name = fmt.Sprintf("%s_", name)
	}
}

// ReadbackName returns the paired readback record name for a writable
// output, e.g. "TEST:ULIMIT" -> "TEST:ULIMIT_RBV" (spec.md §3,
// "Readback (_RBV)").
func ReadbackName(pv string) string {
	return pv + "_RBV"
}

// CheckNameLength reports whether pv exceeds max, the configured
// record-name length ceiling (spec.md §4.F.7).
func CheckNameLength(pv string, max int) bool {
	return len(pv) > max
}
