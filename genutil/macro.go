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

import "strings"

// emittedMacroSigil is the character the renderer always emits, regardless
// of which sigil the source pragma used (spec.md §3, "macro_character",
// "mapped to $ on emit").
const emittedMacroSigil = '$'

// SubstituteMacro replaces every occurrence of sigil in value with the
// record-database macro sigil, '$' (spec.md §4.F.6).
func SubstituteMacro(value string, sigil byte) string {
	if sigil == 0 || sigil == emittedMacroSigil {
		return value
	}
	return strings.ReplaceAll(value, string(sigil), string(emittedMacroSigil))
}
