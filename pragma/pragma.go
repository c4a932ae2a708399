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

// Package pragma tokenizes the pytmc pragma mini-language attached to
// controller-project declarations and normalizes its recognized keys
// (spec component C).
package pragma

// Pair is one (key, value) directive, in the order it appeared in the
// source text.
type Pair struct {
	Key   string
	Value string
}

// Pragma is the ordered sequence of directives parsed from one
// declaration's attribute text.
type Pragma []Pair

// IsEmpty reports whether the pragma carries no directives at all.
func (p Pragma) IsEmpty() bool {
	return len(p) == 0
}

// MalformedPragmaError is raised only when the attribute framing itself
// is present but unbalanced (spec.md §4.C); a missing or empty pragma is
// not an error.
type MalformedPragmaError struct {
	Reason string
}

func (e *MalformedPragmaError) Error() string {
	return "malformed pragma: " + e.Reason
}

// Recognized pragma keys, exhaustive per spec.md §3.
const (
	KeyPV                  = "pv"
	KeyIO                  = "io"
	KeyField               = "field"
	KeyUpdate              = "update"
	KeyArchive             = "archive"
	KeyArchiveFields       = "archive_fields"
	KeyAutosavePass0       = "autosave_pass0"
	KeyAutosavePass1       = "autosave_pass1"
	KeyAutosaveInputPass0  = "autosave_input_pass0"
	KeyAutosaveInputPass1  = "autosave_input_pass1"
	KeyAutosaveOutputPass0 = "autosave_output_pass0"
	KeyAutosaveOutputPass1 = "autosave_output_pass1"
	KeyLink                = "link"
	KeyArray               = "array"
	KeyExpand              = "expand"
	KeyScale               = "scale"
	KeyOffset              = "offset"
	KeyMacroCharacter      = "macro_character"
	KeyType                = "type"
	KeyStr                 = "str"
)

// knownKeys backs IsKnownKey, which the chain walker uses to warn on
// unrecognized keys without failing the pass (spec.md §6, "Unknown keys produce a
// non-fatal diagnostic and are ignored").
var knownKeys = map[string]bool{
	KeyPV: true, KeyIO: true, KeyField: true, KeyUpdate: true,
	KeyArchive: true, KeyArchiveFields: true,
	KeyAutosavePass0: true, KeyAutosavePass1: true,
	KeyAutosaveInputPass0: true, KeyAutosaveInputPass1: true,
	KeyAutosaveOutputPass0: true, KeyAutosaveOutputPass1: true,
	KeyLink: true, KeyArray: true, KeyExpand: true,
	KeyScale: true, KeyOffset: true, KeyMacroCharacter: true,
	KeyType: true, KeyStr: true,
}

// IsKnownKey reports whether key is one of the pragma keys recognized
// by spec.md §3.
func IsKnownKey(key string) bool {
	return knownKeys[key]
}
