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

// Package recgen chooses record kinds from a merged configuration and its
// leaf data type, infers default fields, and assembles the auxiliary
// archive/autosave info nodes of a record package (spec component F).
package recgen

// Info is an auxiliary "info(key, value)" node attached to a record.
type Info struct {
	Key   string
	Value string
}

// Record is one rendered record: a kind, a PV name, an ordered field
// mapping (populated unsorted; the renderer applies the field priority
// ordering at emission time) and its info nodes.
type Record struct {
	Kind   string
	PV     string
	Fields map[string]string
	Infos  []Info

	// TCName is the source chain path this record was produced from,
	// carried through for diagnostics and the global record sort
	// (spec.md §4.F, "Ordering for deterministic output").
	TCName string
}

// Package is the output unit of the builder: every record produced from
// one merged configuration (spec.md §3, "RecordPackage").
type Package struct {
	Direction string
	Records   []Record
}
