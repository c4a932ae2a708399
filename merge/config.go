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

// Package merge expands each chain's per-level pragmas into concrete,
// per-record configurations by applying the chain-composition
// inheritance rules of spec component E.
package merge

import "github.com/ctrlio/tcrecgen/pragma"

// Config is one normalized configuration: everything the record
// package builder needs to emit a single record pair (spec.md §3,
// "RecordPackage" derives from this).
type Config struct {
	PV        string
	Direction string // pragma.DirInput or pragma.DirOutput

	Fields map[string]string

	Type   string // explicit "type:" record-kind override, if any.
	Scale  string
	Offset string

	MacroChar byte

	Update  *pragma.RateMethod
	Archive *pragma.RateMethod

	ArchiveFields []string

	AutosavePass0       []string
	AutosavePass1       []string
	AutosaveInputPass0  []string
	AutosaveInputPass1  []string
	AutosaveOutputPass0 []string
	AutosaveOutputPass1 []string

	Link string
	Str  string
}

// newConfig returns a Config with its maps initialized. MacroChar stays
// zero unless a "macro_character:" pragma sets it, so the record builder
// falls back to the run-wide sigil.
func newConfig() *Config {
	return &Config{
		Fields: map[string]string{},
	}
}
