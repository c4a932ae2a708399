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

// Package genutil provides the default-inference and naming helpers shared
// by the record package builder, grammar linter and renderer: it has no
// knowledge of the XML object graph or the pragma mini-language, only of
// the output record's conventions.
package genutil

// Options carries the run-wide behavior flags threaded through every stage
// of the pipeline, mirroring how a single configuration struct threads
// per-run flags through each generation step rather than passing them
// individually to every function.
type Options struct {
	// AllowErrors demotes every local diagnostic to a warning instead of
	// failing the pass.
	AllowErrors bool
	// MaxRecordNameLength is the configured ceiling on a record's PV
	// name; a record exceeding it is omitted with a diagnostic.
	MaxRecordNameLength int
	// MacroChar is the macro sigil recognized in pragma-sourced values
	// before emission remaps it to '$'.
	MacroChar byte
}

// DefaultMaxRecordNameLength is applied when a caller leaves
// Options.MaxRecordNameLength unset.
const DefaultMaxRecordNameLength = 60

// DefaultMacroChar is applied when a caller leaves Options.MacroChar unset.
const DefaultMacroChar = '@'

// NewOptions returns an Options populated with the package defaults.
func NewOptions() Options {
	return Options{
		MaxRecordNameLength: DefaultMaxRecordNameLength,
		MacroChar:           DefaultMacroChar,
	}
}

// WithDefaults fills any zero-valued field of o with its package default,
// returning the result. Call sites that build Options from CLI flags run
// this once the flags are bound.
func (o Options) WithDefaults() Options {
	if o.MaxRecordNameLength == 0 {
		o.MaxRecordNameLength = DefaultMaxRecordNameLength
	}
	if o.MacroChar == 0 {
		o.MacroChar = DefaultMacroChar
	}
	return o
}
