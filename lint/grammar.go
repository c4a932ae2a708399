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

// Package lint checks rendered records against a record-definition
// grammar: known record kinds, the legal field names for each, and the
// legal values of any choice-constrained field (spec component G).
package lint

import (
	"fmt"
	"io"
	"sort"

	"github.com/derekparker/trie"
	"gopkg.in/yaml.v3"
)

// FieldRule describes one field's constraints within a record kind. A nil
// or empty Choices means any value is accepted.
type FieldRule struct {
	Choices []string `yaml:"choices,omitempty"`
}

// KindRule is the set of legal fields for one record kind.
type KindRule struct {
	Fields map[string]FieldRule `yaml:"fields"`
}

// grammarFile is the on-disk YAML shape a Grammar is loaded from: a map
// of record kind name to its KindRule (mirroring the field-mapping-table
// idea of a YAML-driven grammar file, the closest adjacent-domain pattern
// in the retrieved pack).
type grammarFile struct {
	Kinds map[string]KindRule `yaml:"kinds"`
}

// Grammar is a read-only, loaded record-definition grammar (spec.md §5,
// "the record-definition grammar [is] read-only once loaded").
type Grammar struct {
	kinds     map[string]KindRule
	fieldTrie *trie.Trie // every known field name, across every kind, for did-you-mean.
}

// Load parses a record-definition grammar from r. A caller may load two
// distinct grammars from two distinct sources: one used for the builder's
// own default-field validation, and optionally a stricter one used only
// when explicitly linting (spec.md §6, "Optional a record-definition file
// for grammar linting").
func Load(r io.Reader) (*Grammar, error) {
	var gf grammarFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&gf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing record-definition grammar: %w", err)
	}

	g := &Grammar{kinds: gf.Kinds, fieldTrie: trie.New()}
	seen := map[string]bool{}
	for _, kr := range g.kinds {
		for field := range kr.Fields {
			if !seen[field] {
				seen[field] = true
				g.fieldTrie.Add(field, nil)
			}
		}
	}
	return g, nil
}

// KnownKind reports whether kind is declared in the grammar.
func (g *Grammar) KnownKind(kind string) bool {
	_, ok := g.kinds[kind]
	return ok
}

// KnownField reports whether field is a legal field name for kind.
func (g *Grammar) KnownField(kind, field string) bool {
	kr, ok := g.kinds[kind]
	if !ok {
		return false
	}
	_, ok = kr.Fields[field]
	return ok
}

// ChoiceValues returns the declared legal values for (kind, field), and
// whether that field is choice-constrained at all.
func (g *Grammar) ChoiceValues(kind, field string) ([]string, bool) {
	kr, ok := g.kinds[kind]
	if !ok {
		return nil, false
	}
	fr, ok := kr.Fields[field]
	if !ok || len(fr.Choices) == 0 {
		return nil, false
	}
	return fr.Choices, true
}

// SuggestField returns a short list of known field names sharing field's
// first two characters, for an unknown-field diagnostic, or nil if field
// is too short or nothing matches.
func (g *Grammar) SuggestField(field string) []string {
	if len(field) < 2 {
		return nil
	}
	matches := g.fieldTrie.PrefixSearch(field[:2])
	sort.Strings(matches)
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}
