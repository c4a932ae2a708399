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

package lint

import (
	"strings"
	"testing"
)

const testGrammarYAML = `
kinds:
  bi:
    fields:
      DESC: {}
      DTYP:
        choices: [asynInt32]
`

func TestLoadAndQuery(t *testing.T) {
	g, err := Load(strings.NewReader(testGrammarYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.KnownKind("bi") {
		t.Error("KnownKind(bi) = false, want true")
	}
	if g.KnownKind("bo") {
		t.Error("KnownKind(bo) = true, want false")
	}
	if !g.KnownField("bi", "DESC") {
		t.Error("KnownField(bi, DESC) = false, want true")
	}
	if g.KnownField("bi", "SCAN") {
		t.Error("KnownField(bi, SCAN) = true, want false")
	}
	choices, ok := g.ChoiceValues("bi", "DTYP")
	if !ok || len(choices) != 1 || choices[0] != "asynInt32" {
		t.Errorf("ChoiceValues(bi, DTYP) = %v, %v", choices, ok)
	}
	if _, ok := g.ChoiceValues("bi", "DESC"); ok {
		t.Error("ChoiceValues(bi, DESC) reported a constraint, want none")
	}
}

func TestSuggestField(t *testing.T) {
	g, err := Load(strings.NewReader(testGrammarYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := g.SuggestField("DT"); len(got) == 0 {
		t.Error("SuggestField(DT) = empty, want at least one match")
	}
	if got := g.SuggestField("D"); got != nil {
		t.Errorf("SuggestField(D) = %v, want nil for a too-short prefix", got)
	}
}

func TestDefaultGrammarCoversBuilderOutput(t *testing.T) {
	g := DefaultGrammar()
	for _, kind := range []string{"ai", "ao", "bi", "bo", "longin", "longout", "mbbi", "mbbo", "waveform"} {
		if !g.KnownKind(kind) {
			t.Errorf("DefaultGrammar: KnownKind(%s) = false, want true", kind)
		}
	}
	if !g.KnownField("ai", "DESC") {
		t.Error(`DefaultGrammar: KnownField("ai", "DESC") = false, want true`)
	}
}
