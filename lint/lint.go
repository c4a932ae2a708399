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
	"fmt"
	"strings"

	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/recgen"
)

// Check validates every record in pkg against g: the record's kind must be
// known, every field name it carries must be legal for that kind, and any
// choice-constrained field's value must be among the declared choices
// (spec.md §4.G). A record that fails any check is dropped from the
// returned package unless report is in allow-errors mode, matching the
// rest of the pipeline's local-diagnostic behavior.
func Check(pkg *recgen.Package, g *Grammar, report *diag.Report) *recgen.Package {
	kept := make([]recgen.Record, 0, len(pkg.Records))
	for _, rec := range pkg.Records {
		if recordOK(rec, g, report) {
			kept = append(kept, rec)
		}
	}
	pkg.Records = kept
	return pkg
}

// recordOK runs every check for rec, appending a LintError diagnostic for
// each failure, and reports whether rec should remain in the package: true
// if it had no failures, or if every failure was demoted to a warning by
// allow-errors mode.
func recordOK(rec recgen.Record, g *Grammar, report *diag.Report) bool {
	before := report.Count()
	ok := true

	if !g.KnownKind(rec.Kind) {
		report.Add(diag.Diagnostic{
			Kind:    diag.LintError,
			Message: fmt.Sprintf("unknown record kind %q", rec.Kind),
			TCName:  rec.TCName,
		})
		ok = false
	} else {
		for field, value := range rec.Fields {
			if !g.KnownField(rec.Kind, field) {
				msg := fmt.Sprintf("unknown field %q for kind %q", field, rec.Kind)
				if suggestions := g.SuggestField(field); len(suggestions) > 0 {
					msg += fmt.Sprintf(" (did you mean one of: %s?)", strings.Join(suggestions, ", "))
				}
				report.Add(diag.Diagnostic{Kind: diag.LintError, Message: msg, TCName: rec.TCName})
				ok = false
				continue
			}
			if choices, constrained := g.ChoiceValues(rec.Kind, field); constrained && !contains(choices, value) {
				report.Add(diag.Diagnostic{
					Kind:    diag.LintError,
					Message: fmt.Sprintf("field %s=%q, want one of: %s", field, value, strings.Join(choices, ", ")),
					TCName:  rec.TCName,
				})
				ok = false
			}
		}
	}

	if ok {
		return true
	}
	// Every diagnostic added above for this record was subject to the
	// same allow-errors demotion as the rest of the pipeline; if none of
	// them ended up counted as a real error, the record survives.
	for _, d := range report.Diagnostics()[before:] {
		if !d.Warning {
			return false
		}
	}
	return true
}

func contains(choices []string, v string) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}
