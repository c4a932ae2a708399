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

// Package render emits the final record-database text and archive-
// descriptor text from a sequence of record packages: template-driven,
// deterministic and locale-independent (spec component H).
package render

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/ctrlio/tcrecgen/genutil"
	"github.com/ctrlio/tcrecgen/recgen"
)

// templateFuncs mirrors the small helper-function idiom the rest of this
// code generation pipeline's teacher lineage uses alongside text/template.
var templateFuncs = template.FuncMap{
	"quote": quoteField,
}

const recordTemplateSrc = `{{ range . }}record({{ .Kind }}, {{ quote .PV }}) {
{{- range .Fields }}
    field({{ .Name }}, {{ quote .Value }})
{{- end }}
{{- range .Infos }}
    info({{ .Key }}, {{ quote .Value }})
{{- end }}
}
{{ end -}}`

var recordTemplate = template.Must(template.New("record-database").Funcs(templateFuncs).Parse(recordTemplateSrc))

// renderedField is one (name, value) pair in priority order, the shape
// the record template ranges over.
type renderedField struct {
	Name  string
	Value string
}

// renderedRecord is one record.Record flattened into the template's
// expected shape: fields already sorted by the fixed priority table
// (spec.md §4.F, "Ordering for deterministic output").
type renderedRecord struct {
	Kind   string
	PV     string
	Fields []renderedField
	Infos  []recgen.Info
}

// Render flattens every record across packages, sorts it into the
// required deterministic global order, and renders the record-database
// text. Records are sorted by source tcname first (stable, so an
// output/readback pair stays adjacent), then by PV to break ties between
// records sharing a tcname.
func Render(packages []*recgen.Package) (string, error) {
	all := flattenSorted(packages)

	rendered := make([]renderedRecord, 0, len(all))
	for _, rec := range all {
		rendered = append(rendered, renderedRecord{
			Kind:   rec.Kind,
			PV:     rec.PV,
			Fields: sortedFields(rec.Fields),
			Infos:  rec.Infos,
		})
	}

	var buf bytes.Buffer
	if err := recordTemplate.Execute(&buf, rendered); err != nil {
		return "", fmt.Errorf("rendering record database: %w", err)
	}
	return buf.String(), nil
}

// RenderArchive emits the archive-descriptor text: one line per entry,
// "<pv> <period> <method> [<extra fields>]", sorted by PV for the same
// determinism guarantee as the record database (spec.md §4.H).
func RenderArchive(entries []recgen.ArchiveEntry) string {
	sorted := append([]recgen.ArchiveEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PV < sorted[j].PV })

	var buf bytes.Buffer
	for _, e := range sorted {
		fmt.Fprintf(&buf, "%s %s %s", e.PV, formatArchivePeriod(e.Period), e.Method)
		for _, extra := range e.Extra {
			buf.WriteByte(' ')
			buf.WriteString(extra)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func formatArchivePeriod(period float64) string {
	return fmt.Sprintf("%g", period)
}

func flattenSorted(packages []*recgen.Package) []recgen.Record {
	var all []recgen.Record
	for _, pkg := range packages {
		all = append(all, pkg.Records...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].TCName != all[j].TCName {
			return all[i].TCName < all[j].TCName
		}
		return all[i].PV < all[j].PV
	})
	return all
}

func sortedFields(fields map[string]string) []renderedField {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	names = genutil.SortFieldNames(names)

	out := make([]renderedField, 0, len(names))
	for _, name := range names {
		out = append(out, renderedField{Name: name, Value: fields[name]})
	}
	return out
}

// quoteField renders a field value EPICS-db style: double-quoted, with
// any internal double quote backslash-escaped (spec.md §4.H).
func quoteField(v string) string {
	var buf bytes.Buffer
	buf.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '"' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
	buf.WriteByte('"')
	return buf.String()
}
