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

// Package tcrecgen is the library entry point that wires the whole
// compilation pipeline end to end: XML object graph, pragma parsing,
// chain walking, configuration merging, record package building, grammar
// linting, and rendering. cmd/tcrecgen is a thin CLI shim over it.
package tcrecgen

import (
	"fmt"
	"io"

	"github.com/ctrlio/tcrecgen/chain"
	"github.com/ctrlio/tcrecgen/genutil"
	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/lint"
	"github.com/ctrlio/tcrecgen/merge"
	"github.com/ctrlio/tcrecgen/recgen"
	"github.com/ctrlio/tcrecgen/render"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

// Result is the output of a full compile pass.
type Result struct {
	// RecordDatabase is the rendered record-database text (spec.md §6).
	RecordDatabase string
	// ArchiveDescriptor is the rendered archive-descriptor text.
	ArchiveDescriptor string
	// Report carries every diagnostic raised across the pass, in
	// recording order, regardless of whether the pass ultimately
	// failed.
	Report *diag.Report
}

// Compile reads a compiled controller-project description from src and
// runs it through every pipeline stage, producing a Result. It returns
// an error only for a fatal diagnostic (MalformedXml,
// InternalInvariantViolated) or, absent allow-errors mode, for any
// accumulated local diagnostic (spec.md §7). g selects the grammar used
// for both default-field validation and lint checks; pass
// lint.DefaultGrammar() absent an external record-definition file.
func Compile(src io.Reader, g *lint.Grammar, opts genutil.Options) (*Result, error) {
	report := diag.NewReport(opts.AllowErrors)

	root, err := tcmodel.Parse(src)
	if err != nil {
		report.Add(diag.Diagnostic{Kind: diag.MalformedXML, Message: err.Error()})
		return &Result{Report: report}, fmt.Errorf("parsing project description: %w", err)
	}

	resolver := tcmodel.NewResolver(root)

	var packages []*recgen.Package
	var archiveEntries []recgen.ArchiveEntry

	for _, sym := range tcmodel.AllSymbols(root) {
		chain.Walk(sym, resolver, report, func(c *chain.Chain) bool {
			compileChain(c, opts, report, &packages, &archiveEntries)
			return true
		})
	}

	for i, pkg := range packages {
		packages[i] = lint.Check(pkg, g, report)
	}

	if report.HasFatal() {
		return &Result{Report: report}, fmt.Errorf("compilation failed: %s", diag.ToString(diagsToErrors(report.Diagnostics())))
	}
	if report.HasErrors() {
		return &Result{Report: report}, fmt.Errorf("compilation reported %d error(s); rerun with allow-errors to continue past them", errorCount(report))
	}

	dbText, err := render.Render(packages)
	if err != nil {
		report.Add(diag.Diagnostic{Kind: diag.InternalInvariantViolated, Message: err.Error()})
		return &Result{Report: report}, fmt.Errorf("rendering record database: %w", err)
	}

	return &Result{
		RecordDatabase:    dbText,
		ArchiveDescriptor: render.RenderArchive(archiveEntries),
		Report:            report,
	}, nil
}

// compileChain merges c's per-level pragmas into one or more
// configurations, builds the record package for each, and collects any
// archive-descriptor entry it produces. Every stage's local failures are
// reported on report; compileChain never aborts the outer walk.
func compileChain(c *chain.Chain, opts genutil.Options, report *diag.Report, packages *[]*recgen.Package, archiveEntries *[]recgen.ArchiveEntry) {
	configs, err := merge.Merge(c)
	if err != nil {
		if ic, ok := err.(*merge.InvalidChainError); ok {
			report.Add(diag.Diagnostic{Kind: diag.InvalidChain, TCName: c.TCName(), Message: ic.Error()})
		} else {
			report.Add(diag.Diagnostic{Kind: diag.InvalidChain, TCName: c.TCName(), Message: err.Error()})
		}
		return
	}

	for _, cfg := range configs {
		pkg, ok := recgen.Build(c, cfg, opts, report)
		if !ok {
			continue
		}
		if entry, ok := recgen.ApplyArchive(pkg, c, cfg, report); ok {
			*archiveEntries = append(*archiveEntries, entry)
		}
		*packages = append(*packages, pkg)
	}
}

func errorCount(report *diag.Report) int {
	n := 0
	for _, d := range report.Diagnostics() {
		if !d.Warning {
			n++
		}
	}
	return n
}

func diagsToErrors(diags []diag.Diagnostic) []error {
	out := make([]error, 0, len(diags))
	for _, d := range diags {
		if !d.Warning {
			out = append(out, d)
		}
	}
	return out
}
