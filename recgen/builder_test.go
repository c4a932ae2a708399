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

package recgen

import (
	"strings"
	"testing"

	"github.com/ctrlio/tcrecgen/chain"
	"github.com/ctrlio/tcrecgen/genutil"
	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/merge"
	"github.com/ctrlio/tcrecgen/pragma"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

func testChain(name string, family tcmodel.Family) *chain.Chain {
	return &chain.Chain{
		Levels:     []chain.Level{{Name: name}},
		LeafFamily: family,
	}
}

func TestBuildSimpleScalar(t *testing.T) {
	c := testChain("Main.scale", tcmodel.FamilyReal64)
	cfg := &merge.Config{PV: "TEST:SCALE", Direction: pragma.DirInput}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if len(pkg.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(pkg.Records))
	}
	rec := pkg.Records[0]
	if rec.Kind != "ai" {
		t.Errorf("Kind = %q, want ai", rec.Kind)
	}
	if rec.PV != "TEST:SCALE" {
		t.Errorf("PV = %q, want TEST:SCALE", rec.PV)
	}
	if rec.Fields["DTYP"] != "asynFloat64" {
		t.Errorf("DTYP = %q, want asynFloat64", rec.Fields["DTYP"])
	}
	if rec.Fields["SCAN"] != "1 second" {
		t.Errorf("SCAN = %q, want \"1 second\"", rec.Fields["SCAN"])
	}
	if rec.Fields["ASG"] != "NO_WRITE" {
		t.Errorf("ASG = %q, want NO_WRITE", rec.Fields["ASG"])
	}
	if !strings.Contains(rec.Fields["INP"], "Main.scale") {
		t.Errorf("INP = %q, want reference to Main.scale", rec.Fields["INP"])
	}
}

func TestBuildBidirectionalInteger(t *testing.T) {
	// Matches the "pv: TEST:ULIMIT; io: io" boundary scenario literally:
	// no autosave_pass0 pragma at all, yet both records must still carry
	// default autosave pass-0 entries for description, alarm severities,
	// and limits.
	c := testChain("Main.upper_limit", tcmodel.FamilyInt32)
	cfg := &merge.Config{
		PV:        "TEST:ULIMIT",
		Direction: pragma.DirOutput,
	}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if len(pkg.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(pkg.Records))
	}
	out, in := pkg.Records[0], pkg.Records[1]
	if out.Kind != "longout" || out.PV != "TEST:ULIMIT" {
		t.Errorf("out = %+v", out)
	}
	if in.Kind != "longin" || in.PV != "TEST:ULIMIT_RBV" {
		t.Errorf("in = %+v", in)
	}
	if in.Fields["ASG"] != "NO_WRITE" {
		t.Errorf("readback ASG = %q, want NO_WRITE", in.Fields["ASG"])
	}
	if out.Fields["PINI"] != "YES" {
		t.Errorf("out PINI = %q, want YES", out.Fields["PINI"])
	}

	wantOut := map[string]bool{"DESC": true, "HIHI": true, "HIGH": true, "LOW": true, "LOLO": true, "HHSV": true, "HSV": true, "LSV": true, "LLSV": true, "DRVH": true, "DRVL": true}
	assertAutosavePass0Fields(t, out, wantOut)

	wantIn := map[string]bool{"DESC": true, "HIHI": true, "HIGH": true, "LOW": true, "LOLO": true, "HHSV": true, "HSV": true, "LSV": true, "LLSV": true}
	assertAutosavePass0Fields(t, in, wantIn)
}

// assertAutosavePass0Fields checks rec's autosaveFields_pass0 info node
// contains exactly the given set of field names, order aside.
func assertAutosavePass0Fields(t *testing.T, rec Record, want map[string]bool) {
	t.Helper()
	for _, info := range rec.Infos {
		if info.Key != "autosaveFields_pass0" {
			continue
		}
		got := strings.Fields(info.Value)
		if len(got) != len(want) {
			t.Errorf("autosaveFields_pass0 = %v, want fields %v", got, want)
			return
		}
		for _, f := range got {
			if !want[f] {
				t.Errorf("autosaveFields_pass0 contains unexpected field %q (full list %v)", f, got)
			}
		}
		return
	}
	t.Errorf("%s: Infos missing autosaveFields_pass0, got %v", rec.PV, rec.Infos)
}

func TestBuildNotifyUpdate(t *testing.T) {
	c := testChain("Main.fast", tcmodel.FamilyReal64)
	cfg := &merge.Config{
		PV:        "TEST:FAST",
		Direction: pragma.DirInput,
		Update:    &pragma.RateMethod{PeriodSeconds: 0.1, Method: "notify"},
	}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if got := pkg.Records[0].Fields["SCAN"]; got != "I/O Intr" {
		t.Errorf("SCAN = %q, want \"I/O Intr\"", got)
	}
}

func TestBuildMacroSubstitution(t *testing.T) {
	c := testChain("Main.other", tcmodel.FamilyInt32)
	cfg := &merge.Config{
		PV:        "TEST:OTHER",
		Direction: pragma.DirOutput,
		Link:      "@(PREFIX)OTHER:PV",
	}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if got := pkg.Records[0].Fields["DOL"]; got != "$(PREFIX)OTHER:PV" {
		t.Errorf("DOL = %q, want \"$(PREFIX)OTHER:PV\"", got)
	}
}

func TestBuildPerPragmaMacroCharacterWinsOverCLIDefault(t *testing.T) {
	c := testChain("Main.other", tcmodel.FamilyInt32)
	cfg := &merge.Config{
		PV:        "TEST:OTHER",
		Direction: pragma.DirOutput,
		Link:      "#(PREFIX)OTHER:PV",
		MacroChar: '#',
	}
	opts := genutil.NewOptions() // opts.MacroChar defaults to '@', not '#'.
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if got := pkg.Records[0].Fields["DOL"]; got != "$(PREFIX)OTHER:PV" {
		t.Errorf("DOL = %q, want \"$(PREFIX)OTHER:PV\" substituted using the pragma-level sigil", got)
	}
}

func TestBuildOversizedName(t *testing.T) {
	c := testChain("Main.x", tcmodel.FamilyInt32)
	cfg := &merge.Config{PV: strings.Repeat("X", 64), Direction: pragma.DirInput}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	_, ok := Build(c, cfg, opts, report)
	if ok {
		t.Fatal("Build: ok = true, want false for oversized name")
	}
	found := false
	for _, d := range report.Diagnostics() {
		if d.Kind == diag.InvalidChain {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want an InvalidChain entry", report.Diagnostics())
	}
}

func TestBuildTypeOverrideWinsButWarnsOnMismatch(t *testing.T) {
	c := testChain("Main.scale", tcmodel.FamilyReal64)
	cfg := &merge.Config{PV: "TEST:SCALE", Direction: pragma.DirInput, Type: "longin"}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if got := pkg.Records[0].Kind; got != "longin" {
		t.Errorf("Kind = %q, want the explicit override %q", got, "longin")
	}

	var sawWarning bool
	for _, d := range report.Diagnostics() {
		if d.Kind == diag.InvalidChain && d.Warning {
			sawWarning = true
		}
	}
	if !sawWarning {
		t.Errorf("diagnostics = %v, want a non-fatal warning about the type override disagreeing with the inferred kind", report.Diagnostics())
	}
}

func TestBuildTypeOverrideMatchingInferredKindIsSilent(t *testing.T) {
	c := testChain("Main.scale", tcmodel.FamilyReal64)
	cfg := &merge.Config{PV: "TEST:SCALE", Direction: pragma.DirInput, Type: "ai"}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	pkg, ok := Build(c, cfg, opts, report)
	if !ok {
		t.Fatalf("Build: ok = false, diagnostics: %v", report.Diagnostics())
	}
	if got := pkg.Records[0].Kind; got != "ai" {
		t.Errorf("Kind = %q, want ai", got)
	}
	if report.Count() != 0 {
		t.Errorf("diagnostics = %v, want none when the override matches the inferred kind", report.Diagnostics())
	}
}

func TestBuildUnsupportedType(t *testing.T) {
	c := testChain("Main.wide", tcmodel.FamilyUnsupportedWide)
	cfg := &merge.Config{PV: "TEST:WIDE", Direction: pragma.DirInput}
	opts := genutil.NewOptions()
	report := diag.NewReport(false)

	_, ok := Build(c, cfg, opts, report)
	if ok {
		t.Fatal("Build: ok = true, want false for unsupported type")
	}
	if report.Count() != 1 || report.Diagnostics()[0].Kind != diag.UnsupportedType {
		t.Errorf("diagnostics = %v, want one UnsupportedType entry", report.Diagnostics())
	}
}
