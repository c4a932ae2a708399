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
	"fmt"
	"strconv"

	"github.com/ctrlio/tcrecgen/chain"
	"github.com/ctrlio/tcrecgen/genutil"
	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/merge"
	"github.com/ctrlio/tcrecgen/pragma"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

// archiveElementThreshold is the array element count above which no
// archive descriptor is emitted (spec.md §4.F.5).
const archiveElementThreshold = 1000

// defaultFloatPrecision is PREC's default value, absent a field:
// override (spec.md §4.F.2).
const defaultFloatPrecision = "3"

// Build produces the record package for one chain's merged configuration,
// or (nil, false) if the leaf type is unsupported or the resulting name
// exceeds the configured maximum (spec.md §4.F, §4.F.7). Every local
// failure is reported on report rather than returned as an error, so the
// caller can continue with the next configuration (spec.md §7).
func Build(c *chain.Chain, cfg *merge.Config, opts genutil.Options, report *diag.Report) (*Package, bool) {
	t, ok := transportTable[c.LeafFamily]
	if !ok {
		report.Add(diag.Diagnostic{Kind: diag.UnsupportedType, TCName: c.TCName(), Message: "unsupported leaf type for record emission"})
		return nil, false
	}

	isWaveform := c.LeafFamily == tcmodel.FamilyString || (c.LeafArray != nil && c.LeafArray.ElementCount() > 1)

	if genutil.CheckNameLength(cfg.PV, opts.MaxRecordNameLength) {
		report.Add(diag.Diagnostic{Kind: diag.InvalidChain, TCName: c.TCName(), Message: fmt.Sprintf("record name %q exceeds maximum length %d", cfg.PV, opts.MaxRecordNameLength)})
		return nil, false
	}

	pkg := &Package{Direction: cfg.Direction}

	switch cfg.Direction {
	case pragma.DirInput:
		pkg.Records = append(pkg.Records, buildRecord(c, cfg, t, isWaveform, cfg.PV, false /* isReadback */, opts, report))
	case pragma.DirOutput:
		pkg.Records = append(pkg.Records, buildRecord(c, cfg, t, isWaveform, cfg.PV, false, opts, report))
		rbv := genutil.ReadbackName(cfg.PV)
		if genutil.CheckNameLength(rbv, opts.MaxRecordNameLength) {
			report.Add(diag.Diagnostic{Kind: diag.InvalidChain, TCName: c.TCName(), Message: fmt.Sprintf("readback name %q exceeds maximum length %d", rbv, opts.MaxRecordNameLength)})
		} else {
			pkg.Records = append(pkg.Records, buildReadback(c, cfg, t, isWaveform, rbv, opts))
		}
	default:
		report.Add(diag.Diagnostic{Kind: diag.InvalidChain, TCName: c.TCName(), Message: "no io direction in merged configuration"})
		return nil, false
	}

	return pkg, true
}

func buildRecord(c *chain.Chain, cfg *merge.Config, t transport, isWaveform bool, pv string, readback bool, opts genutil.Options, report *diag.Report) Record {
	isOutput := cfg.Direction == pragma.DirOutput && !readback
	kind := recordKind(t, isWaveform, isOutput)
	kind = applyTypeOverride(kind, cfg.Type, readback, c.TCName(), report)

	rec := Record{Kind: kind, PV: pv, Fields: map[string]string{}, TCName: c.TCName()}
	rec.Fields["DESC"] = c.TCName()

	dtyp := scalarOrArrayDTYP(t, isWaveform, isOutput)
	rec.Fields["DTYP"] = dtyp

	scan := genutil.DefaultScanRate
	if cfg.Update != nil {
		if cfg.Update.Method == "notify" {
			scan = "I/O Intr"
		} else {
			scan = genutil.NearestScanRate(cfg.Update.PeriodSeconds)
		}
	}
	rec.Fields["SCAN"] = scan

	linkField := "INP"
	if isOutput {
		linkField = "OUT"
	}
	rec.Fields[linkField] = fmt.Sprintf("@asyn($(PORT),0)%s", c.TCName())

	if isWaveform {
		rec.Fields["NELM"] = strconv.Itoa(waveformElementCount(c))
		rec.Fields["FTVL"] = t.ftvl
	}

	if t.scalarDTYP == "asynFloat64" && !isWaveform {
		rec.Fields["PREC"] = defaultFloatPrecision
	}

	if !isOutput {
		rec.Fields["ASG"] = "NO_WRITE"
	}

	if isOutput && len(unionFields(defaultAutosaveFields(kind, isOutput), cfg.AutosavePass0, cfg.AutosaveOutputPass0)) > 0 {
		rec.Fields["PINI"] = "YES"
	}

	if cfg.Scale != "" {
		rec.Fields["ASLO"] = cfg.Scale
	}
	if cfg.Offset != "" {
		rec.Fields["AOFF"] = cfg.Offset
	}

	sigil := macroSigil(cfg, opts)
	if cfg.Link != "" {
		value := genutil.SubstituteMacro(cfg.Link, sigil)
		if isOutput {
			rec.Fields["DOL"] = value
		} else {
			rec.Fields["INP"] = value
		}
	}

	for name, value := range cfg.Fields {
		rec.Fields[name] = genutil.SubstituteMacro(value, sigil)
	}

	applyAutosaveInfos(&rec, cfg, kind, isOutput)

	return rec
}

// buildReadback builds the paired "_RBV" input record for a writable
// output (spec.md §3, "Readback (_RBV)"; §4.F.2, "_RBV has ASG=NO_WRITE").
func buildReadback(c *chain.Chain, cfg *merge.Config, t transport, isWaveform bool, pv string, opts genutil.Options) Record {
	kind := recordKind(t, isWaveform, false)
	rec := Record{Kind: kind, PV: pv, Fields: map[string]string{}, TCName: c.TCName()}
	rec.Fields["DESC"] = c.TCName()
	rec.Fields["DTYP"] = scalarOrArrayDTYP(t, isWaveform, false)
	rec.Fields["SCAN"] = "I/O Intr"
	rec.Fields["INP"] = fmt.Sprintf("@asyn($(PORT),0)%s", c.TCName())
	rec.Fields["ASG"] = "NO_WRITE"
	if isWaveform {
		rec.Fields["NELM"] = strconv.Itoa(waveformElementCount(c))
		rec.Fields["FTVL"] = t.ftvl
	}
	if t.scalarDTYP == "asynFloat64" && !isWaveform {
		rec.Fields["PREC"] = defaultFloatPrecision
	}
	applyAutosaveInfos(&rec, cfg, kind, false)
	return rec
}

// macroSigil returns the macro sigil to recognize when substituting
// link/field values, preferring the per-pragma "macro_character:"
// override (cfg.MacroChar) over the CLI-wide default (opts.MacroChar)
// (spec.md §3, "macro_character", "Single character acting as macro
// sigil in this pragma").
func macroSigil(cfg *merge.Config, opts genutil.Options) byte {
	if cfg.MacroChar != 0 {
		return cfg.MacroChar
	}
	return opts.MacroChar
}

// applyTypeOverride honors an explicit "type:" record-kind override
// over the inferred kind (spec.md §9 Open Question: "the spec treats
// the explicit override as authoritative but surfaces a warning when
// the implied and explicit kinds disagree"). The override never
// applies to a generated "_RBV" readback, which is always an input
// record by construction regardless of the primary record's kind.
func applyTypeOverride(inferred, override string, readback bool, tcname string, report *diag.Report) string {
	if override == "" || readback {
		return inferred
	}
	if override != inferred {
		report.Add(diag.Diagnostic{
			Kind:    diag.InvalidChain,
			TCName:  tcname,
			Warning: true,
			Message: fmt.Sprintf("explicit type override %q disagrees with inferred record kind %q; using the override", override, inferred),
		})
	}
	return override
}

func recordKind(t transport, isWaveform, isOutput bool) string {
	if isWaveform {
		return "waveform"
	}
	if isOutput {
		return t.scalarKindOut
	}
	return t.scalarKindIn
}

func scalarOrArrayDTYP(t transport, isWaveform, isOutput bool) string {
	if isWaveform {
		if isOutput {
			return t.arrayDTYPOut
		}
		return t.arrayDTYPIn
	}
	return t.scalarDTYP
}

func waveformElementCount(c *chain.Chain) int {
	if c.LeafFamily == tcmodel.FamilyString {
		if c.LeafArray != nil {
			return c.LeafStrLen * c.LeafArray.ElementCount()
		}
		return c.LeafStrLen
	}
	if c.LeafArray != nil {
		return c.LeafArray.ElementCount()
	}
	return 1
}

// applyAutosaveInfos emits the info(autosaveFields_pass{0,1}, ...) nodes
// for rec. Pass-0 always carries the default fields for kind (spec.md
// §4.F.4: "description field, alarm severities and limits on all
// relevant records, and control-limit fields on outputs by default";
// §8 boundary scenario 2 requires these even absent any explicit
// "autosave_pass0:" pragma) unioned with whatever the merged pragma
// added explicitly. Pass-1 has no default list; it reflects only what
// the pragma requested.
func applyAutosaveInfos(rec *Record, cfg *merge.Config, kind string, isOutput bool) {
	add := func(key string, lists ...[]string) {
		fields := unionFields(lists...)
		if len(fields) == 0 {
			return
		}
		rec.Infos = append(rec.Infos, Info{Key: key, Value: joinFields(fields)})
	}
	if isOutput {
		add("autosaveFields_pass0", defaultAutosaveFields(kind, isOutput), cfg.AutosavePass0, cfg.AutosaveOutputPass0)
		add("autosaveFields_pass1", cfg.AutosavePass1, cfg.AutosaveOutputPass1)
	} else {
		add("autosaveFields_pass0", defaultAutosaveFields(kind, isOutput), cfg.AutosavePass0, cfg.AutosaveInputPass0)
		add("autosaveFields_pass1", cfg.AutosavePass1, cfg.AutosaveInputPass1)
	}
}

// defaultAutosaveFields returns the autosave pass-0 fields every record
// of kind carries even without an explicit "autosave_pass0:" pragma:
// its description, its alarm severities and limits where the kind has
// them, and its control limits when it is a writable output (spec.md
// §4.F.4).
func defaultAutosaveFields(kind string, isOutput bool) []string {
	fields := []string{"DESC"}
	switch kind {
	case "ai", "ao":
		fields = append(fields, "HIHI", "HIGH", "LOW", "LOLO", "HHSV", "HSV", "LSV", "LLSV", "HOPR", "LOPR")
	case "longin", "longout":
		fields = append(fields, "HIHI", "HIGH", "LOW", "LOLO", "HHSV", "HSV", "LSV", "LLSV")
	}
	if isOutput {
		switch kind {
		case "ao", "longout":
			fields = append(fields, "DRVH", "DRVL")
		}
	}
	return fields
}

// unionFields concatenates lists into a single slice with duplicates
// removed, keeping each field's first position.
func unionFields(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, f := range list {
			if seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func joinFields(fields []string) string {
	out := fields[0]
	for _, f := range fields[1:] {
		out += " " + f
	}
	return out
}
