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
	"strings"

	"github.com/ctrlio/tcrecgen/chain"
	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/merge"
	"github.com/ctrlio/tcrecgen/pragma"
)

// ArchiveEntry is one line of the archive-descriptor text (spec.md §6,
// "<pv> <period> <method> [<extra fields>]").
type ArchiveEntry struct {
	PV     string
	Period float64
	Method string
	Extra  []string
}

// ApplyArchive appends an info(archive, ...) node to pkg's primary record
// and returns the archive-descriptor entry for it, unless the leaf is an
// array exceeding the archive threshold (spec.md §4.F.5) in which case it
// reports diag.ArchiveOmitted and returns ok=false.
//
// Absent an explicit "archive:" pragma, archive settings are defaulted
// from the "update:" directive (spec.md §1, "archive settings" among
// the default-inference rules; §8 boundary scenario 6: "update: 10Hz
// notify" alone yields an archive descriptor with period <= 0.1s,
// method monitor). A poll update defaults to method "scan"; a notify
// update defaults to method "monitor". With neither an explicit
// "archive:" nor an "update:" pragma, no archive descriptor is
// inferred.
func ApplyArchive(pkg *Package, c *chain.Chain, cfg *merge.Config, report *diag.Report) (ArchiveEntry, bool) {
	archive := cfg.Archive
	if archive == nil {
		archive = defaultArchiveFromUpdate(cfg.Update)
	}
	if archive == nil || len(pkg.Records) == 0 {
		return ArchiveEntry{}, false
	}

	if c.LeafArray != nil && c.LeafArray.ElementCount() > archiveElementThreshold {
		report.Add(diag.Diagnostic{
			Kind:    diag.ArchiveOmitted,
			TCName:  c.TCName(),
			Message: fmt.Sprintf("archive descriptor omitted: array element count %d exceeds threshold %d", c.LeafArray.ElementCount(), archiveElementThreshold),
		})
		return ArchiveEntry{}, false
	}

	period := archive.PeriodSeconds
	if cfg.Update != nil && period < cfg.Update.PeriodSeconds {
		period = cfg.Update.PeriodSeconds
	}

	entry := ArchiveEntry{PV: pkg.Records[0].PV, Period: period, Method: archive.Method, Extra: cfg.ArchiveFields}

	value := fmt.Sprintf("%s %s", formatPeriod(period), entry.Method)
	if len(cfg.ArchiveFields) > 0 {
		value += " " + strings.Join(cfg.ArchiveFields, " ")
	}
	pkg.Records[0].Infos = append(pkg.Records[0].Infos, Info{Key: "archive", Value: value})

	return entry, true
}

func formatPeriod(period float64) string {
	return fmt.Sprintf("%g", period)
}

// defaultArchiveFromUpdate synthesizes an archive directive from the
// update directive when no explicit "archive:" pragma is present, or
// nil if there is nothing to default from.
func defaultArchiveFromUpdate(update *pragma.RateMethod) *pragma.RateMethod {
	if update == nil {
		return nil
	}
	method := "scan"
	if update.Method == "notify" {
		method = "monitor"
	}
	return &pragma.RateMethod{PeriodSeconds: update.PeriodSeconds, Method: method}
}
