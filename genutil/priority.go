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

package genutil

import "sort"

// fieldTier groups field names into the semantic priority classes of
// spec.md §4.F, "Ordering for deterministic output": record-kind
// selectors first, then alarm/conversion fields, then everything else
// alphabetically.
var fieldTier = map[string]int{
	"DTYP": 0, "SCAN": 0, "INP": 0, "OUT": 0,
	"HIGH": 1, "HIHI": 1, "LOW": 1, "LOLO": 1, "HSV": 1, "HHSV": 1, "LSV": 1, "LLSV": 1,
	"HOPR": 1, "LOPR": 1, "DRVH": 1, "DRVL": 1, "EGU": 1, "PREC": 1, "ASLO": 1, "AOFF": 1,
}

const defaultFieldTier = 2

// SortFieldNames orders names by the priority table above: record-kind
// selectors first, then alarm/conversion fields, then the remainder
// alphabetically within each tier.
func SortFieldNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := tierOf(out[i]), tierOf(out[j])
		if ti != tj {
			return ti < tj
		}
		return out[i] < out[j]
	})
	return out
}

func tierOf(name string) int {
	if t, ok := fieldTier[name]; ok {
		return t
	}
	return defaultFieldTier
}
