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

// scanRate is one polled entry of the supported SCAN field value set
// (spec.md §4.F.2).
type scanRate struct {
	label  string
	period float64 // seconds
}

// scanRates is the supported SCAN value set, in ascending period order
// (fastest polled rate first), matching spec.md §4.F.2's literal list.
// "Passive" is not polled at all and is never chosen automatically; it is
// only ever set explicitly via a field override.
var scanRates = []scanRate{
	{".1 second", 0.1},
	{".2 second", 0.2},
	{".5 second", 0.5},
	{"1 second", 1},
	{"2 second", 2},
	{"5 second", 5},
	{"10 second", 10},
}

// DefaultScanRate is used when no update directive is present.
const DefaultScanRate = "1 second"

// NearestScanRate maps a polling period to the nearest supported SCAN
// value, rounding up to the next slower (larger-period) entry when period
// falls strictly between two supported rates (spec.md §4.F.2, §9 Open
// Questions). A period at or below the fastest supported rate maps to
// that rate; a period at or above the slowest supported rate maps to that
// rate, since there is nothing slower to round up to.
func NearestScanRate(period float64) string {
	for _, r := range scanRates {
		if period <= r.period {
			return r.label
		}
	}
	return scanRates[len(scanRates)-1].label
}
