// Copyright 2017 Google Inc.
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

package pragma

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseArraySelector parses an "array" value: a comma-separated list of
// "N", "N..M", "N..", or "..M" selectors, against the full index range
// [lower, upper] of the array dimension being selected (spec.md §3,
// "array").
func ParseArraySelector(value string, lower, upper int) ([]int, error) {
	var out []int
	seen := map[int]bool{}
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lo, hi, err := parseSelectorToken(tok, lower, upper)
		if err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			if i < lower || i > upper {
				return nil, fmt.Errorf("array selector %q out of bounds [%d..%d]", tok, lower, upper)
			}
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	return out, nil
}

func parseSelectorToken(tok string, lower, upper int) (int, int, error) {
	if idx := strings.Index(tok, ".."); idx >= 0 {
		loStr := strings.TrimSpace(tok[:idx])
		hiStr := strings.TrimSpace(tok[idx+2:])
		lo, hi := lower, upper
		var err error
		if loStr != "" {
			if lo, err = strconv.Atoi(loStr); err != nil {
				return 0, 0, fmt.Errorf("invalid array selector %q: %w", tok, err)
			}
		}
		if hiStr != "" {
			if hi, err = strconv.Atoi(hiStr); err != nil {
				return 0, 0, fmt.Errorf("invalid array selector %q: %w", tok, err)
			}
		}
		return lo, hi, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid array selector %q: %w", tok, err)
	}
	return n, n, nil
}

// ExpandWidth returns the auto-sized digit width for a default "expand"
// suffix format, based on the highest index that must be represented
// (spec.md §3, "expand", default ":%.2d" auto-sized to array length).
func ExpandWidth(maxIndex int) int {
	width := 2
	for p := 100; p <= maxIndex; p *= 10 {
		width++
	}
	return width
}

// DefaultExpandFormat returns the default expand format string for the
// given auto-sized digit width, e.g. ":%.2d" for width 2.
func DefaultExpandFormat(width int) string {
	return fmt.Sprintf(":%%.%dd", width)
}

// FormatIndexSuffix renders index using the "expand" format string
// (e.g. ":%.2d"), which is passed to fmt.Sprintf as is.
func FormatIndexSuffix(format string, index int) string {
	return fmt.Sprintf(format, index)
}
