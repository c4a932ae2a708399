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

// Canonical I/O directions (spec.md §3, "io" key).
const (
	DirInput  = "input"
	DirOutput = "output"
)

// NormalizeIO maps an "io" value's accepted synonyms onto the two
// canonical directions: "i"/"input"/"ro" -> input, "o"/"output"/"rw"/"io"
// -> output.
func NormalizeIO(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "i", "input", "ro":
		return DirInput, nil
	case "o", "output", "rw", "io":
		return DirOutput, nil
	default:
		return "", fmt.Errorf("unrecognized io direction %q", value)
	}
}

// RateMethod describes a "<rate>{s|Hz} [method]" directive shared by the
// "update" and "archive" keys.
type RateMethod struct {
	PeriodSeconds float64
	Method        string
}

// ParseUpdate parses an "update" value into a period and a poll/notify
// method, defaulting to poll when no method token is present (spec.md
// §3, "update").
func ParseUpdate(value string) (RateMethod, error) {
	return parseRateMethod(value, "poll", map[string]string{"poll": "poll", "notify": "notify"})
}

// ParseArchive parses an "archive" value into a period and a
// scan/monitor method, defaulting to scan when no method token is
// present (spec.md §3, "archive").
func ParseArchive(value string) (RateMethod, error) {
	return parseRateMethod(value, "scan", map[string]string{"scan": "scan", "monitor": "monitor"})
}

func parseRateMethod(value, defaultMethod string, methods map[string]string) (RateMethod, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return RateMethod{}, fmt.Errorf("empty rate directive")
	}
	// Accept a unit separated from its number, e.g. "2 Hz".
	if len(fields) > 1 {
		if unit := strings.ToLower(fields[1]); unit == "s" || unit == "hz" {
			fields = append([]string{fields[0] + fields[1]}, fields[2:]...)
		}
	}

	period, err := parseRate(fields[0])
	if err != nil {
		return RateMethod{}, err
	}

	method := defaultMethod
	if len(fields) > 1 {
		m, ok := methods[strings.ToLower(fields[1])]
		if !ok {
			return RateMethod{}, fmt.Errorf("unrecognized rate method %q", fields[1])
		}
		method = m
	}
	return RateMethod{PeriodSeconds: period, Method: method}, nil
}

// parseRate parses a "<number>s" or "<number>Hz" token into a period in
// seconds.
func parseRate(tok string) (float64, error) {
	lower := strings.ToLower(tok)
	switch {
	case strings.HasSuffix(lower, "hz"):
		numStr := strings.TrimSpace(tok[:len(tok)-2])
		hz, err := strconv.ParseFloat(numStr, 64)
		if err != nil || hz <= 0 {
			return 0, fmt.Errorf("invalid rate %q", tok)
		}
		return 1 / hz, nil
	case strings.HasSuffix(lower, "s"):
		numStr := strings.TrimSpace(tok[:len(tok)-1])
		s, err := strconv.ParseFloat(numStr, 64)
		if err != nil || s <= 0 {
			return 0, fmt.Errorf("invalid rate %q", tok)
		}
		return s, nil
	default:
		return 0, fmt.Errorf("rate %q missing unit (expected s or Hz)", tok)
	}
}

// SplitField splits a "field" value at the first whitespace into a
// field name and its value (spec.md §3, "field").
func SplitField(value string) (name, fieldValue string, err error) {
	fields := strings.SplitN(strings.TrimSpace(value), " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return "", "", fmt.Errorf("empty field directive")
	}
	name = fields[0]
	if len(fields) == 2 {
		fieldValue = strings.TrimSpace(fields[1])
	}
	return name, fieldValue, nil
}
