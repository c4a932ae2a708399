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

import "strings"

// attrPrefix opens the optional literal attribute framing
// that some authoring tools preserve verbatim in the source text:
// "{attribute 'pytmc' := ' ... '}" (spec.md §4.C).
const attrPrefix = "{attribute"

// Parse tokenizes raw pragma attribute text into an ordered Pragma.
//
// If raw is empty or contains only whitespace, Parse returns an empty
// Pragma and no error: missing pragmas cause no chain to be emitted
// further down the pipeline, but are not themselves a parse failure
// (spec.md §4.C).
//
// If raw carries the literal "{attribute 'pytmc' := '...'}" framing,
// that framing is stripped first. An unbalanced framing (an opening
// "{attribute" with no matching closing quote and brace) is the only
// condition under which Parse fails, returning a MalformedPragmaError.
func Parse(raw string) (Pragma, error) {
	body, err := stripFraming(raw)
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	// Semicolons are treated equivalently to newlines (spec.md §4.C).
	body = strings.ReplaceAll(body, ";", "\n")

	var out Pragma
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			// A line with no ':' carries no value; treat the whole
			// line as a valueless key so it is still visible to
			// later stages (e.g. bare "str" with no argument).
			out = append(out, Pair{Key: strings.TrimSpace(line)})
			continue
		}
		key := strings.TrimSpace(line[:idx])
		// Trim conservatively around the split: only the single space
		// immediately following ':' is consumed, preserving internal
		// whitespace within the value (spec.md §4.C).
		value := line[idx+1:]
		value = strings.TrimPrefix(value, " ")
		value = strings.TrimRight(value, " \t")
		out = append(out, Pair{Key: key, Value: value})
	}
	return out, nil
}

// stripFraming removes the "{attribute 'pytmc' := '...'}" wrapper if
// present, returning raw unchanged otherwise.
func stripFraming(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, attrPrefix) {
		return raw, nil
	}

	if !strings.HasSuffix(trimmed, "}") {
		return "", &MalformedPragmaError{Reason: "unterminated attribute framing"}
	}
	inner := trimmed[len(attrPrefix) : len(trimmed)-1]

	firstQuote := strings.IndexByte(inner, '\'')
	if firstQuote < 0 {
		return "", &MalformedPragmaError{Reason: "missing pragma name quote"}
	}
	rest := inner[firstQuote+1:]
	secondQuote := strings.IndexByte(rest, '\'')
	if secondQuote < 0 {
		return "", &MalformedPragmaError{Reason: "unterminated pragma name quote"}
	}
	rest = rest[secondQuote+1:]

	assignIdx := strings.Index(rest, ":=")
	if assignIdx < 0 {
		return "", &MalformedPragmaError{Reason: "missing ':=' after pragma name"}
	}
	rest = strings.TrimSpace(rest[assignIdx+2:])

	if !strings.HasPrefix(rest, "'") || !strings.HasSuffix(rest, "'") || len(rest) < 2 {
		return "", &MalformedPragmaError{Reason: "unbalanced pragma value quoting"}
	}
	return rest[1 : len(rest)-1], nil
}
