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

package merge

import (
	"fmt"
	"strings"

	"github.com/ctrlio/tcrecgen/chain"
	"github.com/ctrlio/tcrecgen/pragma"
)

// segment is one "pv"-delimited slice of a single level's pragma.
type segment []pragma.Pair

// InvalidChainError is raised when a merged chain has no pv, or carries
// conflicting array/expand directives at more than one level (spec.md
// §4.E).
type InvalidChainError struct {
	TCName string
	Reason string
}

func (e *InvalidChainError) Error() string {
	return fmt.Sprintf("invalid chain %q: %s", e.TCName, e.Reason)
}

// Merge expands c's chain into the one or more concrete Configs it
// contributes, per spec.md §4.E. Each element of c's per-level pragma
// is split at every "pv" key; levels that declare more than one pv
// segment fan this chain out into that many configurations, combined
// in declaration order with every other (typically single-segment)
// level.
func Merge(c *chain.Chain) ([]*Config, error) {
	segsPerLevel := make([][]segment, len(c.Levels))
	for i, lvl := range c.Levels {
		segsPerLevel[i] = splitSegments(lvl.Pragma)
	}

	combos := cartesian(segsPerLevel)

	var out []*Config
	for _, combo := range combos {
		cfg, err := mergeOne(c, combo)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// splitSegments splits a level's pragma at every "pv" key. Pairs that
// precede the first "pv" key (if any) form an implicit leading segment
// with no pv token of its own.
func splitSegments(p pragma.Pragma) []segment {
	if len(p) == 0 {
		return []segment{nil}
	}
	var segs []segment
	var cur segment
	started := false
	for _, pair := range p {
		if pair.Key == pragma.KeyPV {
			if started {
				segs = append(segs, cur)
			}
			cur = segment{pair}
			started = true
			continue
		}
		cur = append(cur, pair)
	}
	segs = append(segs, cur)
	return segs
}

// cartesian returns the cross product of per-level segment lists, one
// combo per element, each combo holding exactly one segment per level
// in level order.
func cartesian(segsPerLevel [][]segment) [][]segment {
	combos := [][]segment{{}}
	for _, segs := range segsPerLevel {
		var next [][]segment
		for _, combo := range combos {
			for _, seg := range segs {
				extended := append(append([]segment{}, combo...), seg)
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}

// mergeOne merges one combo (one segment per level, in level order)
// into a single Config, applying the per-key combine rules of spec.md
// §4.E.
func mergeOne(c *chain.Chain, combo []segment) (*Config, error) {
	cfg := newConfig()

	var pvTokens []string
	arrayExpandLevel := -1
	archiveFieldsSeen := map[string]bool{}
	autosaveSeen := map[string]map[string]bool{
		pragma.KeyAutosavePass0: {}, pragma.KeyAutosavePass1: {},
		pragma.KeyAutosaveInputPass0: {}, pragma.KeyAutosaveInputPass1: {},
		pragma.KeyAutosaveOutputPass0: {}, pragma.KeyAutosaveOutputPass1: {},
	}

	var expandFormat string

	for i, seg := range combo {
		lvl := c.Levels[i]
		var levelPV string
		for _, pair := range seg {
			switch pair.Key {
			case pragma.KeyPV:
				levelPV = pair.Value
			case pragma.KeyIO:
				dir, err := pragma.NormalizeIO(pair.Value)
				if err != nil {
					return nil, &InvalidChainError{TCName: c.TCName(), Reason: err.Error()}
				}
				cfg.Direction = dir
			case pragma.KeyField:
				name, value, err := pragma.SplitField(pair.Value)
				if err != nil {
					return nil, &InvalidChainError{TCName: c.TCName(), Reason: err.Error()}
				}
				cfg.Fields[name] = value
			case pragma.KeyUpdate:
				u, err := pragma.ParseUpdate(pair.Value)
				if err != nil {
					return nil, &InvalidChainError{TCName: c.TCName(), Reason: err.Error()}
				}
				cfg.Update = &u
			case pragma.KeyArchive:
				a, err := pragma.ParseArchive(pair.Value)
				if err != nil {
					return nil, &InvalidChainError{TCName: c.TCName(), Reason: err.Error()}
				}
				cfg.Archive = &a
			case pragma.KeyType:
				cfg.Type = pair.Value
			case pragma.KeyScale:
				cfg.Scale = pair.Value
			case pragma.KeyOffset:
				cfg.Offset = pair.Value
			case pragma.KeyMacroCharacter:
				if pair.Value != "" {
					cfg.MacroChar = pair.Value[0]
				}
			case pragma.KeyLink:
				cfg.Link = pair.Value
			case pragma.KeyStr:
				cfg.Str = pair.Value
			case pragma.KeyArchiveFields:
				appendUnion(&cfg.ArchiveFields, archiveFieldsSeen, strings.Fields(pair.Value))
			case pragma.KeyAutosavePass0:
				appendUnion(&cfg.AutosavePass0, autosaveSeen[pragma.KeyAutosavePass0], strings.Fields(pair.Value))
			case pragma.KeyAutosavePass1:
				appendUnion(&cfg.AutosavePass1, autosaveSeen[pragma.KeyAutosavePass1], strings.Fields(pair.Value))
			case pragma.KeyAutosaveInputPass0:
				appendUnion(&cfg.AutosaveInputPass0, autosaveSeen[pragma.KeyAutosaveInputPass0], strings.Fields(pair.Value))
			case pragma.KeyAutosaveInputPass1:
				appendUnion(&cfg.AutosaveInputPass1, autosaveSeen[pragma.KeyAutosaveInputPass1], strings.Fields(pair.Value))
			case pragma.KeyAutosaveOutputPass0:
				appendUnion(&cfg.AutosaveOutputPass0, autosaveSeen[pragma.KeyAutosaveOutputPass0], strings.Fields(pair.Value))
			case pragma.KeyAutosaveOutputPass1:
				appendUnion(&cfg.AutosaveOutputPass1, autosaveSeen[pragma.KeyAutosaveOutputPass1], strings.Fields(pair.Value))
			case pragma.KeyArray:
				if err := claimArrayLevel(&arrayExpandLevel, i, c.TCName()); err != nil {
					return nil, err
				}
			case pragma.KeyExpand:
				if err := claimArrayLevel(&arrayExpandLevel, i, c.TCName()); err != nil {
					return nil, err
				}
				expandFormat = pair.Value
			}
		}

		if levelPV != "" {
			pvTokens = append(pvTokens, levelPV)
		}
		if lvl.ArrayIndex != nil {
			format := expandFormat
			if format == "" {
				upper := 0
				if lvl.ArrayUpperBound != nil {
					upper = *lvl.ArrayUpperBound
				}
				format = pragma.DefaultExpandFormat(pragma.ExpandWidth(upper))
			}
			pvTokens = append(pvTokens, pragma.FormatIndexSuffix(format, *lvl.ArrayIndex))
		}
	}

	cfg.PV = joinPV(pvTokens)
	if cfg.PV == "" {
		return nil, &InvalidChainError{TCName: c.TCName(), Reason: "no pv in merged configuration"}
	}
	if strings.Contains(cfg.PV, "::") || strings.HasPrefix(cfg.PV, ":") || strings.HasSuffix(cfg.PV, ":") {
		return nil, &InvalidChainError{TCName: c.TCName(), Reason: fmt.Sprintf("malformed pv %q", cfg.PV)}
	}
	if cfg.Direction == "" {
		return nil, &InvalidChainError{TCName: c.TCName(), Reason: "no io direction in merged configuration"}
	}

	return cfg, nil
}

// joinPV concatenates pv tokens, joining ordinary tokens with ":" but
// splicing array-index suffixes (which already carry their own leading
// punctuation, e.g. ":00") directly onto the preceding token.
func joinPV(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if strings.HasPrefix(tok, ":") || b.Len() == 0 {
			b.WriteString(tok)
			continue
		}
		b.WriteByte(':')
		b.WriteString(tok)
	}
	return b.String()
}

func claimArrayLevel(owner *int, level int, tcname string) error {
	if *owner != -1 && *owner != level {
		return &InvalidChainError{TCName: tcname, Reason: "conflicting array/expand directives across levels"}
	}
	*owner = level
	return nil
}

func appendUnion(dst *[]string, seen map[string]bool, values []string) {
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		*dst = append(*dst, v)
	}
}

