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

package chain

import (
	"fmt"
	"strings"

	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/pragma"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

// annotatedNode is the common shape of Symbol and SubItem that the
// walker needs: a declared name, type name, indirection depth, optional
// array bounds, and an optional pragma.
type annotatedNode interface {
	Name() string
	TypeName() string
	PointerDepth() int
	ArrayInfoItem() *tcmodel.ArrayInfo
	Pragma() (string, bool)
}

// Yield is called once per fully enumerated chain. It returns false to
// stop the walk early, matching the pull-based iterator shape of
// spec.md §4.D / §9 ("Lazy chain enumeration... presented as a
// pull-based sequence").
type Yield func(*Chain) bool

// Walk enumerates every root-to-leaf chain reachable from root,
// invoking yield for each. Diagnostics for unresolved types and
// malformed pragmas are recorded on report and do not stop the walk;
// they simply prevent the affected chain (and everything below it) from
// being emitted (spec.md §4.D, §7).
func Walk(root *tcmodel.Symbol, resolver *tcmodel.Resolver, report *diag.Report, yield Yield) {
	walkNode(root, nil, resolver, report, yield)
}

func walkNode(node annotatedNode, prefix []Level, resolver *tcmodel.Resolver, report *diag.Report, yield Yield) bool {
	rawPragma, hasPragma := node.Pragma()
	if !hasPragma {
		// Empty pragma at any level: no chain is emitted through it
		// (spec.md §3 Chain invariant). This is SKIPPED, not an
		// error.
		return true
	}

	p, err := pragma.Parse(rawPragma)
	if err != nil {
		report.Add(diag.Diagnostic{Kind: diag.MalformedPragma, Message: err.Error(), TCName: tcnameOf(prefix, node, nil)})
		return true
	}
	if p.IsEmpty() {
		return true
	}
	for _, pair := range p {
		if !pragma.IsKnownKey(pair.Key) {
			report.Add(diag.Diagnostic{Kind: diag.MalformedPragma, Warning: true, Message: fmt.Sprintf("unknown pragma key %q ignored", pair.Key), TCName: tcnameOf(prefix, node, nil)})
		}
	}

	level := Level{Name: node.Name(), Pragma: p}
	levels := append(append([]Level{}, prefix...), level)

	if node.PointerDepth() > 0 {
		return emitLeaf(levels, tcmodel.FamilyInt32, node.ArrayInfoItem(), 0, nil, LeafScalar, yield)
	}

	typeName := node.TypeName()
	// An array declaration names its element type after "ARRAY [...] OF ".
	if upper := strings.ToUpper(typeName); strings.HasPrefix(upper, "ARRAY") {
		if i := strings.Index(upper, " OF "); i >= 0 {
			typeName = strings.TrimSpace(typeName[i+len(" OF "):])
		}
	}
	if b, ok := tcmodel.ResolveBuiltin(typeName); ok {
		return emitLeaf(levels, b.Family, node.ArrayInfoItem(), b.StrLen, nil, LeafScalar, yield)
	}

	dt, warned, err := resolver.Resolve(typeName, "")
	_ = warned
	if err != nil {
		report.Add(diag.Diagnostic{Kind: diag.UnresolvedType, Message: err.Error(), TCName: tcnameOf(prefix, node, nil)})
		return true
	}

	if dt.IsEnum() {
		return emitLeaf(levels, tcmodel.FamilyEnumComposite, node.ArrayInfoItem(), 0, dt.EnumInfoItem().Values(), LeafEnumComposite, yield)
	}

	subItems, err := resolver.AllSubItems(dt)
	if err != nil && len(subItems) == 0 {
		report.Add(diag.Diagnostic{Kind: diag.UnresolvedType, Message: err.Error(), TCName: tcnameOf(prefix, node, nil)})
		return true
	}

	ai := node.ArrayInfoItem()
	if ai == nil {
		for _, si := range subItems {
			if !walkNode(si, levels, resolver, report, yield) {
				return false
			}
		}
		return true
	}

	// A composite array expands into one descent per selected index
	// (spec.md §4.D, §8 boundary scenario 4/5).
	indices, err := selectedIndices(level.Pragma, ai)
	if err != nil {
		report.Add(diag.Diagnostic{Kind: diag.InvalidChain, Message: err.Error(), TCName: tcnameOf(prefix, node, nil)})
		return true
	}
	upper := bounds0Upper(ai)
	for _, idx := range indices {
		idx := idx
		indexedLevels := append(append([]Level{}, levels...))
		indexedLevels[len(indexedLevels)-1].ArrayIndex = &idx
		indexedLevels[len(indexedLevels)-1].ArrayUpperBound = &upper
		for _, si := range subItems {
			if !walkNode(si, indexedLevels, resolver, report, yield) {
				return false
			}
		}
	}
	return true
}

// selectedIndices returns the flat list of indices to descend into for
// an array-of-composite level, honoring an "array:" selector pragma
// restricted to that level (spec.md §3 "array", §4.D).
func selectedIndices(p pragma.Pragma, ai *tcmodel.ArrayInfo) ([]int, error) {
	bounds := ai.Bounds()
	if len(bounds) == 0 {
		return nil, nil
	}
	b := bounds[0]

	for _, pair := range p {
		if pair.Key == pragma.KeyArray {
			return pragma.ParseArraySelector(pair.Value, b.LowerBound, b.UpperBound)
		}
	}

	var all []int
	for i := b.LowerBound; i <= b.UpperBound; i++ {
		all = append(all, i)
	}
	return all, nil
}

func bounds0Upper(ai *tcmodel.ArrayInfo) int {
	bounds := ai.Bounds()
	if len(bounds) == 0 {
		return 0
	}
	return bounds[0].UpperBound
}

func emitLeaf(levels []Level, family tcmodel.Family, ai *tcmodel.ArrayInfo, strLen int, enumVals []tcmodel.EnumValue, kind LeafKind, yield Yield) bool {
	c := &Chain{
		Levels:     levels,
		LeafFamily: family,
		LeafArray:  ai,
		LeafStrLen: strLen,
		LeafEnum:   enumVals,
		LeafKind:   kind,
	}
	return yield(c)
}

func tcnameOf(prefix []Level, node annotatedNode, extra *int) string {
	levels := append(append([]Level{}, prefix...), Level{Name: node.Name(), ArrayIndex: extra})
	c := &Chain{Levels: levels}
	return c.TCName()
}
