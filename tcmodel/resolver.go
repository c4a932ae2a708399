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

package tcmodel

import (
	"fmt"
	"strings"

	"github.com/derekparker/trie"
)

// PlatformWordBits is the integer width a reference or pointer of
// positive depth is treated as for record-emission purposes (spec.md
// §4.B).
const PlatformWordBits = 32

// Resolver reconstructs fully-qualified composite types, following
// ExtendsType chains, from the flat set of DataType declarations found
// anywhere in a parsed project tree (spec.md §4.B).
//
// A Resolver is read-only once built: its lookup tables are populated
// during NewResolver and never mutated afterwards (spec.md §5, "the
// type-resolver's symbol table... [is] read-only once loaded").
type Resolver struct {
	byGUID  map[string]*DataType
	byQName map[string]*DataType
	byName  *trie.Trie           // bare names only, for did-you-mean suggestions.
	byNameT map[string]*DataType // bare name -> first match, last resort per spec.md §4.B.
}

// NewResolver walks root and indexes every DataType found anywhere
// within it.
func NewResolver(root Item) *Resolver {
	r := &Resolver{
		byGUID:  map[string]*DataType{},
		byQName: map[string]*DataType{},
		byNameT: map[string]*DataType{},
		byName:  trie.New(),
	}
	r.index(root)
	return r
}

func (r *Resolver) index(item Item) {
	if dt, ok := item.(*DataType); ok {
		if guid, ok := dt.GUID(); ok && guid != "" {
			r.byGUID[guid] = dt
		}
		qname := dt.Name()
		if ns, ok := dt.Namespace(); ok && ns != "" {
			qname = ns + "." + qname
		}
		if qname != "" {
			r.byQName[qname] = dt
		}
		if bare := dt.Name(); bare != "" {
			if _, exists := r.byNameT[bare]; !exists {
				r.byNameT[bare] = dt
				r.byName.Add(bare, nil)
			}
		}
	}
	for _, c := range item.Children() {
		r.index(c)
	}
}

// Resolve returns the DataType matching qname, preferring a GUID match
// (guid, if non-empty) over the fully qualified name, and falling back
// to a bare-name match as a last resort with a warning (spec.md §4.B,
// "Resolution prefers by-GUID when both sides have one; otherwise by
// fully-qualified name; otherwise by bare name as last resort (warn)").
func (r *Resolver) Resolve(qname, guid string) (*DataType, bool, error) {
	if guid != "" {
		if dt, ok := r.byGUID[guid]; ok {
			return dt, false, nil
		}
	}
	if dt, ok := r.byQName[qname]; ok {
		return dt, false, nil
	}

	bare := qname
	if i := strings.LastIndexByte(qname, '.'); i >= 0 {
		bare = qname[i+1:]
	}
	if dt, ok := r.byNameT[bare]; ok {
		return dt, true, nil
	}
	return nil, false, fmt.Errorf("unresolved type %q%s", qname, r.suggestion(bare))
}

// suggestion returns a " (did you mean ...?)" hint built from bare-name
// prefix matches, or an empty string if none exist. This is the one use
// of the trie index: a fast prefix scan over every known bare type name
// for an unresolved-type diagnostic, not a hot lookup path.
func (r *Resolver) suggestion(bare string) string {
	if len(bare) < 2 {
		return ""
	}
	matches := r.byName.PrefixSearch(bare[:2])
	if len(matches) == 0 {
		return ""
	}
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return fmt.Sprintf(" (did you mean one of %v?)", matches)
}

// ExtensionChain returns dt and every DataType it transitively extends,
// root type last, guarding against extension cycles.
func (r *Resolver) ExtensionChain(dt *DataType) ([]*DataType, error) {
	var chain []*DataType
	seen := map[*DataType]bool{}
	cur := dt
	for cur != nil {
		if seen[cur] {
			return nil, fmt.Errorf("cyclic ExtendsType chain at %q", cur.Name())
		}
		seen[cur] = true
		chain = append(chain, cur)

		ext, ok := cur.Extends()
		if !ok {
			break
		}
		guid := ""
		if g, ok := ext.GUID(); ok {
			guid = g
		}
		next, _, err := r.Resolve(ext.TypeName(), guid)
		if err != nil {
			return chain, fmt.Errorf("extends type %q: %w", ext.TypeName(), err)
		}
		cur = next
	}
	return chain, nil
}

// AllSubItems returns dt's own SubItems followed by those inherited
// through its ExtendsType chain, in declaration order nearest-type
// first.
func (r *Resolver) AllSubItems(dt *DataType) ([]*SubItem, error) {
	chain, err := r.ExtensionChain(dt)
	if err != nil && len(chain) == 0 {
		return nil, err
	}
	var out []*SubItem
	for _, t := range chain {
		out = append(out, t.SubItems()...)
	}
	return out, nil
}
