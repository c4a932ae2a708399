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

// Package tcmodel is the generic tagged-tree over a compiled controller
// project's XML description, and the type resolver that reconstructs
// Symbol, DataType, SubItem, ArrayInfo and EnumInfo from it (spec
// components A and B).
package tcmodel

import "strings"

// Item is a node in the XML object graph. Concrete node kinds (Symbol,
// DataType, SubItem, ...) embed *base and add typed accessors over the
// same underlying attribute/child storage; unknown tags fall back to
// *Generic, which still exposes the full tree below it.
type Item interface {
	// Tag returns the element's local name, with any "{namespace}"
	// prefix stripped.
	Tag() string
	// Attr returns the named attribute's value and whether it was
	// present. Attribute names are matched case-exactly.
	Attr(name string) (string, bool)
	// Text returns the element's direct character-data body.
	Text() string
	// Parent returns the owning node, or nil at the root.
	Parent() Item
	// Children returns the element's direct children in document
	// order.
	Children() []Item
	// ChildrenByTag returns the direct children whose Tag equals name,
	// in document order.
	ChildrenByTag(name string) []Item
	// Path returns the fully qualified, dot-joined tag path from the
	// root to this item.
	Path() string
}

// base is embedded by every concrete Item implementation; it owns the
// generic storage (attributes, text, children, tag index) that every
// node kind shares. Parent back-references are a handle to the owning
// node, not an ownership cycle: the root owns the whole tree through its
// Children slice, and base.parent is only ever read, never used to free
// or walk-delete.
type base struct {
	tag      string
	attrs    map[string]string
	text     string
	parent   Item
	children []Item
	byTag    map[string][]Item
}

func newBase(tag string, attrs map[string]string, text string, parent Item) *base {
	return &base{
		tag:    stripNamespace(tag),
		attrs:  attrs,
		text:   text,
		parent: parent,
		byTag:  map[string][]Item{},
	}
}

func (b *base) Tag() string { return b.tag }

func (b *base) Attr(name string) (string, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

func (b *base) Text() string { return b.text }

func (b *base) Parent() Item { return b.parent }

func (b *base) Children() []Item { return b.children }

func (b *base) ChildrenByTag(name string) []Item { return b.byTag[name] }

func (b *base) Path() string {
	if b.parent == nil {
		return b.tag
	}
	return b.parent.Path() + "." + b.tag
}

// addChild registers child under b, indexing it by tag for
// ChildrenByTag lookups. Construction walks the XML once; the index is
// built as each child is attached, not recomputed per query.
func (b *base) addChild(child Item) {
	b.children = append(b.children, child)
	b.byTag[child.Tag()] = append(b.byTag[child.Tag()], child)
}

// stripNamespace removes a "{uri}" namespace prefix from a raw XML
// local name, tolerating the inconsistent tag casing and namespace
// prefixing that compiled project XML exhibits (spec.md §4.A).
func stripNamespace(tag string) string {
	if i := strings.IndexByte(tag, '}'); i >= 0 && strings.HasPrefix(tag, "{") {
		return tag[i+1:]
	}
	return tag
}

// firstChildText returns the text body of the first child of item whose
// tag is name, and whether such a child exists. Many attributes that the
// spec models abstractly (a Symbol's declared type name, a SubItem's bit
// offset, ...) are carried in the source XML as single-text child
// elements rather than XML attributes; this is the one seam where
// concrete node kinds reach past the generic Item interface into that
// shape.
func firstChildText(item Item, name string) (string, bool) {
	children := item.ChildrenByTag(name)
	if len(children) == 0 {
		return "", false
	}
	return children[0].Text(), true
}

// Generic is the fallback node kind for any tag without a registered
// constructor. It carries no additional accessors, but its children
// remain fully traversable, so no information is lost for unknown tags.
type Generic struct {
	*base
}

func newGeneric(tag string, attrs map[string]string, text string, parent Item) Item {
	return &Generic{base: newBase(tag, attrs, text, parent)}
}
