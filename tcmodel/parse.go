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
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// constructor builds the typed Item for a tag once its attributes, text
// body and parent are known, but before its children are attached.
type constructor func(attrs map[string]string, text string, parent Item) Item

// dispatch is the static tag -> variant table described in spec.md §4.A
// and §9 ("Dynamic tag dispatch... becomes a static dispatch table").
// Unknown tags fall back to Generic in newItem.
var dispatch = map[string]constructor{
	"Symbol":      func(a map[string]string, t string, p Item) Item { return &Symbol{base: newBase("Symbol", a, t, p)} },
	"DataType":    func(a map[string]string, t string, p Item) Item { return &DataType{base: newBase("DataType", a, t, p)} },
	"SubItem":     func(a map[string]string, t string, p Item) Item { return &SubItem{base: newBase("SubItem", a, t, p)} },
	"ArrayInfo":   func(a map[string]string, t string, p Item) Item { return &ArrayInfo{base: newBase("ArrayInfo", a, t, p)} },
	"EnumInfo":    func(a map[string]string, t string, p Item) Item { return &EnumInfo{base: newBase("EnumInfo", a, t, p)} },
	"ExtendsType": func(a map[string]string, t string, p Item) Item { return &ExtendsType{base: newBase("ExtendsType", a, t, p)} },
	"BitOffs":     func(a map[string]string, t string, p Item) Item { return &Generic{base: newBase("BitOffs", a, t, p)} },
	"BitSize":     func(a map[string]string, t string, p Item) Item { return &Generic{base: newBase("BitSize", a, t, p)} },
	"Box":         func(a map[string]string, t string, p Item) Item { return &Generic{base: newBase("Box", a, t, p)} },
	"Axis":        func(a map[string]string, t string, p Item) Item { return &Generic{base: newBase("Axis", a, t, p)} },
	"Link":        func(a map[string]string, t string, p Item) Item { return &Generic{base: newBase("Link", a, t, p)} },
}

func newItem(tag string, attrs map[string]string, text string, parent Item) Item {
	tag = stripNamespace(tag)
	if c, ok := dispatch[tag]; ok {
		return c(attrs, text, parent)
	}
	return newGeneric(tag, attrs, text, parent)
}

// Parse reads a compiled controller-project description from r and
// returns its root Item. Parse performs one walk of the XML: it resolves
// each element's tag to a variant, attaches it to its parent, and
// registers it in the parent's tag index, all in a single pass.
//
// Parse does not attempt to recover from malformed XML (spec.md §1
// Non-goals): any token-stream error is wrapped and returned verbatim as
// a MalformedXml condition, fatal to the whole pass.
func Parse(r io.Reader) (Item, error) {
	dec := xml.NewDecoder(r)

	type frame struct {
		item     Item
		text     strings.Builder
	}
	var stack []*frame
	var root Item

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var parent Item
			if len(stack) > 0 {
				parent = stack[len(stack)-1].item
			}
			attrs := map[string]string{}
			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}
			// text is filled in once the element closes; children
			// attach themselves to their own frame's item.
			it := newItem(t.Name.Local, attrs, "", parent)
			if parent == nil {
				root = it
			} else {
				attachChild(parent, it)
			}
			stack = append(stack, &frame{item: it})
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("malformed xml: unbalanced end element %q", t.Name.Local)
			}
			top := stack[len(stack)-1]
			setText(top.item, strings.TrimSpace(top.text.String()))
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("malformed xml: unclosed elements remain")
	}
	if root == nil {
		return nil, fmt.Errorf("malformed xml: empty document")
	}
	return root, nil
}

// attachChild registers child under parent's base storage. Every
// concrete Item kind embeds *base, so this reaches through the Item
// interface via the baseHolder contract implemented by every variant in
// this package.
func attachChild(parent, child Item) {
	if h, ok := parent.(baseHolder); ok {
		h.baseNode().addChild(child)
	}
}

// setText assigns the accumulated character data to item once its
// closing tag is seen.
func setText(item Item, text string) {
	if h, ok := item.(baseHolder); ok {
		h.baseNode().text = text
	}
}

// baseHolder is implemented by every concrete Item kind in this package
// so that Parse can attach children and text without a type switch over
// every variant.
type baseHolder interface {
	baseNode() *base
}

func (b *base) baseNode() *base { return b }
