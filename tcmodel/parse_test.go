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
	"strings"
	"testing"
)

const sampleProject = `<TcModuleClass xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <DataTypes>
    <DataType>
      <Name>ST_Counter</Name>
      <Guid>{11111111-1111-1111-1111-111111111111}</Guid>
      <BitSize>32</BitSize>
      <SubItem>
        <Name>value_d</Name>
        <Type>DINT</Type>
        <BitOffs>0</BitOffs>
        <BitSize>32</BitSize>
        <Properties>
          <Property>
            <Name>pytmc</Name>
            <Value>pv: VALUE; io: i</Value>
          </Property>
        </Properties>
      </SubItem>
    </DataType>
  </DataTypes>
  <Symbols>
    <Symbol>
      <Name>Main.counter</Name>
      <Type>ST_Counter</Type>
      <Offset>0</Offset>
      <BitSize>32</BitSize>
      <Properties>
        <Property>
          <Name>pytmc</Name>
          <Value>pv: TEST:COUNTER_B</Value>
        </Property>
      </Properties>
    </Symbol>
  </Symbols>
</TcModuleClass>`

func TestParseBuildsTaggedTree(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleProject))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Tag() != "TcModuleClass" {
		t.Fatalf("root.Tag() = %q, want TcModuleClass", root.Tag())
	}

	symbols := AllSymbols(root)
	if len(symbols) != 1 {
		t.Fatalf("AllSymbols: got %d, want 1", len(symbols))
	}
	if got, want := symbols[0].Name(), "Main.counter"; got != want {
		t.Errorf("Symbol.Name() = %q, want %q", got, want)
	}
	if got, want := symbols[0].TypeName(), "ST_Counter"; got != want {
		t.Errorf("Symbol.TypeName() = %q, want %q", got, want)
	}
	if pragma, ok := symbols[0].Pragma(); !ok || !strings.Contains(pragma, "TEST:COUNTER_B") {
		t.Errorf("Symbol.Pragma() = (%q, %v), want it to contain TEST:COUNTER_B", pragma, ok)
	}
}

func TestParseStripsNamespacePrefixFromTags(t *testing.T) {
	const withNamespace = `<ns:TcModuleClass xmlns:ns="urn:example"><ns:Symbols/></ns:TcModuleClass>`
	root, err := Parse(strings.NewReader(withNamespace))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Tag() != "TcModuleClass" {
		t.Errorf("root.Tag() = %q, want the namespace prefix stripped", root.Tag())
	}
	if len(root.ChildrenByTag("Symbols")) != 1 {
		t.Errorf("ChildrenByTag(Symbols): want one match with namespace prefix stripped")
	}
}

func TestParseUnclosedElementIsMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<TcModuleClass><Symbols>"))
	if err == nil {
		t.Fatal("Parse: err = nil, want a malformed-xml error for an unclosed document")
	}
}

func TestParseUnbalancedEndElementIsMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<TcModuleClass></Symbols></TcModuleClass>"))
	if err == nil {
		t.Fatal("Parse: err = nil, want a malformed-xml error for an unbalanced end tag")
	}
}

func TestDataTypeResolvesSubItemsAndGUID(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleProject))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	resolver := NewResolver(root)

	symbols := AllSymbols(root)
	dt, viaBareName, err := resolver.Resolve(symbols[0].TypeName(), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if viaBareName {
		t.Errorf("Resolve: matched via bare name, want a fully-qualified match for %q", symbols[0].TypeName())
	}
	if got, want := dt.Name(), "ST_Counter"; got != want {
		t.Errorf("DataType.Name() = %q, want %q", got, want)
	}
	if guid, ok := dt.GUID(); !ok || guid != "{11111111-1111-1111-1111-111111111111}" {
		t.Errorf("DataType.GUID() = (%q, %v), want the declared Guid", guid, ok)
	}

	subItems := dt.SubItems()
	if len(subItems) != 1 {
		t.Fatalf("SubItems: got %d, want 1", len(subItems))
	}
	if got, want := subItems[0].Name(), "value_d"; got != want {
		t.Errorf("SubItem.Name() = %q, want %q", got, want)
	}
	if got, want := subItems[0].TypeName(), "DINT"; got != want {
		t.Errorf("SubItem.TypeName() = %q, want %q", got, want)
	}
}
