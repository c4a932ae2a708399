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
	"sort"
	"strings"
	"testing"

	"github.com/ctrlio/tcrecgen/internal/diag"
	"github.com/ctrlio/tcrecgen/tcmodel"
)

// arrayOfCompositeProject mirrors spec.md §8 boundary scenario 4: an
// ARRAY [0..5] OF DUT_X root symbol whose subitem carries its own
// pragma, producing one chain per array index.
const arrayOfCompositeProject = `<TcModuleClass>
  <DataTypes>
    <DataType>
      <Name>DUT_X</Name>
      <BitSize>32</BitSize>
      <SubItem>
        <Name>a</Name>
        <Type>DINT</Type>
        <BitOffs>0</BitOffs>
        <BitSize>32</BitSize>
        <Properties>
          <Property><Name>pytmc</Name><Value>pv: A; io: i</Value></Property>
        </Properties>
      </SubItem>
    </DataType>
  </DataTypes>
  <Symbols>
    <Symbol>
      <Name>Main.arr</Name>
      <Type>ARRAY [0..5] OF DUT_X</Type>
      <ArrayInfo>
        <Elements><LBound>0</LBound><Elements>6</Elements></Elements>
      </ArrayInfo>
      <Properties>
        <Property><Name>pytmc</Name><Value>pv: MY:ARRAY</Value></Property>
      </Properties>
    </Symbol>
  </Symbols>
</TcModuleClass>`

func TestWalkExpandsArrayOfComposite(t *testing.T) {
	root, err := tcmodel.Parse(strings.NewReader(arrayOfCompositeProject))
	if err != nil {
		t.Fatalf("tcmodel.Parse: %v", err)
	}
	resolver := tcmodel.NewResolver(root)
	symbols := tcmodel.AllSymbols(root)
	if len(symbols) != 1 {
		t.Fatalf("AllSymbols: got %d, want 1", len(symbols))
	}

	var tcnames []string
	report := diag.NewReport(false)
	Walk(symbols[0], resolver, report, func(c *Chain) bool {
		tcnames = append(tcnames, c.TCName())
		return true
	})

	if len(tcnames) != 6 {
		t.Fatalf("Walk: got %d chains, want 6 (one per array index)", len(tcnames))
	}
	sort.Strings(tcnames)
	want := []string{
		"Main.arr[0].a", "Main.arr[1].a", "Main.arr[2].a",
		"Main.arr[3].a", "Main.arr[4].a", "Main.arr[5].a",
	}
	sort.Strings(want)
	for i := range want {
		if tcnames[i] != want[i] {
			t.Errorf("tcnames[%d] = %q, want %q", i, tcnames[i], want[i])
		}
	}
}

func TestWalkHonorsArraySelector(t *testing.T) {
	const withSelector = `<TcModuleClass>
  <DataTypes>
    <DataType>
      <Name>DUT_X</Name>
      <BitSize>32</BitSize>
      <SubItem>
        <Name>a</Name>
        <Type>DINT</Type>
        <BitOffs>0</BitOffs>
        <BitSize>32</BitSize>
        <Properties>
          <Property><Name>pytmc</Name><Value>pv: A; io: i</Value></Property>
        </Properties>
      </SubItem>
    </DataType>
  </DataTypes>
  <Symbols>
    <Symbol>
      <Name>Main.arr</Name>
      <Type>ARRAY [0..100] OF DUT_X</Type>
      <ArrayInfo>
        <Elements><LBound>0</LBound><Elements>101</Elements></Elements>
      </ArrayInfo>
      <Properties>
        <Property><Name>pytmc</Name><Value>pv: MY:ARRAY&#10;array: 0..1, 99</Value></Property>
      </Properties>
    </Symbol>
  </Symbols>
</TcModuleClass>`

	root, err := tcmodel.Parse(strings.NewReader(withSelector))
	if err != nil {
		t.Fatalf("tcmodel.Parse: %v", err)
	}
	resolver := tcmodel.NewResolver(root)
	symbols := tcmodel.AllSymbols(root)

	var tcnames []string
	report := diag.NewReport(false)
	Walk(symbols[0], resolver, report, func(c *Chain) bool {
		tcnames = append(tcnames, c.TCName())
		return true
	})

	if len(tcnames) != 3 {
		t.Fatalf("Walk: got %d chains, want 3 (selector 0..1, 99)", len(tcnames))
	}
}

func TestWalkSkipsChainThroughItemWithEmptyPragma(t *testing.T) {
	const noPragmaOnSubitem = `<TcModuleClass>
  <DataTypes>
    <DataType>
      <Name>ST_Counter</Name>
      <BitSize>32</BitSize>
      <SubItem>
        <Name>value_d</Name>
        <Type>DINT</Type>
        <BitOffs>0</BitOffs>
        <BitSize>32</BitSize>
      </SubItem>
    </DataType>
  </DataTypes>
  <Symbols>
    <Symbol>
      <Name>Main.counter</Name>
      <Type>ST_Counter</Type>
      <Properties>
        <Property><Name>pytmc</Name><Value>pv: TEST:COUNTER_B</Value></Property>
      </Properties>
    </Symbol>
  </Symbols>
</TcModuleClass>`

	root, err := tcmodel.Parse(strings.NewReader(noPragmaOnSubitem))
	if err != nil {
		t.Fatalf("tcmodel.Parse: %v", err)
	}
	resolver := tcmodel.NewResolver(root)
	symbols := tcmodel.AllSymbols(root)

	var chains []*Chain
	report := diag.NewReport(false)
	Walk(symbols[0], resolver, report, func(c *Chain) bool {
		chains = append(chains, c)
		return true
	})

	if len(chains) != 0 {
		t.Errorf("Walk: got %d chains, want 0 (subitem has no pragma, per spec.md §3 Chain invariant)", len(chains))
	}
}

func TestWalkTreatsPointerAsScalarWithoutDescending(t *testing.T) {
	const pointerSymbol = `<TcModuleClass>
  <Symbols>
    <Symbol>
      <Name>Main.ptr</Name>
      <Type>POINTER TO DINT</Type>
      <Properties>
        <Property><Name>pytmc</Name><Value>pv: TEST:PTR; io: i</Value></Property>
      </Properties>
    </Symbol>
  </Symbols>
</TcModuleClass>`

	root, err := tcmodel.Parse(strings.NewReader(pointerSymbol))
	if err != nil {
		t.Fatalf("tcmodel.Parse: %v", err)
	}
	resolver := tcmodel.NewResolver(root)
	symbols := tcmodel.AllSymbols(root)

	var chains []*Chain
	report := diag.NewReport(false)
	Walk(symbols[0], resolver, report, func(c *Chain) bool {
		chains = append(chains, c)
		return true
	})

	if len(chains) != 1 {
		t.Fatalf("Walk: got %d chains, want 1 (pointer resolved as a scalar leaf)", len(chains))
	}
	if chains[0].LeafFamily != tcmodel.FamilyInt32 {
		t.Errorf("LeafFamily = %v, want FamilyInt32 for a pointer of positive depth", chains[0].LeafFamily)
	}
}
