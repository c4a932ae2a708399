// Copyright 2019 Google Inc.
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

package lint

import "strings"

// defaultGrammarYAML declares the fields the record package builder
// (recgen.Build, recgen's transport table) emits for every record kind it
// can choose, plus the choice-constrained fields whose legal values this
// spec fixes outright: SCAN's supported rate set (spec.md §4.F.2) and
// every DTYP the transport table can produce (spec.md §4.B). ASLO and
// AOFF, which the builder emits for a "scale:"/"offset:" pragma, are
// declared for the analog kinds ai and ao only.
const defaultGrammarYAML = `
kinds:
  ai: &analogFields
    fields:
      DESC: {}
      DTYP: {choices: [asynFloat64]}
      SCAN: &scanChoices
        choices: ["10 second", "5 second", "2 second", "1 second", ".5 second", ".2 second", ".1 second", "Passive", "I/O Intr"]
      INP: {}
      PREC: {}
      EGU: {}
      ASLO: {}
      AOFF: {}
      HIHI: {}
      HIGH: {}
      LOW: {}
      LOLO: {}
      HSV: {}
      HHSV: {}
      LSV: {}
      LLSV: {}
      HOPR: {}
      LOPR: {}
      ASG: {}
  ao:
    fields:
      DESC: {}
      DTYP: {choices: [asynFloat64]}
      SCAN: *scanChoices
      OUT: {}
      PREC: {}
      EGU: {}
      ASLO: {}
      AOFF: {}
      DOL: {}
      DRVH: {}
      DRVL: {}
      HOPR: {}
      LOPR: {}
      PINI: {choices: ["YES", "NO"]}
      ASG: {}
  bi:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      INP: {}
      ASG: {}
  bo:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      OUT: {}
      DOL: {}
      PINI: {choices: ["YES", "NO"]}
      ASG: {}
  longin:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      INP: {}
      EGU: {}
      HIHI: {}
      HIGH: {}
      LOW: {}
      LOLO: {}
      HSV: {}
      HHSV: {}
      LSV: {}
      LLSV: {}
      ASG: {}
  longout:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      OUT: {}
      DOL: {}
      EGU: {}
      HIHI: {}
      HIGH: {}
      LOW: {}
      LOLO: {}
      HSV: {}
      HHSV: {}
      LSV: {}
      LLSV: {}
      DRVH: {}
      DRVL: {}
      PINI: {choices: ["YES", "NO"]}
      ASG: {}
  mbbi:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      INP: {}
      ASG: {}
  mbbo:
    fields:
      DESC: {}
      DTYP: {choices: [asynInt32]}
      SCAN: *scanChoices
      OUT: {}
      DOL: {}
      PINI: {choices: ["YES", "NO"]}
      ASG: {}
  waveform:
    fields:
      DESC: {}
      DTYP:
        choices:
          - asynInt8ArrayIn
          - asynInt8ArrayOut
          - asynInt16ArrayIn
          - asynInt16ArrayOut
          - asynInt32ArrayIn
          - asynInt32ArrayOut
          - asynFloat32ArrayIn
          - asynFloat32ArrayOut
          - asynFloat64ArrayIn
          - asynFloat64ArrayOut
      SCAN: *scanChoices
      INP: {}
      OUT: {}
      NELM: {}
      FTVL: {choices: [CHAR, SHORT, LONG, FLOAT, DOUBLE]}
      DOL: {}
      PINI: {choices: ["YES", "NO"]}
      ASG: {}
`

// DefaultGrammar returns the built-in grammar covering every record kind
// and field this repository's own builder can emit. It is always
// available even when no external grammar file is supplied.
func DefaultGrammar() *Grammar {
	g, err := Load(strings.NewReader(defaultGrammarYAML))
	if err != nil {
		// defaultGrammarYAML is a fixed literal validated by this
		// package's own tests; a decode failure here means the
		// literal itself is broken, not a runtime input problem.
		panic("lint: built-in default grammar failed to parse: " + err.Error())
	}
	return g
}
