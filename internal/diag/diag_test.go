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

package diag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportAllowErrors(t *testing.T) {
	tests := []struct {
		name        string
		allowErrors bool
		add         Diagnostic
		wantWarning bool
		wantFatal   bool
	}{
		{
			name:        "local error promoted to warning",
			allowErrors: true,
			add:         Diagnostic{Kind: InvalidChain, Message: "missing pv"},
			wantWarning: true,
		},
		{
			name:        "local error kept as error by default",
			allowErrors: false,
			add:         Diagnostic{Kind: InvalidChain, Message: "missing pv"},
			wantWarning: false,
		},
		{
			name:        "fatal error never demoted",
			allowErrors: true,
			add:         Diagnostic{Kind: MalformedXML, Message: "bad xml"},
			wantWarning: false,
			wantFatal:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport(tt.allowErrors)
			r.Add(tt.add)
			got := r.Diagnostics()
			if len(got) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(got))
			}
			if got[0].Warning != tt.wantWarning {
				t.Errorf("Warning = %v, want %v", got[0].Warning, tt.wantWarning)
			}
			if r.HasFatal() != tt.wantFatal {
				t.Errorf("HasFatal() = %v, want %v", r.HasFatal(), tt.wantFatal)
			}
		})
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Diagnostic{Kind: UnsupportedType, Message: "LWORD is unsupported", TCName: "Main.counter"}
	want := "UnsupportedType: Main.counter: LWORD is unsupported"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorsAggregate(t *testing.T) {
	var errs Errors
	errs = AppendErr(errs, nil)
	errs = AppendErr(errs, errors.New("one"))
	errs = AppendErrs(errs, []error{errors.New("two"), nil, errors.New("three")})

	want := "one, two, three"
	if diff := cmp.Diff(want, errs.Error()); diff != "" {
		t.Errorf("Errors.Error() mismatch (-want +got):\n%s", diff)
	}
}
