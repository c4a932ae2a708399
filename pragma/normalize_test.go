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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeIO(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "i", want: DirInput},
		{in: "input", want: DirInput},
		{in: "ro", want: DirInput},
		{in: "o", want: DirOutput},
		{in: "output", want: DirOutput},
		{in: "rw", want: DirOutput},
		{in: "io", want: DirOutput},
		{in: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalizeIO(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("NormalizeIO(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("NormalizeIO(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseUpdate(t *testing.T) {
	tests := []struct {
		in      string
		want    RateMethod
		wantErr bool
	}{
		{in: "10Hz notify", want: RateMethod{PeriodSeconds: 0.1, Method: "notify"}},
		{in: "1s poll", want: RateMethod{PeriodSeconds: 1, Method: "poll"}},
		{in: "1s", want: RateMethod{PeriodSeconds: 1, Method: "poll"}},
		{in: "2 Hz", want: RateMethod{PeriodSeconds: 0.5, Method: "poll"}},
		{in: "5", wantErr: true},
		{in: "1s bogus", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseUpdate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseUpdate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil {
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseUpdate(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseArraySelector(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		lower   int
		upper   int
		want    []int
		wantErr bool
	}{
		{name: "mixed list", in: "0..1, 99", lower: 0, upper: 100, want: []int{0, 1, 99}},
		{name: "open upper", in: "98..", lower: 0, upper: 100, want: []int{98, 99, 100}},
		{name: "open lower", in: "..2", lower: 0, upper: 100, want: []int{0, 1, 2}},
		{name: "out of bounds", in: "101", lower: 0, upper: 100, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArraySelector(tt.in, tt.lower, tt.upper)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArraySelector(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseArraySelector(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestExpandWidth(t *testing.T) {
	tests := []struct {
		maxIndex int
		want     int
	}{
		{maxIndex: 5, want: 2},
		{maxIndex: 99, want: 2},
		{maxIndex: 100, want: 3},
		{maxIndex: 999, want: 3},
		{maxIndex: 1000, want: 4},
	}
	for _, tt := range tests {
		if got := ExpandWidth(tt.maxIndex); got != tt.want {
			t.Errorf("ExpandWidth(%d) = %d, want %d", tt.maxIndex, got, tt.want)
		}
	}
}
