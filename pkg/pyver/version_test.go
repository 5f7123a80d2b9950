// SPDX-License-Identifier: MPL-2.0

package pyver

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "full triple", input: "2.7.8", want: Version{Major: 2, Minor: 7, Patch: 8}},
		{name: "missing patch defaults to zero", input: "3.4", want: Version{Major: 3, Minor: 4}},
		{name: "surrounding whitespace", input: " 2.7.0\n", want: Version{Major: 2, Minor: 7}},
		{name: "single component", input: "2", wantErr: true},
		{name: "too many components", input: "1.2.3.4", wantErr: true},
		{name: "non-numeric component", input: "2.x.1", wantErr: true},
		{name: "negative component", input: "2.-1.0", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("error does not wrap ErrInvalidVersion: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b Version
		want int
	}{
		{Version{2, 7, 8}, Version{2, 7, 8}, 0},
		{Version{2, 7, 8}, Version{2, 7, 9}, -1},
		{Version{2, 7, 9}, Version{2, 7, 8}, 1},
		{Version{3, 0, 0}, Version{2, 9, 9}, 1},
		{Version{2, 6, 0}, Version{2, 7, 0}, -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Version(%v).Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	v := Version{Major: 2, Minor: 7, Patch: 8}
	if got := v.String(); got != "2.7.8" {
		t.Errorf("String() = %q, want %q", got, "2.7.8")
	}
	if got := (Version{}).String(); got != "0.0.0" {
		t.Errorf("zero value String() = %q, want %q", got, "0.0.0")
	}
}
