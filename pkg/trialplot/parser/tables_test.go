package parser

import (
	"testing"
)

func TestDedupHeaders(t *testing.T) {
	tests := []struct {
		header   []string
		width    int
		expected []string
	}{
		{[]string{"time", "value", "value"}, 3, []string{"time", "value", "value_1"}},
		{[]string{"a", "a", "a"}, 3, []string{"a", "a_1", "a_2"}},
		{[]string{"", "x", ""}, 3, []string{"Unnamed", "x", "Unnamed_1"}},
		{[]string{"time"}, 3, []string{"time", "Unnamed", "Unnamed_1"}},
		{[]string{"a", "b", "a", "b"}, 2, []string{"a", "b", "a_1", "b_1"}},
		{[]string{"a", "a", "a_1"}, 3, []string{"a", "a_1", "a_1_1"}},
		{[]string{"a_1", "a", "a"}, 3, []string{"a_1", "a", "a_1_1"}},
		{nil, 0, []string{}},
	}

	for _, tt := range tests {
		result := DedupHeaders(tt.header, tt.width)
		if len(result) != len(tt.expected) {
			t.Errorf("DedupHeaders(%q, %d) = %q, expected %q", tt.header, tt.width, result, tt.expected)
			continue
		}
		for i := range result {
			if result[i] != tt.expected[i] {
				t.Errorf("DedupHeaders(%q, %d) = %q, expected %q", tt.header, tt.width, result, tt.expected)
				break
			}
		}
	}
}

func TestDropEmptyRows(t *testing.T) {
	rows := [][]string{
		{},
		{"", ""},
		{"a", ""},
		nil,
		{"", "b"},
	}

	result := dropEmptyRows(rows)
	if len(result) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(result))
	}
	if dataWidth(result) != 2 {
		t.Errorf("Expected width 2, got %d", dataWidth(result))
	}
}

func TestForceFromPressure(t *testing.T) {
	area, conv := 0.00079173, 6894.76
	for _, psi := range []float64{0, 1, -3.25, 12.5, 101.325, 1e-9} {
		want := area * conv * psi
		if got := ForceFromPressure(psi); got != want {
			t.Errorf("ForceFromPressure(%v) = %v, expected %v", psi, got, want)
		}
	}
}
