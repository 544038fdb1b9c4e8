package validation

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		parsed bool
	}{
		{"42", 42, true},
		{"  7.25", 7.25, true},
		{"12.5kg", 12.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"-3", -3, true},
		{"1e2", 100, true},
		{"1e", 1, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{".", 0, false},
	}
	for _, tc := range cases {
		got, parsed := ParseFloat(tc.in)
		if parsed != tc.parsed || (parsed && got != tc.want) {
			t.Errorf("ParseFloat(%q) = %v, %v; want %v, %v", tc.in, got, parsed, tc.want, tc.parsed)
		}
	}
	if f, parsed := ParseFloat("Infinity"); !parsed || !math.IsInf(f, 1) {
		t.Errorf("Infinity: got %v %v", f, parsed)
	}
}

func TestOptionalFloat(t *testing.T) {
	if OptionalFloat("") != nil || OptionalFloat("  ") != nil || OptionalFloat("x") != nil {
		t.Fatal("expected nil for empty or unparseable input")
	}
	if p := OptionalFloat("70.00"); p == nil || *p != 70 {
		t.Fatalf("got %v", p)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(150); got != "150" {
		t.Errorf("got %q", got)
	}
	if got := FormatNumber(72.5); got != "72.5" {
		t.Errorf("got %q", got)
	}
}
