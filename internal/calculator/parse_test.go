package calculator

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOK bool
	}{
		{"10", 10, true},
		{"  12.5", 12.5, true},
		{"12abc", 12, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"-3", -3, true},
		{"+4.25", 4.25, true},
		{"1e2", 100, true},
		{"1e", 1, true},
		{"0x10", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"$10", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseNumber(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseNumber_Infinity(t *testing.T) {
	got, ok := ParseNumber("Infinity")
	if !ok || !math.IsInf(got, 1) {
		t.Errorf("ParseNumber(Infinity) = %v, %v; want +Inf, true", got, ok)
	}
	got, ok = ParseNumber("1e999")
	if !ok || !math.IsInf(got, 1) {
		t.Errorf("ParseNumber(1e999) = %v, %v; want +Inf, true", got, ok)
	}
}

func TestCoercion(t *testing.T) {
	if got := CoercePercent("abc"); got != 0 {
		t.Errorf("CoercePercent(abc) = %v, want 0", got)
	}
	if got := CoercePercent("12.5%"); got != 12.5 {
		t.Errorf("CoercePercent(12.5%%) = %v, want 12.5", got)
	}
	if got := CoerceTotal(""); got != 0 {
		t.Errorf("CoerceTotal(\"\") = %v, want 0", got)
	}
	if got := CoerceTotal("Infinity"); got != 0 {
		t.Errorf("CoerceTotal(Infinity) = %v, want 0", got)
	}
	if got := CoerceTotal("75.40"); got != 75.4 {
		t.Errorf("CoerceTotal(75.40) = %v, want 75.4", got)
	}
	if got := CoercePrice(math.Inf(-1)); got != 0 {
		t.Errorf("CoercePrice(-Inf) = %v, want 0", got)
	}
}
