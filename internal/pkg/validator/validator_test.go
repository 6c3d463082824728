package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidRUT(t *testing.T) {
	valid := []string{"12345678-5", "12.345.678-5", "1111118-1", "1111119-K"}
	invalid := []string{"12345678-9", "12345678", "abcdefgh-5", "", "1-9"}
	for _, rut := range valid {
		if !IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = false, want true", rut)
		}
	}
	for _, rut := range invalid {
		if IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = true, want false", rut)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2024, 1, true},
		{2024, 12, true},
		{2024, 0, false},
		{2024, 13, false},
		{1989, 6, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.year, c.month); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValidAFPCode(t *testing.T) {
	for _, code := range []string{"habitat", "modelo", "uno", "planvital"} {
		if !IsValidAFPCode(code) {
			t.Errorf("IsValidAFPCode(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "AFP Modelo", "x", "hab1tat"} {
		if IsValidAFPCode(code) {
			t.Errorf("IsValidAFPCode(%q) = true, want false", code)
		}
	}
}
