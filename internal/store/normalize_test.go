package store

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"-", ""},
		{"None", ""},
		{"none", ""},
		{"nan", ""},
		{"NaN", ""},
		{"null", ""},
		{"  ", ""},
		{" 포수 ", "포수"},
		{"No.25", "No.25"},
		{"0.314", "0.314"},
	}
	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"No.25", "25"},
		{"no.2", "2"},
		{"NO.7 ", "7"},
		{"25.0", "25"},
		{" 25 ", "25"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeNumber(tc.in); got != tc.want {
			t.Errorf("NormalizeNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, ok := ParseFloat("1,234.5"); !ok || v != 1234.5 {
		t.Errorf("ParseFloat(\"1,234.5\") = %v, %v", v, ok)
	}
	if _, ok := ParseFloat("-"); ok {
		t.Error("ParseFloat(\"-\") should not parse")
	}
	if _, ok := ParseFloat(""); ok {
		t.Error("ParseFloat(\"\") should not parse")
	}
}
