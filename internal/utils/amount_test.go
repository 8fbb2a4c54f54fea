package utils

import "testing"

func TestParseToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"150", 15000},
		{"150.5", 15050},
		{"150.50", 15050},
		{"12.5", 1250},
		{"6.00", 600},
		{"20.00", 2000},
		{"0.99", 99},
		{".5", 50},
		// extra fractional digits truncate, never round
		{"1.999", 199},
		{"0.019", 1},
	}
	for _, c := range cases {
		got, err := ParseToCents(c.in)
		if err != nil {
			t.Errorf("ParseToCents(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseToCents(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseToCentsRejects(t *testing.T) {
	for _, in := range []string{"", ".", "1.2.3", "abc", "-5", "12.x"} {
		if _, err := ParseToCents(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestFormatFromCents(t *testing.T) {
	if got := FormatFromCents(1250); got != "12.50" {
		t.Errorf("FormatFromCents(1250) = %q", got)
	}
	if got := FormatFromCents(-600); got != "-6.00" {
		t.Errorf("FormatFromCents(-600) = %q", got)
	}
	if got := FormatFromCents(5); got != "0.05" {
		t.Errorf("FormatFromCents(5) = %q", got)
	}
}
