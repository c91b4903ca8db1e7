package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	w := NewWon(48_000_000)
	if w.String() != "48000000" {
		t.Fatalf("NewWon display mismatch: got %s", w.String())
	}

	d := stddec.NewFromFloat(1234.5)
	w2 := NewWonFromDecimal(d)
	if !w2.Decimal.Equal(d) {
		t.Fatalf("NewWonFromDecimal mismatch: got %s want %s", w2.Decimal, d)
	}

	for _, in := range []string{"48,000,000", "48000000원", "₩48,000,000", " 48000000 "} {
		w3, err := NewWonFromString(in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if !w3.Decimal.Equal(stddec.NewFromInt(48_000_000)) {
			t.Fatalf("NewWonFromString(%q) = %s", in, w3.Decimal)
		}
	}

	if _, err := NewWonFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"1234.4", "1234"},
		{"1234.5", "1235"},
		{"-1234.5", "-1235"},
		{"2430958.4172", "2430958"},
	}
	for _, c := range cases {
		w, _ := NewWonFromString(c.in)
		if got := w.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	w := NewWon(1_000_000)
	if got := w.Annual().String(); got != "12000000" {
		t.Fatalf("Annual got %s", got)
	}
	if got := w.Annual().Monthly().String(); got != "1000000" {
		t.Fatalf("Monthly after Annual got %s", got)
	}
}

func TestManwonConversions(t *testing.T) {
	w := FromManwon(stddec.NewFromInt(4800))
	if !w.Decimal.Equal(stddec.NewFromInt(48_000_000)) {
		t.Fatalf("FromManwon got %s", w.Decimal)
	}
	if !w.Manwon().Equal(stddec.NewFromInt(4800)) {
		t.Fatalf("Manwon got %s", w.Manwon())
	}
}

func TestArithmetic(t *testing.T) {
	a := NewWon(20_000_000)
	b := NewWon(18_000_000)
	if got := a.Sub(b).String(); got != "2000000" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Add(b).String(); got != "38000000" {
		t.Fatalf("Add got %s", got)
	}
}

func TestFormatting(t *testing.T) {
	cases := []struct {
		in   stddec.Decimal
		want string
	}{
		{stddec.NewFromInt(0), "0원"},
		{stddec.NewFromInt(999), "999원"},
		{stddec.NewFromInt(1000), "1,000원"},
		{stddec.NewFromInt(48_000_000), "48,000,000원"},
		{stddec.NewFromInt(-5_352_000), "-5,352,000원"},
		{stddec.NewFromFloat(171225954.6), "171,225,955원"},
	}
	for _, c := range cases {
		if got := FormatWon(c.in); got != c.want {
			t.Fatalf("FormatWon(%s) = %q want %q", c.in, got, c.want)
		}
	}

	grouped := []struct {
		in   Won
		want string
	}{
		{NewWon(0), "0"},
		{NewWon(999), "999"},
		{NewWon(1_000), "1,000"},
		{NewWon(-1_234_567), "-1,234,567"},
		{NewWon(1_000_000_000_000), "1,000,000,000,000"},
		{NewWonFromDecimal(stddec.RequireFromString("1234567.5")), "1,234,568"},
	}
	for _, c := range grouped {
		if got := c.in.Grouped(); got != c.want {
			t.Fatalf("Grouped(%s) = %q want %q", c.in.Decimal, got, c.want)
		}
	}
}
