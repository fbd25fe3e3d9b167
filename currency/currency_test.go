package currency

import "testing"

func TestFormatUSD(t *testing.T) {
	f := NewFormatter(StaticRate(83.5))

	tests := []struct {
		amount float64
		want   string
	}{
		{10, "$10.00"},
		{49.99, "$49.99"},
		{0, "$0.00"},
		{1234.5, "$1234.50"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.amount, USD); got != tt.want {
			t.Errorf("Format(%v, USD) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	f := NewFormatter(StaticRate(83.5))

	tests := []struct {
		amount float64
		want   string
	}{
		{10, "₹835"},        // 10 × 83.5
		{0, "₹0"},
		{49.99, "₹4,174"},   // 4174.165 rounds down
		{1000, "₹83,500"},
		{20000, "₹16,70,000"}, // Indian grouping past the first lakh
	}
	for _, tt := range tests {
		if got := f.Format(tt.amount, INR); got != tt.want {
			t.Errorf("Format(%v, INR) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestUnknownCurrencyFallsBackToUSD(t *testing.T) {
	f := NewFormatter(nil)
	if got := f.Format(5, "EUR"); got != "$5.00" {
		t.Errorf("expected USD fallback, got %q", got)
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{83500, "83,500"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
	}
	for _, tt := range tests {
		if got := groupIndian(tt.in); got != tt.want {
			t.Errorf("groupIndian(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
