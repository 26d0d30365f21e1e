package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		expect   string
	}{
		{"basic", 2500, "USD", "2,500.00 USD"},
		{"millions", 1234567.891, "ETB", "1,234,567.89 ETB"},
		{"small", 42.5, "EUR", "42.50 EUR"},
		{"under a thousand", 999, "KES", "999.00 KES"},
		{"negative", -1500, "USD", "-1,500.00 USD"},
		{"zero", 0, "USD", "0.00 USD"},
		{"currency fallback", 100, "", "100.00 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.amount, tt.currency); got != tt.expect {
				t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.expect)
			}
		})
	}
}

func TestFormatOptionalMoney(t *testing.T) {
	if got := FormatOptionalMoney(nil, "USD"); got != "—" {
		t.Errorf("FormatOptionalMoney(nil) = %q, want em dash placeholder", got)
	}
	if got := FormatOptionalMoney(f64(2875), "USD"); got != "2,875.00 USD" {
		t.Errorf("FormatOptionalMoney(2875) = %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name   string
		qty    *float64
		unit   string
		expect string
	}{
		{"nil quantity", nil, "kg", "—"},
		{"whole number", f64(1000), "kg", "1000 kg"},
		{"fractional", f64(2.5), "ton", "2.50 ton"},
		{"no unit", f64(12), "", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuantity(tt.qty, tt.unit); got != tt.expect {
				t.Errorf("FormatQuantity(%v, %q) = %q, want %q", tt.qty, tt.unit, got, tt.expect)
			}
		})
	}
}
