package services

import (
	"fmt"
	"strings"
)

// FormatMoney formats an amount with thousands separators, two decimal
// places and a trailing currency code, e.g. "12,500.00 USD". An empty
// currency falls back to USD, matching the quote builder's convention.
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}

	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := groupThousands(parts[0])

	result := intPart + "." + parts[1] + " " + currency
	if negative {
		result = "-" + result
	}
	return result
}

// FormatOptionalMoney renders a nullable amount, using an em dash as the
// "nothing to display" placeholder so pages never show NaN or a misleading
// zero.
func FormatOptionalMoney(amount *float64, currency string) string {
	if amount == nil {
		return "—"
	}
	return FormatMoney(*amount, currency)
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// formatQty renders a quantity as a whole number when it has no fractional
// part, otherwise with two decimals.
func formatQty(qty float64) string {
	if qty == float64(int64(qty)) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// FormatQuantity is the exported variant used by pages and exports.
func FormatQuantity(qty *float64, unit string) string {
	if qty == nil {
		return "—"
	}
	s := formatQty(*qty)
	if unit != "" {
		s += " " + unit
	}
	return s
}
