package services

// VATRate is the fixed value-added tax rate applied to pipeline totals.
// This is a business rule, not configuration.
const VATRate = 0.15

// DealTotals holds the derived financials of a pipeline record.
type DealTotals struct {
	TotalAmount  float64
	TotalWithVAT float64
	Quantity     float64
}

// VATBreakdown splits a deal total into its VAT components.
type VATBreakdown struct {
	WithoutVAT float64
	VATAmount  float64
	WithVAT    float64
	Quantity   float64
}

// DeriveTotals computes the deal value of a pipeline record. It returns nil
// when amount or unit price is missing; the module never assumes a default
// price. No currency conversion is performed.
func DeriveTotals(p Pipeline) *DealTotals {
	if p.Amount == nil || p.UnitPrice == nil {
		return nil
	}
	total := *p.Amount * *p.UnitPrice
	return &DealTotals{
		TotalAmount:  total,
		TotalWithVAT: total * (1 + VATRate),
		Quantity:     *p.Amount,
	}
}

// DeriveVATBreakdown expands DeriveTotals into a VAT breakdown. Both
// functions share the same computation path, so a total rendered from one
// can never disagree with the other.
func DeriveVATBreakdown(p Pipeline) *VATBreakdown {
	totals := DeriveTotals(p)
	if totals == nil {
		return nil
	}
	return &VATBreakdown{
		WithoutVAT: totals.TotalAmount,
		VATAmount:  totals.TotalAmount * VATRate,
		WithVAT:    totals.TotalWithVAT,
		Quantity:   totals.Quantity,
	}
}
