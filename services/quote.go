package services

import "fmt"

// QuoteFormat selects one of the two fixed quotation layouts. The format
// decides which cells of the generated document are filled; the builder
// itself only passes it through.
type QuoteFormat string

const (
	QuoteFormatBaracoda QuoteFormat = "Baracoda"
	QuoteFormatBetchem  QuoteFormat = "Betchem"
)

// QuoteFormats lists the supported layouts in display order.
var QuoteFormats = []QuoteFormat{QuoteFormatBaracoda, QuoteFormatBetchem}

// ParseQuoteFormat maps a form value to a QuoteFormat.
func ParseQuoteFormat(s string) (QuoteFormat, error) {
	switch s {
	case string(QuoteFormatBaracoda):
		return QuoteFormatBaracoda, nil
	case string(QuoteFormatBetchem):
		return QuoteFormatBetchem, nil
	default:
		return "", fmt.Errorf("unsupported quote format: %q", s)
	}
}

// QuoteProductLine is a single product entry of a quotation.
type QuoteProductLine struct {
	ProductName string
	Quantity    *float64
	Unit        string
	TargetPrice string
}

// QuoteRequest is the normalized payload handed to the document generators.
type QuoteRequest struct {
	Format       QuoteFormat
	CustomerName string
	CustomerID   string
	Reference    string
	Terms        string
	Products     []QuoteProductLine
}

// BuildQuoteRequest assembles a quote payload from a pipeline record plus
// user-edited terms text. Quantity stays numeric (downstream cell formatting
// depends on the type); target price is rendered "<unit_price> <currency>"
// with USD as the fallback currency. The reference is derived from the
// record ID alone so regenerating a quote yields the same reference.
//
// The builder does not judge deal readiness: empty customer or product
// names pass through unchanged.
func BuildQuoteRequest(p Pipeline, format QuoteFormat, terms, productName string) QuoteRequest {
	line := QuoteProductLine{
		ProductName: productName,
		Quantity:    p.Amount,
		Unit:        p.Unit,
	}
	if p.UnitPrice != nil {
		currency := p.Currency
		if currency == "" {
			currency = "USD"
		}
		line.TargetPrice = fmt.Sprintf("%g %s", *p.UnitPrice, currency)
	}

	return QuoteRequest{
		Format:     format,
		CustomerID: p.CustomerID,
		Reference:  "Pipeline-" + p.ID,
		Terms:      terms,
		Products:   []QuoteProductLine{line},
	}
}
