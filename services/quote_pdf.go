package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders the quote request as a PDF using maroto/v2. The
// content mirrors the Excel layouts (one line per product, subtotal, 15%
// VAT, grand total) without the cell-level template positions.
func GenerateQuotePDF(req QuoteRequest, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, req, now)
	addQuoteTableHeader(m)
	for _, p := range req.Products {
		addQuoteLine(m, p)
	}
	addQuoteSummary(m, req)
	addQuoteTerms(m, req)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, req QuoteRequest, now time.Time) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Quotation — %s", req.Format), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtle := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Reference: %s", req.Reference), props.Text{
					Size:  9,
					Align: align.Left,
					Color: subtle,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", now.Format("02 Jan 2006")), props.Text{
					Size:  9,
					Align: align.Right,
					Color: subtle,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Customer: %s", req.CustomerName), props.Text{
					Size:  10,
					Align: align.Left,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(
				text.New("Product", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Quantity", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Unit", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Target Price", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addQuoteLine(m core.Maroto, p QuoteProductLine) {
	baseText := props.Text{Size: 9, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	qtyStr := "—"
	if p.Quantity != nil {
		qtyStr = formatQty(*p.Quantity)
	}
	priceStr := p.TargetPrice
	if priceStr == "" {
		priceStr = "—"
	}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(text.New(p.ProductName, leftText)),
			col.New(2).Add(text.New(qtyStr, rightText)),
			col.New(2).Add(text.New(p.Unit, baseText)),
			col.New(3).Add(text.New(priceStr, rightText)),
		),
	)
}

func addQuoteSummary(m core.Maroto, req QuoteRequest) {
	// Totals can only be derived when every line carries a numeric quantity
	// and a parseable price.
	var subtotal float64
	complete := len(req.Products) > 0
	for _, p := range req.Products {
		price, ok := priceCellValue(p.TargetPrice).(float64)
		if !ok || p.Quantity == nil {
			complete = false
			break
		}
		subtotal += *p.Quantity * price
	}
	if !complete {
		return
	}

	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	rows := []struct {
		label string
		value float64
	}{
		{"Subtotal", subtotal},
		{"VAT (15%)", subtotal * VATRate},
		{"Total incl. VAT", subtotal * (1 + VATRate)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(
					text.New(r.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(3).Add(
					text.New(fmt.Sprintf("%.2f", r.value), labelStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}

func addQuoteTerms(m core.Maroto, req QuoteRequest) {
	if req.Terms == "" {
		return
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Terms and Conditions", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(
		row.New(20).Add(
			col.New(12).Add(
				text.New(req.Terms, props.Text{Size: 8, Align: align.Left}),
			),
		),
	)
}
