package services

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"
)

var leadingNumber = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)`)

// priceCellValue converts a "<unit_price> <currency>" target price back to a
// number so the row formulas keep working; the raw string is written as-is
// when no leading number can be found.
func priceCellValue(targetPrice string) any {
	m := leadingNumber.FindStringSubmatch(targetPrice)
	if m == nil {
		return targetPrice
	}
	var v float64
	if _, err := fmt.Sscanf(m[1], "%f", &v); err != nil {
		return targetPrice
	}
	return v
}

// GenerateQuoteExcel renders a quotation workbook for the given request.
// The two layouts reproduce the company's quote sheets cell for cell:
//
// Baracoda:
//   - B12 = customer name
//   - C20.. = product names, I20.. = quantities, J20.. = unit prices
//   - L20.. = formulas =J{r}*I{r}
//   - L30 = SUM(L20:L{last})*0.15 (VAT), L31 = SUM(L20:L30) (grand total)
//   - B34 = terms and conditions
//
// Betchem:
//   - A4 = customer name, E4 = date
//   - B8.. = product names, C8.. = units, D8.. = quantities, E8.. = prices
//   - F8.. = formulas =D{r}*E{r}
//   - F12 = subtotal, F13 = =F12*0.15, F14 = =F12+F13
//   - A16 = terms and conditions
func GenerateQuoteExcel(req QuoteRequest, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Quotation"); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet = "Quotation"

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	termsStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create terms style: %w", err)
	}

	var werr error
	set := func(cell string, value any) {
		if werr == nil {
			werr = f.SetCellValue(sheet, cell, value)
		}
	}
	setFormula := func(cell, formula string) {
		if werr == nil {
			werr = f.SetCellFormula(sheet, cell, formula)
		}
	}

	switch req.Format {
	case QuoteFormatBetchem:
		set("A1", "QUOTATION")
		set("A2", fmt.Sprintf("Reference: %s", req.Reference))
		set("A4", req.CustomerName)
		set("E4", now.Format("2006-01-02"))

		set("B7", "Product")
		set("C7", "Unit")
		set("D7", "Quantity")
		set("E7", "Unit Price")
		set("F7", "Total")
		if werr == nil {
			werr = f.SetCellStyle(sheet, "B7", "F7", headerStyle)
		}

		startRow := 8
		lastRow := startRow + len(req.Products) - 1
		for i, p := range req.Products {
			row := startRow + i
			set(fmt.Sprintf("B%d", row), p.ProductName)
			set(fmt.Sprintf("C%d", row), p.Unit)
			if p.Quantity != nil {
				set(fmt.Sprintf("D%d", row), *p.Quantity)
			}
			set(fmt.Sprintf("E%d", row), priceCellValue(p.TargetPrice))
			setFormula(fmt.Sprintf("F%d", row), fmt.Sprintf("=D%d*E%d", row, row))
		}

		set("E12", "Subtotal")
		setFormula("F12", fmt.Sprintf("=SUM(F%d:F%d)", startRow, lastRow))
		set("E13", "VAT (15%)")
		setFormula("F13", "=F12*0.15")
		set("E14", "Total incl. VAT")
		setFormula("F14", "=F12+F13")

		set("A16", req.Terms)
		if werr == nil {
			werr = f.SetCellStyle(sheet, "A16", "A16", termsStyle)
		}

	default: // Baracoda
		set("B10", "QUOTATION")
		if werr == nil {
			werr = f.SetCellStyle(sheet, "B10", "B10", titleStyle)
		}
		set("B11", fmt.Sprintf("Reference: %s", req.Reference))
		set("B12", req.CustomerName)
		set("J12", now.Format("2006-01-02"))

		set("C19", "Product")
		set("I19", "Quantity")
		set("J19", "Unit Price")
		set("L19", "Total")
		if werr == nil {
			werr = f.SetCellStyle(sheet, "C19", "L19", headerStyle)
		}

		startRow := 20
		lastRow := startRow + len(req.Products) - 1
		for i, p := range req.Products {
			row := startRow + i
			set(fmt.Sprintf("C%d", row), p.ProductName)
			if p.Quantity != nil {
				set(fmt.Sprintf("I%d", row), *p.Quantity)
			}
			set(fmt.Sprintf("J%d", row), priceCellValue(p.TargetPrice))
			setFormula(fmt.Sprintf("L%d", row), fmt.Sprintf("=J%d*I%d", row, row))
		}

		set("K30", "VAT (15%)")
		setFormula("L30", fmt.Sprintf("=SUM(L%d:L%d)*0.15", startRow, lastRow))
		set("K31", "Total incl. VAT")
		setFormula("L31", fmt.Sprintf("=SUM(L%d:L30)", startRow))

		set("B34", req.Terms)
		if werr == nil {
			werr = f.SetCellStyle(sheet, "B34", "B34", termsStyle)
		}
	}

	if werr != nil {
		return nil, fmt.Errorf("write quote cells: %w", werr)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
