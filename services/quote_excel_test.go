package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

var quoteNow = time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)

func sampleQuoteRequest(format QuoteFormat) QuoteRequest {
	p := Pipeline{
		ID:         "pl1",
		CustomerID: "cust1",
		Amount:     f64(1000),
		Unit:       "kg",
		UnitPrice:  f64(2.5),
		Currency:   "USD",
	}
	req := BuildQuoteRequest(p, format, "50% advance, 50% on delivery", "Caustic Soda")
	req.CustomerName = "Addis Beverages PLC"
	return req
}

func TestGenerateQuoteExcel_Baracoda(t *testing.T) {
	result, err := GenerateQuoteExcel(sampleQuoteRequest(QuoteFormatBaracoda), quoteNow)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	customer, _ := f.GetCellValue(sheet, "B12")
	if customer != "Addis Beverages PLC" {
		t.Errorf("B12 = %q, want customer name", customer)
	}
	product, _ := f.GetCellValue(sheet, "C20")
	if product != "Caustic Soda" {
		t.Errorf("C20 = %q, want product name", product)
	}
	qty, _ := f.GetCellValue(sheet, "I20")
	if qty != "1000" {
		t.Errorf("I20 = %q, want 1000", qty)
	}
	price, _ := f.GetCellValue(sheet, "J20")
	if price != "2.5" {
		t.Errorf("J20 = %q, want numeric 2.5", price)
	}
	formula, _ := f.GetCellFormula(sheet, "L20")
	if formula != "=J20*I20" {
		t.Errorf("L20 formula = %q, want =J20*I20", formula)
	}
	vat, _ := f.GetCellFormula(sheet, "L30")
	if vat != "=SUM(L20:L20)*0.15" {
		t.Errorf("L30 formula = %q", vat)
	}
	total, _ := f.GetCellFormula(sheet, "L31")
	if total != "=SUM(L20:L30)" {
		t.Errorf("L31 formula = %q", total)
	}
	terms, _ := f.GetCellValue(sheet, "B34")
	if terms != "50% advance, 50% on delivery" {
		t.Errorf("B34 = %q, want terms text", terms)
	}
}

func TestGenerateQuoteExcel_Betchem(t *testing.T) {
	result, err := GenerateQuoteExcel(sampleQuoteRequest(QuoteFormatBetchem), quoteNow)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	customer, _ := f.GetCellValue(sheet, "A4")
	if customer != "Addis Beverages PLC" {
		t.Errorf("A4 = %q, want customer name", customer)
	}
	date, _ := f.GetCellValue(sheet, "E4")
	if date != "2026-08-24" {
		t.Errorf("E4 = %q, want 2026-08-24", date)
	}
	product, _ := f.GetCellValue(sheet, "B8")
	if product != "Caustic Soda" {
		t.Errorf("B8 = %q, want product name", product)
	}
	unit, _ := f.GetCellValue(sheet, "C8")
	if unit != "kg" {
		t.Errorf("C8 = %q, want kg", unit)
	}
	formula, _ := f.GetCellFormula(sheet, "F8")
	if formula != "=D8*E8" {
		t.Errorf("F8 formula = %q, want =D8*E8", formula)
	}
	subtotal, _ := f.GetCellFormula(sheet, "F12")
	if subtotal != "=SUM(F8:F8)" {
		t.Errorf("F12 formula = %q", subtotal)
	}
	vat, _ := f.GetCellFormula(sheet, "F13")
	if vat != "=F12*0.15" {
		t.Errorf("F13 formula = %q", vat)
	}
	total, _ := f.GetCellFormula(sheet, "F14")
	if total != "=F12+F13" {
		t.Errorf("F14 formula = %q", total)
	}
	terms, _ := f.GetCellValue(sheet, "A16")
	if terms != "50% advance, 50% on delivery" {
		t.Errorf("A16 = %q, want terms text", terms)
	}
}

func TestGenerateQuoteExcel_UnparseablePriceKeptAsText(t *testing.T) {
	req := sampleQuoteRequest(QuoteFormatBetchem)
	req.Products[0].TargetPrice = "on request"

	result, err := GenerateQuoteExcel(req, quoteNow)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	price, _ := f.GetCellValue(sheet, "E8")
	if price != "on request" {
		t.Errorf("E8 = %q, want raw string when price is not numeric", price)
	}
}

func TestPriceCellValue(t *testing.T) {
	tests := []struct {
		input  string
		expect any
	}{
		{"2.5 USD", 2.5},
		{"1200 USD/MT", 1200.0},
		{"42 EUR", 42.0},
		{"on request", "on request"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := priceCellValue(tt.input); got != tt.expect {
			t.Errorf("priceCellValue(%q) = %v (%T), want %v", tt.input, got, got, tt.expect)
		}
	}
}
