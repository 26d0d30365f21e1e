package services_test

import (
	"testing"
	"time"

	"leanchems/services"
	"leanchems/testhelpers"
)

func TestResolveProductName_ChemicalByID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chem := testhelpers.CreateTestChemical(t, app, "Citric Acid Monohydrate")

	got := services.ResolveProductName(app, chem.Id, "")
	if got != "Citric Acid Monohydrate" {
		t.Errorf("ResolveProductName() = %q, want chemical name", got)
	}
}

func TestResolveProductName_ChemicalByLegacyID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chem := testhelpers.CreateTestChemical(t, app, "Soda Ash Dense")
	chem.Set("legacy_id", 106)
	if err := app.Save(chem); err != nil {
		t.Fatalf("save chemical: %v", err)
	}

	got := services.ResolveProductName(app, "106", "")
	if got != "Soda Ash Dense" {
		t.Errorf("ResolveProductName() = %q, want legacy-matched chemical name", got)
	}
}

func TestResolveProductName_TdsFallback(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chem := testhelpers.CreateTestChemical(t, app, "Sodium Benzoate")
	tds := testhelpers.CreateTestTds(t, app, chem.Id, "Wuhan Youji", "Food Grade")

	got := services.ResolveProductName(app, "", tds.Id)
	if got != "Wuhan Youji Food Grade" {
		t.Errorf("ResolveProductName() = %q, want brand+grade", got)
	}
}

func TestResolveProductName_ChemicalWinsOverTds(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	chem := testhelpers.CreateTestChemical(t, app, "Caustic Soda Flakes")
	tds := testhelpers.CreateTestTds(t, app, chem.Id, "Tianye", "99%")

	got := services.ResolveProductName(app, chem.Id, tds.Id)
	if got != "Caustic Soda Flakes" {
		t.Errorf("ResolveProductName() = %q, chemical name should win over TDS", got)
	}
}

func TestResolveProductName_Unknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if got := services.ResolveProductName(app, "", ""); got != services.UnknownProductName {
		t.Errorf("ResolveProductName() = %q, want %q", got, services.UnknownProductName)
	}
	if got := services.ResolveProductName(app, "missing123", "missing456"); got != services.UnknownProductName {
		t.Errorf("ResolveProductName() with dangling ids = %q, want %q", got, services.UnknownProductName)
	}
}

func TestGenerateDisplayID_Sequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)

	first, err := services.GenerateDisplayID(app, now)
	if err != nil {
		t.Fatalf("GenerateDisplayID() error: %v", err)
	}
	if first != "LC-2026-CUST-0001" {
		t.Errorf("first display id = %q, want LC-2026-CUST-0001", first)
	}

	customer := testhelpers.CreateTestCustomer(t, app, "First Trading")
	customer.Set("display_id", first)
	if err := app.Save(customer); err != nil {
		t.Fatalf("save customer: %v", err)
	}

	second, err := services.GenerateDisplayID(app, now)
	if err != nil {
		t.Fatalf("GenerateDisplayID() error: %v", err)
	}
	if second != "LC-2026-CUST-0002" {
		t.Errorf("second display id = %q, want LC-2026-CUST-0002", second)
	}
}

func TestGenerateDisplayID_CounterRestartsPerYear(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customer := testhelpers.CreateTestCustomer(t, app, "Old Year Trading")
	customer.Set("display_id", "LC-2025-CUST-0042")
	if err := app.Save(customer); err != nil {
		t.Fatalf("save customer: %v", err)
	}

	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	got, err := services.GenerateDisplayID(app, now)
	if err != nil {
		t.Fatalf("GenerateDisplayID() error: %v", err)
	}
	if got != "LC-2026-CUST-0001" {
		t.Errorf("display id = %q, counter should restart for a new year", got)
	}
}
