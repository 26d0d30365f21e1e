package collections_test

import (
	"testing"

	"leanchems/collections"
	"leanchems/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	chemicalsCol, _ := app.FindCollectionByNameOrId("chemicals")
	chemicals, err := app.FindAllRecords(chemicalsCol)
	if err != nil {
		t.Fatalf("query chemicals error: %v", err)
	}
	if len(chemicals) != 8 {
		t.Fatalf("expected 8 chemicals, got %d", len(chemicals))
	}

	tdsCol, _ := app.FindCollectionByNameOrId("tds")
	tdsRecords, _ := app.FindAllRecords(tdsCol)
	if len(tdsRecords) != 5 {
		t.Fatalf("expected 5 TDS documents, got %d", len(tdsRecords))
	}

	partnersCol, _ := app.FindCollectionByNameOrId("partners")
	partners, _ := app.FindAllRecords(partnersCol)
	if len(partners) != 4 {
		t.Fatalf("expected 4 partners, got %d", len(partners))
	}
}

func TestSeed_TdsLinkedToChemicals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	tdsCol, _ := app.FindCollectionByNameOrId("tds")
	wuhan, err := app.FindRecordsByFilter(
		tdsCol,
		"brand = {:b}",
		"", 1, 0,
		map[string]any{"b": "Wuhan Youji"},
	)
	if err != nil || len(wuhan) == 0 {
		t.Fatal("Wuhan Youji TDS not found")
	}

	chemID := wuhan[0].GetString("chemical_type")
	if chemID == "" {
		t.Fatal("TDS has no chemical_type relation")
	}
	chem, err := app.FindRecordById("chemicals", chemID)
	if err != nil {
		t.Fatalf("linked chemical not found: %v", err)
	}
	if chem.GetString("name") != "Sodium Benzoate" {
		t.Errorf("linked chemical = %q, want Sodium Benzoate", chem.GetString("name"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	chemicalsCol, _ := app.FindCollectionByNameOrId("chemicals")
	chemicals, _ := app.FindAllRecords(chemicalsCol)
	if len(chemicals) != 8 {
		t.Errorf("expected 8 chemicals after idempotent seed, got %d", len(chemicals))
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a chemical first (not via Seed)
	testhelpers.CreateTestChemical(t, app, "Pre-existing Chemical")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	chemicalsCol, _ := app.FindCollectionByNameOrId("chemicals")
	chemicals, _ := app.FindAllRecords(chemicalsCol)
	if len(chemicals) != 1 {
		t.Errorf("expected 1 chemical (pre-existing only), got %d", len(chemicals))
	}
	if chemicals[0].GetString("name") != "Pre-existing Chemical" {
		t.Errorf("expected pre-existing chemical, got %q", chemicals[0].GetString("name"))
	}
}
