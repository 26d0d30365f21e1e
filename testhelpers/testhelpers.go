// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", name)
	record.Set("sales_stage", "Lead ID")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestChemical creates a chemicals record with the given name and returns it.
func CreateTestChemical(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("chemicals")
	if err != nil {
		t.Fatalf("failed to find chemicals collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("category", "Preservatives")
	record.Set("hs_code", "2916.31")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test chemical: %v", err)
	}

	return record
}

// CreateTestTds creates a tds record linked to a chemical and returns it.
func CreateTestTds(t *testing.T, app *pocketbase.PocketBase, chemicalID, brand, grade string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("tds")
	if err != nil {
		t.Fatalf("failed to find tds collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("chemical_type", chemicalID)
	record.Set("brand", brand)
	record.Set("grade", grade)
	record.Set("owner", "LeanChems")
	record.Set("source", "China")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test tds: %v", err)
	}

	return record
}

// CreateTestPartner creates a partner record with the given name and returns it.
func CreateTestPartner(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("partners")
	if err != nil {
		t.Fatalf("failed to find partners collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("country", "China")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test partner: %v", err)
	}

	return record
}

// CreateTestPipeline creates a pipeline record at the given stage, linked
// to a customer, and returns it.
func CreateTestPipeline(t *testing.T, app *pocketbase.PocketBase, customerID, stage string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pipelines")
	if err != nil {
		t.Fatalf("failed to find pipelines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("stage", stage)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pipeline: %v", err)
	}

	return record
}

// CreateTestInteraction creates an interactions record for a customer.
func CreateTestInteraction(t *testing.T, app *pocketbase.PocketBase, customerID, inputText string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("interactions")
	if err != nil {
		t.Fatalf("failed to find interactions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	record.Set("input_text", inputText)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test interaction: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
