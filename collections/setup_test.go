package collections_test

import (
	"testing"

	"leanchems/collections"
	"leanchems/services"
	"leanchems/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"customers",
	"interactions",
	"chemicals",
	"tds",
	"partners",
	"pipelines",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_CustomersFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("customers")

	fields := []string{"customer_name", "display_id", "sales_stage", "profile", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("customers: missing field %q", f)
		}
	}
}

func TestSetup_ChemicalsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("chemicals")

	fields := []string{"name", "category", "hs_code", "applications", "spec_template", "legacy_id", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("chemicals: missing field %q", f)
		}
	}
}

func TestSetup_TdsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("tds")

	fields := []string{"chemical_type", "brand", "grade", "owner", "source", "specs", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("tds: missing field %q", f)
		}
	}

	chemField := col.Fields.GetByName("chemical_type")
	if rf, ok := chemField.(*core.RelationField); ok {
		if rf.MaxSelect != 1 {
			t.Errorf("tds.chemical_type: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Errorf("tds.chemical_type is not a RelationField")
	}
}

func TestSetup_PipelinesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("pipelines")

	fields := []string{
		"customer", "chemical_type", "tds", "stage",
		"amount", "unit", "unit_price", "currency",
		"expected_close_date", "close_reason", "lead_source", "contact_per_lead",
		"business_model", "business_unit", "forex", "incoterm",
		"metadata", "ai_interactions", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("pipelines: missing field %q", f)
		}
	}

	// stage select must carry all seven stages in order
	stageField := col.Fields.GetByName("stage")
	if sf, ok := stageField.(*core.SelectField); ok {
		if len(sf.Values) != len(services.PipelineStages) {
			t.Fatalf("pipelines.stage: expected %d values, got %d", len(services.PipelineStages), len(sf.Values))
		}
		for i, v := range sf.Values {
			if v != services.PipelineStages[i] {
				t.Errorf("pipelines.stage[%d] = %q, want %q", i, v, services.PipelineStages[i])
			}
		}
	} else {
		t.Errorf("pipelines.stage is not a SelectField")
	}

	// currency select values
	currencyField := col.Fields.GetByName("currency")
	if sf, ok := currencyField.(*core.SelectField); ok {
		if len(sf.Values) != 4 {
			t.Errorf("pipelines.currency: expected 4 values, got %d", len(sf.Values))
		}
	}

	// customer relation with cascade delete
	customerField := col.Fields.GetByName("customer")
	if rf, ok := customerField.(*core.RelationField); ok {
		if !rf.CascadeDelete {
			t.Error("pipelines.customer: expected CascadeDelete=true")
		}
	}
}

func TestSetup_InteractionsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("interactions")

	fields := []string{"customer", "input_text", "ai_response", "tds", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("interactions: missing field %q", f)
		}
	}

	customerField := col.Fields.GetByName("customer")
	if rf, ok := customerField.(*core.RelationField); ok {
		if !rf.CascadeDelete {
			t.Error("interactions.customer: expected CascadeDelete=true")
		}
	}
}

func TestSetup_PartnersFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("partners")

	fields := []string{"name", "country", "metadata", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("partners: missing field %q", f)
		}
	}
}

func TestSetup_CascadeDeleteOnCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customer := testhelpers.CreateTestCustomer(t, app, "Cascade Test Trading")
	pipeline := testhelpers.CreateTestPipeline(t, app, customer.Id, "Discovery")
	interaction := testhelpers.CreateTestInteraction(t, app, customer.Id, "met at expo")

	if err := app.Delete(customer); err != nil {
		t.Fatalf("failed to delete customer: %v", err)
	}

	if _, err := app.FindRecordById("pipelines", pipeline.Id); err == nil {
		t.Error("pipeline should have been cascade-deleted with customer")
	}
	if _, err := app.FindRecordById("interactions", interaction.Id); err == nil {
		t.Error("interaction should have been cascade-deleted with customer")
	}
}

func TestSetup_NumericFieldsStayUnsetUntilWritten(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	customer := testhelpers.CreateTestCustomer(t, app, "Unset Numerics")
	pipeline := testhelpers.CreateTestPipeline(t, app, customer.Id, "Lead ID")

	saved, err := app.FindRecordById("pipelines", pipeline.Id)
	if err != nil {
		t.Fatalf("reload pipeline: %v", err)
	}
	if saved.GetFloat("amount") != 0 || saved.GetFloat("unit_price") != 0 {
		t.Errorf("unset numerics should read as zero: amount=%v unit_price=%v",
			saved.GetFloat("amount"), saved.GetFloat("unit_price"))
	}
}
