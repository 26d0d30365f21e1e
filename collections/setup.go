package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
)

// Setup programmatically creates/ensures the customers, interactions,
// chemicals, tds, partners and pipelines collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "display_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "sales_stage", Required: false})
		c.Fields.Add(&core.TextField{Name: "profile", Required: false, Max: 50000})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	chemicals := ensureCollection(app, "chemicals", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.TextField{Name: "hs_code", Required: false})
		c.Fields.Add(&core.JSONField{Name: "applications", Required: false})
		c.Fields.Add(&core.JSONField{Name: "spec_template", Required: false})
		c.Fields.Add(&core.NumberField{Name: "legacy_id", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	tds := ensureCollection(app, "tds", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "chemical_type",
			Required:     false,
			CollectionId: chemicals.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "brand", Required: false})
		c.Fields.Add(&core.TextField{Name: "grade", Required: false})
		c.Fields.Add(&core.TextField{Name: "owner", Required: false})
		c.Fields.Add(&core.TextField{Name: "source", Required: false})
		c.Fields.Add(&core.JSONField{Name: "specs", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "interactions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "input_text", Required: false, Max: 50000})
		c.Fields.Add(&core.TextField{Name: "ai_response", Required: false, Max: 50000})
		c.Fields.Add(&core.RelationField{
			Name:         "tds",
			Required:     false,
			CollectionId: tds.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "partners", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "country", Required: false})
		c.Fields.Add(&core.JSONField{Name: "metadata", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "pipelines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "chemical_type",
			Required:     false,
			CollectionId: chemicals.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "tds",
			Required:     false,
			CollectionId: tds.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "stage",
			Required:  true,
			Values:    services.PipelineStages,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "currency",
			Required:  false,
			Values:    services.CurrencyOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.DateField{Name: "expected_close_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "close_reason", Required: false})
		c.Fields.Add(&core.TextField{Name: "lead_source", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_per_lead", Required: false})
		c.Fields.Add(&core.TextField{Name: "business_model", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "business_unit",
			Required:  false,
			Values:    services.BusinessUnitOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "forex",
			Required:  false,
			Values:    services.ForexOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "incoterm",
			Required:  false,
			Values:    services.IncotermOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "metadata", Required: false})
		c.Fields.Add(&core.JSONField{Name: "ai_interactions", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
