package handlers

import (
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
)

// optionalFloat reads a numeric record field as a pointer. Fields that were
// never written read back as zero, so zero counts as "not entered".
func optionalFloat(rec *core.Record, field string) *float64 {
	if rec.Get(field) == nil {
		return nil
	}
	f := rec.GetFloat(field)
	if f == 0 {
		return nil
	}
	return &f
}

// recordToPipeline maps a pipelines record into the services view of it.
func recordToPipeline(rec *core.Record) services.Pipeline {
	p := services.Pipeline{
		ID:             rec.Id,
		CustomerID:     rec.GetString("customer"),
		ChemicalTypeID: rec.GetString("chemical_type"),
		TdsID:          rec.GetString("tds"),
		Stage:          rec.GetString("stage"),
		Amount:         optionalFloat(rec, "amount"),
		Unit:           rec.GetString("unit"),
		UnitPrice:      optionalFloat(rec, "unit_price"),
		Currency:       rec.GetString("currency"),
		CloseReason:    rec.GetString("close_reason"),
		LeadSource:     rec.GetString("lead_source"),
		ContactPerLead: rec.GetString("contact_per_lead"),
		BusinessModel:  rec.GetString("business_model"),
		BusinessUnit:   rec.GetString("business_unit"),
		Forex:          rec.GetString("forex"),
		Incoterm:       rec.GetString("incoterm"),
	}

	if dt := rec.GetDateTime("expected_close_date"); !dt.IsZero() {
		p.ExpectedCloseDate = dt.Time()
	}
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		p.CreatedAt = dt.Time()
	}
	if dt := rec.GetDateTime("updated"); !dt.IsZero() {
		p.UpdatedAt = dt.Time()
	}

	meta := map[string]any{}
	if err := rec.UnmarshalJSONField("metadata", &meta); err == nil && len(meta) > 0 {
		p.Metadata = meta
	}

	var interactions []services.AIInteraction
	if err := rec.UnmarshalJSONField("ai_interactions", &interactions); err == nil {
		p.AIInteractions = interactions
	}

	return p
}

// customerName looks up a customer's name, falling back to the id when the
// record is gone.
func customerName(app *pocketbase.PocketBase, customerID string) string {
	if customerID == "" {
		return "—"
	}
	rec, err := app.FindRecordById("customers", customerID)
	if err != nil {
		return customerID
	}
	return rec.GetString("customer_name")
}

// formatRecordDate formats a record datetime for list views.
func formatRecordDate(rec *core.Record, field string) string {
	if dt := rec.GetDateTime(field); !dt.IsZero() {
		return dt.Time().Format("02 Jan 2006")
	}
	return "—"
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
