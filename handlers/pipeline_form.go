package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func stringSelectOptions(values []string) []templates.SelectOption {
	options := make([]templates.SelectOption, 0, len(values))
	for _, v := range values {
		options = append(options, templates.SelectOption{Value: v, Label: v})
	}
	return options
}

func customerSelectOptions(app *pocketbase.PocketBase) []templates.SelectOption {
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil
	}
	var options []templates.SelectOption
	for _, rec := range records {
		options = append(options, templates.SelectOption{
			Value: rec.Id,
			Label: rec.GetString("customer_name"),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}

func tdsSelectOptions(app *pocketbase.PocketBase) []templates.SelectOption {
	col, err := app.FindCollectionByNameOrId("tds")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil
	}
	var options []templates.SelectOption
	for _, rec := range records {
		label := rec.GetString("brand")
		if grade := rec.GetString("grade"); grade != "" {
			label += " " + grade
		}
		options = append(options, templates.SelectOption{Value: rec.Id, Label: label})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}

// newPipelineFormData assembles a form view with all dropdowns populated.
func newPipelineFormData(app *pocketbase.PocketBase, id string, isEdit bool, values, errors map[string]string) templates.PipelineFormData {
	return templates.PipelineFormData{
		ID:              id,
		IsEdit:          isEdit,
		Values:          values,
		Errors:          errors,
		CustomerOptions: customerSelectOptions(app),
		ChemicalOptions: chemicalSelectOptions(app),
		TdsOptions:      tdsSelectOptions(app),
		StageOptions:    stringSelectOptions(services.PipelineStages),
		CurrencyOptions: stringSelectOptions(services.CurrencyOptions),
		UnitOptions:     stringSelectOptions(services.UnitOptions),
		BusinessUnits:   stringSelectOptions(services.BusinessUnitOptions),
		ForexOptions:    stringSelectOptions(services.ForexOptions),
		IncotermOptions: stringSelectOptions(services.IncotermOptions),
	}
}

// pipelineFormFields lists every form field carried verbatim into Values on
// a validation round-trip.
var pipelineFormFields = []string{
	"customer", "chemical_type", "tds", "stage",
	"amount", "unit", "unit_price", "currency",
	"business_unit", "forex", "incoterm", "business_model",
	"lead_source", "contact_per_lead", "expected_close_date", "close_reason",
}

func pipelineFormValues(r *http.Request) map[string]string {
	values := make(map[string]string, len(pipelineFormFields))
	for _, f := range pipelineFormFields {
		values[f] = strings.TrimSpace(r.FormValue(f))
	}
	return values
}

// validatePipelineForm checks a submitted pipeline form. Stage legality is
// validated by the caller since create and edit treat the stage differently.
func validatePipelineForm(app *pocketbase.PocketBase, values map[string]string) map[string]string {
	errors := make(map[string]string)

	if values["customer"] == "" {
		errors["customer"] = "Customer is required"
	} else if _, err := app.FindRecordById("customers", values["customer"]); err != nil {
		errors["customer"] = "Customer not found"
	}

	if v := values["chemical_type"]; v != "" {
		if _, err := app.FindRecordById("chemicals", v); err != nil {
			errors["chemical_type"] = "Chemical type not found"
		}
	}
	if v := values["tds"]; v != "" {
		if _, err := app.FindRecordById("tds", v); err != nil {
			errors["tds"] = "TDS not found"
		}
	}

	if v := values["amount"]; v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f <= 0 {
			errors["amount"] = "Amount must be a positive number"
		}
	}
	if v := values["unit_price"]; v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f <= 0 {
			errors["unit_price"] = "Unit price must be a positive number"
		}
	}

	if v := values["currency"]; v != "" && !services.IsValidCurrency(v) {
		errors["currency"] = "Unknown currency"
	}
	if v := values["forex"]; v != "" && !services.IsValidForex(v) {
		errors["forex"] = "Unknown forex option"
	}
	if v := values["business_unit"]; v != "" && !services.IsValidBusinessUnit(v) {
		errors["business_unit"] = "Unknown business unit"
	}
	if v := values["incoterm"]; v != "" && !services.IsValidIncoterm(v) {
		errors["incoterm"] = "Unknown incoterm"
	}

	if v := values["expected_close_date"]; v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			errors["expected_close_date"] = "Use the YYYY-MM-DD format"
		}
	}

	return errors
}

// requireBusinessDetails adds the late-stage field requirements for stages
// at or past Validation.
func requireBusinessDetails(values map[string]string, errors map[string]string) {
	if values["business_model"] == "" {
		errors["business_model"] = "Business model is required at this stage"
	}
	if values["unit"] == "" {
		errors["unit"] = "Unit is required at this stage"
	}
	if values["unit_price"] == "" {
		errors["unit_price"] = "Unit price is required at this stage"
	}
}

// applyPipelineForm writes validated form values onto a record. Optional
// numeric fields are cleared when submitted empty.
func applyPipelineForm(rec *core.Record, values map[string]string) {
	rec.Set("customer", values["customer"])
	rec.Set("chemical_type", values["chemical_type"])
	rec.Set("tds", values["tds"])
	rec.Set("unit", values["unit"])
	rec.Set("currency", values["currency"])
	rec.Set("business_unit", values["business_unit"])
	rec.Set("forex", values["forex"])
	rec.Set("incoterm", values["incoterm"])
	rec.Set("business_model", values["business_model"])
	rec.Set("lead_source", values["lead_source"])
	rec.Set("contact_per_lead", values["contact_per_lead"])

	if v := values["amount"]; v != "" {
		f, _ := strconv.ParseFloat(v, 64)
		rec.Set("amount", f)
	} else {
		rec.Set("amount", 0)
	}
	if v := values["unit_price"]; v != "" {
		f, _ := strconv.ParseFloat(v, 64)
		rec.Set("unit_price", f)
	} else {
		rec.Set("unit_price", 0)
	}

	if v := values["expected_close_date"]; v != "" {
		rec.Set("expected_close_date", v)
	} else {
		rec.Set("expected_close_date", "")
	}
}
