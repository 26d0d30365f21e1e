package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func pipelineRecordValues(rec *core.Record) map[string]string {
	values := map[string]string{
		"customer":         rec.GetString("customer"),
		"chemical_type":    rec.GetString("chemical_type"),
		"tds":              rec.GetString("tds"),
		"stage":            rec.GetString("stage"),
		"unit":             rec.GetString("unit"),
		"currency":         rec.GetString("currency"),
		"business_unit":    rec.GetString("business_unit"),
		"forex":            rec.GetString("forex"),
		"incoterm":         rec.GetString("incoterm"),
		"business_model":   rec.GetString("business_model"),
		"lead_source":      rec.GetString("lead_source"),
		"contact_per_lead": rec.GetString("contact_per_lead"),
		"close_reason":     rec.GetString("close_reason"),
	}
	if f := optionalFloat(rec, "amount"); f != nil {
		values["amount"] = fmt.Sprintf("%g", *f)
	}
	if f := optionalFloat(rec, "unit_price"); f != nil {
		values["unit_price"] = fmt.Sprintf("%g", *f)
	}
	if dt := rec.GetDateTime("expected_close_date"); !dt.IsZero() {
		values["expected_close_date"] = dt.Time().Format("2006-01-02")
	}
	return values
}

func HandlePipelineEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_edit: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		data := newPipelineFormData(app, record.Id, true, pipelineRecordValues(record), make(map[string]string))
		component := templates.PipelineFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePipelineUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_update: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		values := pipelineFormValues(e.Request)
		errors := validatePipelineForm(app, values)

		stage := values["stage"]
		if stage == "" {
			stage = record.GetString("stage")
			values["stage"] = stage
		}
		if !services.IsValidStage(stage) {
			errors["stage"] = "Unknown stage"
		} else {
			if services.StageRequiresBusinessDetails(stage) {
				requireBusinessDetails(values, errors)
			}
			if stage == services.PipelineStages[len(services.PipelineStages)-1] && values["close_reason"] == "" {
				errors["close_reason"] = "Close reason is required when closing a deal"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := newPipelineFormData(app, record.Id, true, values, errors)
			component := templates.PipelineFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		previousStage := record.GetString("stage")
		applyPipelineForm(record, values)
		record.Set("stage", stage)
		record.Set("close_reason", values["close_reason"])

		if stage != previousStage {
			p := recordToPipeline(record)
			record.Set("metadata", p.AppendStageChange(services.StageChange{
				FromStage: previousStage,
				ToStage:   stage,
				ChangedAt: time.Now().UTC().Format(time.RFC3339),
			}))
		}

		if err := app.Save(record); err != nil {
			log.Printf("pipeline_update: could not save pipeline: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Pipeline updated successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/pipelines/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pipelines/"+record.Id)
	}
}
