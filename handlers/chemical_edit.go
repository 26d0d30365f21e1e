package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func chemicalFormValues(rec *core.Record) map[string]string {
	var applications []string
	_ = rec.UnmarshalJSONField("applications", &applications)
	return map[string]string{
		"name":         rec.GetString("name"),
		"category":     rec.GetString("category"),
		"hs_code":      rec.GetString("hs_code"),
		"applications": strings.Join(applications, "\n"),
	}
}

func HandleChemicalEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		chemicalID := e.Request.PathValue("id")
		record, err := app.FindRecordById("chemicals", chemicalID)
		if err != nil {
			log.Printf("chemical_edit: could not find chemical %s: %v", chemicalID, err)
			return e.String(http.StatusNotFound, "Chemical not found")
		}

		data := templates.ChemicalFormData{
			ID:     record.Id,
			IsEdit: true,
			Values: chemicalFormValues(record),
			Errors: make(map[string]string),
		}
		component := templates.ChemicalFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleChemicalUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		chemicalID := e.Request.PathValue("id")
		record, err := app.FindRecordById("chemicals", chemicalID)
		if err != nil {
			log.Printf("chemical_update: could not find chemical %s: %v", chemicalID, err)
			return e.String(http.StatusNotFound, "Chemical not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		category := strings.TrimSpace(e.Request.FormValue("category"))
		hsCode := strings.TrimSpace(e.Request.FormValue("hs_code"))
		applications := e.Request.FormValue("applications")

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Chemical name is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.ChemicalFormData{
				ID:     record.Id,
				IsEdit: true,
				Values: map[string]string{
					"name": name, "category": category,
					"hs_code": hsCode, "applications": applications,
				},
				Errors: errors,
			}
			component := templates.ChemicalFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("name", name)
		record.Set("category", category)
		record.Set("hs_code", hsCode)
		record.Set("applications", splitLines(applications))

		if err := app.Save(record); err != nil {
			log.Printf("chemical_update: could not save chemical: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Chemical updated successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/chemicals")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/chemicals")
	}
}
