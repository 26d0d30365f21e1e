package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

// splitLines turns one textarea value into a trimmed, non-empty string list.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func HandleChemicalCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ChemicalFormData{
			Values: make(map[string]string),
			Errors: make(map[string]string),
		}
		component := templates.ChemicalFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleChemicalSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
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

		if name != "" {
			existing, _ := app.FindRecordsByFilter(
				"chemicals",
				"name = {:name}",
				"", 1, 0,
				map[string]any{"name": name},
			)
			if len(existing) > 0 {
				errors["name"] = "A chemical with this name already exists"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.ChemicalFormData{
				Values: map[string]string{
					"name": name, "category": category,
					"hs_code": hsCode, "applications": applications,
				},
				Errors: errors,
			}
			component := templates.ChemicalFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		chemicalsCol, err := app.FindCollectionByNameOrId("chemicals")
		if err != nil {
			log.Printf("chemical_create: could not find chemicals collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(chemicalsCol)
		record.Set("name", name)
		record.Set("category", category)
		record.Set("hs_code", hsCode)
		record.Set("applications", splitLines(applications))

		if err := app.Save(record); err != nil {
			log.Printf("chemical_create: could not save chemical: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Chemical created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/chemicals")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/chemicals")
	}
}
