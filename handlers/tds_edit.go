package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandleTdsEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tdsID := e.Request.PathValue("id")
		record, err := app.FindRecordById("tds", tdsID)
		if err != nil {
			log.Printf("tds_edit: could not find tds %s: %v", tdsID, err)
			return e.String(http.StatusNotFound, "TDS not found")
		}

		data := templates.TdsFormData{
			ID:     record.Id,
			IsEdit: true,
			Values: map[string]string{
				"chemical_type": record.GetString("chemical_type"),
				"brand":         record.GetString("brand"),
				"grade":         record.GetString("grade"),
				"owner":         record.GetString("owner"),
				"source":        record.GetString("source"),
			},
			Errors:          make(map[string]string),
			ChemicalOptions: chemicalSelectOptions(app),
		}
		component := templates.TdsFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleTdsUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tdsID := e.Request.PathValue("id")
		record, err := app.FindRecordById("tds", tdsID)
		if err != nil {
			log.Printf("tds_update: could not find tds %s: %v", tdsID, err)
			return e.String(http.StatusNotFound, "TDS not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		chemicalType := strings.TrimSpace(e.Request.FormValue("chemical_type"))
		brand := strings.TrimSpace(e.Request.FormValue("brand"))
		grade := strings.TrimSpace(e.Request.FormValue("grade"))
		owner := strings.TrimSpace(e.Request.FormValue("owner"))
		source := strings.TrimSpace(e.Request.FormValue("source"))

		errors := make(map[string]string)
		if brand == "" {
			errors["brand"] = "Brand is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.TdsFormData{
				ID:     record.Id,
				IsEdit: true,
				Values: map[string]string{
					"chemical_type": chemicalType, "brand": brand,
					"grade": grade, "owner": owner, "source": source,
				},
				Errors:          errors,
				ChemicalOptions: chemicalSelectOptions(app),
			}
			component := templates.TdsFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("chemical_type", chemicalType)
		record.Set("brand", brand)
		record.Set("grade", grade)
		record.Set("owner", owner)
		record.Set("source", source)

		if err := app.Save(record); err != nil {
			log.Printf("tds_update: could not save tds: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "TDS updated successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/tds")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/tds")
	}
}
