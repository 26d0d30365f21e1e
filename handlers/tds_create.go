package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandleTdsCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.TdsFormData{
			Values:          make(map[string]string),
			Errors:          make(map[string]string),
			ChemicalOptions: chemicalSelectOptions(app),
		}
		component := templates.TdsFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleTdsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
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
		if chemicalType != "" {
			if _, err := app.FindRecordById("chemicals", chemicalType); err != nil {
				errors["chemical_type"] = "Unknown chemical"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.TdsFormData{
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

		tdsCol, err := app.FindCollectionByNameOrId("tds")
		if err != nil {
			log.Printf("tds_create: could not find tds collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(tdsCol)
		record.Set("chemical_type", chemicalType)
		record.Set("brand", brand)
		record.Set("grade", grade)
		record.Set("owner", owner)
		record.Set("source", source)

		if err := app.Save(record); err != nil {
			log.Printf("tds_create: could not save tds: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "TDS created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/tds")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/tds")
	}
}
