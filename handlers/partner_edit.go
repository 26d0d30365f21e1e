package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandlePartnerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		partnerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("partners", partnerID)
		if err != nil {
			log.Printf("partner_edit: could not find partner %s: %v", partnerID, err)
			return e.String(http.StatusNotFound, "Partner not found")
		}

		data := templates.PartnerFormData{
			ID:     record.Id,
			IsEdit: true,
			Values: map[string]string{
				"name":    record.GetString("name"),
				"country": record.GetString("country"),
			},
			Errors: make(map[string]string),
		}
		component := templates.PartnerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePartnerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		partnerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("partners", partnerID)
		if err != nil {
			log.Printf("partner_update: could not find partner %s: %v", partnerID, err)
			return e.String(http.StatusNotFound, "Partner not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		country := strings.TrimSpace(e.Request.FormValue("country"))

		errors := make(map[string]string)
		if name == "" {
			errors["name"] = "Partner name is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.PartnerFormData{
				ID:     record.Id,
				IsEdit: true,
				Values: map[string]string{"name": name, "country": country},
				Errors: errors,
			}
			component := templates.PartnerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("name", name)
		record.Set("country", country)

		if err := app.Save(record); err != nil {
			log.Printf("partner_update: could not save partner: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Partner updated successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/partners")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/partners")
	}
}
