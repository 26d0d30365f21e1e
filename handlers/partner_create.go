package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandlePartnerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.PartnerFormData{
			Values: make(map[string]string),
			Errors: make(map[string]string),
		}
		component := templates.PartnerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePartnerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
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
				Values: map[string]string{"name": name, "country": country},
				Errors: errors,
			}
			component := templates.PartnerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		partnersCol, err := app.FindCollectionByNameOrId("partners")
		if err != nil {
			log.Printf("partner_create: could not find partners collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(partnersCol)
		record.Set("name", name)
		record.Set("country", country)

		if err := app.Save(record); err != nil {
			log.Printf("partner_create: could not save partner: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Partner created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/partners")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/partners")
	}
}
