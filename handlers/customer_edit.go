package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		data := templates.CustomerFormData{
			ID:     record.Id,
			IsEdit: true,
			Values: map[string]string{
				"customer_name": record.GetString("customer_name"),
				"profile":       record.GetString("profile"),
			},
			Errors: make(map[string]string),
		}
		component := templates.CustomerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_update: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("customer_name"))
		profile := services.CleanProfileText(e.Request.FormValue("profile"))

		errors := make(map[string]string)
		if name == "" {
			errors["customer_name"] = "Customer name is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.CustomerFormData{
				ID:     record.Id,
				IsEdit: true,
				Values: map[string]string{"customer_name": name, "profile": profile},
				Errors: errors,
			}
			component := templates.CustomerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		record.Set("customer_name", name)
		record.Set("profile", profile)

		if err := app.Save(record); err != nil {
			log.Printf("customer_update: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer updated successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers/"+record.Id)
	}
}
