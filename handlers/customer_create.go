package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerFormData{
			Values: make(map[string]string),
			Errors: make(map[string]string),
		}
		component := templates.CustomerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("customer_name"))
		profile := services.CleanProfileText(e.Request.FormValue("profile"))

		errors := make(map[string]string)
		if name == "" {
			errors["customer_name"] = "Customer name is required"
		}

		if name != "" {
			existing, _ := app.FindRecordsByFilter(
				"customers",
				"customer_name = {:name}",
				"", 1, 0,
				map[string]any{"name": name},
			)
			if len(existing) > 0 {
				errors["customer_name"] = "A customer with this name already exists"
			}
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.CustomerFormData{
				Values: map[string]string{"customer_name": name, "profile": profile},
				Errors: errors,
			}
			component := templates.CustomerFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		customersCol, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: could not find customers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		displayID, err := services.GenerateDisplayID(app, time.Now())
		if err != nil {
			log.Printf("customer_create: could not generate display id: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(customersCol)
		record.Set("customer_name", name)
		record.Set("display_id", displayID)
		record.Set("sales_stage", services.PipelineStages[0])
		record.Set("profile", profile)

		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Customer created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}
