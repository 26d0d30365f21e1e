package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandlePipelineCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := newPipelineFormData(app, "", false, make(map[string]string), make(map[string]string))
		component := templates.PipelineFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandlePipelineSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		values := pipelineFormValues(e.Request)
		errors := validatePipelineForm(app, values)

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := newPipelineFormData(app, "", false, values, errors)
			component := templates.PipelineFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		pipelinesCol, err := app.FindCollectionByNameOrId("pipelines")
		if err != nil {
			log.Printf("pipeline_create: could not find pipelines collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(pipelinesCol)
		applyPipelineForm(record, values)
		// every new opportunity starts at the first stage
		record.Set("stage", services.PipelineStages[0])

		if err := app.Save(record); err != nil {
			log.Printf("pipeline_create: could not save pipeline: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Pipeline created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/pipelines")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pipelines")
	}
}
