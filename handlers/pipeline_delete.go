package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandlePipelineDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		if pipelineID == "" {
			return e.String(http.StatusBadRequest, "Missing pipeline ID")
		}

		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_delete: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("pipeline_delete: failed to delete pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete pipeline")
		}

		SetToast(e, "success", "Pipeline deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/pipelines")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pipelines")
	}
}
