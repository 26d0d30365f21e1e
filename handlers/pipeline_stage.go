package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
)

// HandlePipelineStage moves a pipeline to another stage and appends the
// transition to the record's stage history.
func HandlePipelineStage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_stage: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		targetStage := strings.TrimSpace(e.Request.FormValue("stage"))
		justification := strings.TrimSpace(e.Request.FormValue("justification"))

		if !services.IsValidStage(targetStage) {
			return ErrorToast(e, http.StatusBadRequest, "Unknown stage")
		}

		p := recordToPipeline(record)
		if targetStage == p.Stage {
			return ErrorToast(e, http.StatusBadRequest, "Pipeline is already at this stage")
		}

		if services.StageRequiresBusinessDetails(targetStage) {
			if p.BusinessModel == "" || p.Unit == "" || p.UnitPrice == nil {
				return ErrorToast(e, http.StatusBadRequest,
					"Fill in business model, unit and unit price before moving to "+targetStage)
			}
		}
		if targetStage == services.PipelineStages[len(services.PipelineStages)-1] && justification == "" {
			return ErrorToast(e, http.StatusBadRequest, "A reason is required when closing a deal")
		}

		record.Set("stage", targetStage)
		record.Set("metadata", p.AppendStageChange(services.StageChange{
			FromStage:     p.Stage,
			ToStage:       targetStage,
			ChangedAt:     time.Now().UTC().Format(time.RFC3339),
			Justification: justification,
		}))
		if targetStage == services.PipelineStages[len(services.PipelineStages)-1] {
			record.Set("close_reason", justification)
		}

		if err := app.Save(record); err != nil {
			log.Printf("pipeline_stage: could not save pipeline %s: %v", pipelineID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Moved to "+targetStage)

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/pipelines/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pipelines/"+record.Id)
	}
}
