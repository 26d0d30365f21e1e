package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
)

// HandlePipelineNote appends a note to a pipeline's interaction log. The log
// is append-only; existing entries are never rewritten.
func HandlePipelineNote(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_notes: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		input := strings.TrimSpace(e.Request.FormValue("user_input"))
		if input == "" {
			return ErrorToast(e, http.StatusBadRequest, "Note text is required")
		}

		p := recordToPipeline(record)
		interactions := append(p.AIInteractions, services.AIInteraction{
			ID:        uuid.New().String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			UserInput: input,
		})
		record.Set("ai_interactions", interactions)

		if err := app.Save(record); err != nil {
			log.Printf("pipeline_notes: could not save pipeline %s: %v", pipelineID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Note added")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/pipelines/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pipelines/"+record.Id)
	}
}
