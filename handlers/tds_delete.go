package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleTdsDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tdsID := e.Request.PathValue("id")
		if tdsID == "" {
			return e.String(http.StatusBadRequest, "Missing TDS ID")
		}

		record, err := app.FindRecordById("tds", tdsID)
		if err != nil {
			log.Printf("tds_delete: could not find tds %s: %v", tdsID, err)
			return e.String(http.StatusNotFound, "TDS not found")
		}

		// unlink pipelines referencing this document
		pipelinesCol, _ := app.FindCollectionByNameOrId("pipelines")
		if pipelinesCol != nil {
			pipelines, _ := app.FindRecordsByFilter(
				pipelinesCol, "tds = {:id}", "", 0, 0,
				map[string]any{"id": tdsID},
			)
			for _, p := range pipelines {
				p.Set("tds", "")
				if err := app.Save(p); err != nil {
					log.Printf("tds_delete: failed to unlink pipeline %s: %v", p.Id, err)
				}
			}
		}

		if err := app.Delete(record); err != nil {
			log.Printf("tds_delete: failed to delete tds %s: %v", tdsID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete TDS")
		}

		SetToast(e, "success", "TDS deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/tds")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/tds")
	}
}
