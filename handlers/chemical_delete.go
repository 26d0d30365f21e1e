package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleChemicalDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		chemicalID := e.Request.PathValue("id")
		if chemicalID == "" {
			return e.String(http.StatusBadRequest, "Missing chemical ID")
		}

		record, err := app.FindRecordById("chemicals", chemicalID)
		if err != nil {
			log.Printf("chemical_delete: could not find chemical %s: %v", chemicalID, err)
			return e.String(http.StatusNotFound, "Chemical not found")
		}

		// unlink TDS documents and pipelines rather than orphaning them
		tdsCol, _ := app.FindCollectionByNameOrId("tds")
		if tdsCol != nil {
			tdsRecords, _ := app.FindRecordsByFilter(
				tdsCol, "chemical_type = {:id}", "", 0, 0,
				map[string]any{"id": chemicalID},
			)
			for _, tds := range tdsRecords {
				tds.Set("chemical_type", "")
				if err := app.Save(tds); err != nil {
					log.Printf("chemical_delete: failed to unlink tds %s: %v", tds.Id, err)
				}
			}
		}

		pipelinesCol, _ := app.FindCollectionByNameOrId("pipelines")
		if pipelinesCol != nil {
			pipelines, _ := app.FindRecordsByFilter(
				pipelinesCol, "chemical_type = {:id}", "", 0, 0,
				map[string]any{"id": chemicalID},
			)
			for _, p := range pipelines {
				p.Set("chemical_type", "")
				if err := app.Save(p); err != nil {
					log.Printf("chemical_delete: failed to unlink pipeline %s: %v", p.Id, err)
				}
			}
		}

		if err := app.Delete(record); err != nil {
			log.Printf("chemical_delete: failed to delete chemical %s: %v", chemicalID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete chemical")
		}

		SetToast(e, "success", "Chemical deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/chemicals")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/chemicals")
	}
}
