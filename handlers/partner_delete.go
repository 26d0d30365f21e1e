package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandlePartnerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		partnerID := e.Request.PathValue("id")
		if partnerID == "" {
			return e.String(http.StatusBadRequest, "Missing partner ID")
		}

		record, err := app.FindRecordById("partners", partnerID)
		if err != nil {
			log.Printf("partner_delete: could not find partner %s: %v", partnerID, err)
			return e.String(http.StatusNotFound, "Partner not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("partner_delete: failed to delete partner %s: %v", partnerID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete partner")
		}

		SetToast(e, "success", "Partner deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/partners")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/partners")
	}
}
