package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		if customerID == "" {
			return e.String(http.StatusBadRequest, "Missing customer ID")
		}

		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_delete: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		// pipelines and interactions cascade with the customer
		if err := app.Delete(record); err != nil {
			log.Printf("customer_delete: failed to delete customer %s: %v", customerID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete customer")
		}

		SetToast(e, "success", "Customer deleted")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/customers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/customers")
	}
}
