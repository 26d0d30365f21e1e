package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

type contextKey string

const HeaderDataKey contextKey = "headerData"
const SidebarDataKey contextKey = "sidebarData"

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// activeSection maps the request path to the sidebar section it belongs to.
func activeSection(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" || trimmed == "dashboard" {
		return "dashboard"
	}
	if i := strings.Index(trimmed, "/"); i > 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

// countRecords returns the number of records in a collection, 0 on any error.
func countRecords(app *pocketbase.PocketBase, collection string) int {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return 0
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return 0
	}
	return len(records)
}

// NavMiddleware builds HeaderData and SidebarData (with record counts per
// section) and stores them in the request context so handlers and templates
// can use them.
func NavMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		headerData := templates.HeaderData{Title: "LeanChems CRM"}

		sidebarData := templates.SidebarData{
			ActiveSection: activeSection(e.Request.URL.Path),
			CustomerCount: countRecords(app, "customers"),
			ChemicalCount: countRecords(app, "chemicals"),
			TdsCount:      countRecords(app, "tds"),
			PartnerCount:  countRecords(app, "partners"),
			PipelineCount: countRecords(app, "pipelines"),
		}

		ctx := context.WithValue(e.Request.Context(), HeaderDataKey, headerData)
		ctx = context.WithValue(ctx, SidebarDataKey, sidebarData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
