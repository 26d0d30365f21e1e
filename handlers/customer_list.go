package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customersCol, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_list: could not find customers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(customersCol)
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		pipelinesCol, _ := app.FindCollectionByNameOrId("pipelines")

		var items []templates.CustomerListItem
		for _, rec := range records {
			var pipelineCount int
			if pipelinesCol != nil {
				pipelines, err := app.FindRecordsByFilter(
					pipelinesCol,
					"customer = {:customerId}",
					"", 0, 0,
					map[string]any{"customerId": rec.Id},
				)
				if err == nil {
					pipelineCount = len(pipelines)
				}
			}

			stage := rec.GetString("sales_stage")
			items = append(items, templates.CustomerListItem{
				ID:              rec.Id,
				DisplayID:       rec.GetString("display_id"),
				Name:            rec.GetString("customer_name"),
				SalesStage:      stage,
				StageBadgeClass: services.StageBadgeClass(stage),
				PipelineCount:   pipelineCount,
				CreatedDate:     formatRecordDate(rec, "created"),
			})
		}

		data := templates.CustomerListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CustomerListContent(data)
		} else {
			component = templates.CustomerListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
