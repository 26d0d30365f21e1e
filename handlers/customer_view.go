package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandleCustomerView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		record, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("customer_view: could not find customer %s: %v", customerID, err)
			return e.String(http.StatusNotFound, "Customer not found")
		}

		var pipelineItems []templates.CustomerPipelineItem
		pipelinesCol, _ := app.FindCollectionByNameOrId("pipelines")
		if pipelinesCol != nil {
			pipelines, err := app.FindRecordsByFilter(
				pipelinesCol,
				"customer = {:customerId}",
				"-created", 0, 0,
				map[string]any{"customerId": customerID},
			)
			if err == nil {
				for _, rec := range pipelines {
					p := recordToPipeline(rec)
					pipelineItems = append(pipelineItems, templates.CustomerPipelineItem{
						ID:          rec.Id,
						ProductName: services.ResolveProductName(app, p.ChemicalTypeID, p.TdsID),
						Stage:       p.Stage,
						BadgeClass:  services.StageBadgeClass(p.Stage),
						Amount:      services.FormatQuantity(p.Amount, p.Unit),
					})
				}
			}
		}

		var interactionItems []templates.CustomerInteractionItem
		interactionsCol, _ := app.FindCollectionByNameOrId("interactions")
		if interactionsCol != nil {
			interactions, err := app.FindRecordsByFilter(
				interactionsCol,
				"customer = {:customerId}",
				"-created", 0, 0,
				map[string]any{"customerId": customerID},
			)
			if err == nil {
				for _, rec := range interactions {
					interactionItems = append(interactionItems, templates.CustomerInteractionItem{
						Date:      formatRecordDate(rec, "created"),
						InputText: rec.GetString("input_text"),
						Response:  rec.GetString("ai_response"),
					})
				}
			}
		}

		data := templates.CustomerViewData{
			ID:           record.Id,
			DisplayID:    record.GetString("display_id"),
			Name:         record.GetString("customer_name"),
			SalesStage:   record.GetString("sales_stage"),
			// profiles written by the external AI worker bypass the save
			// handlers, so the markdown cleanup runs on read as well
			Profile:      services.CleanProfileText(record.GetString("profile")),
			CreatedDate:  formatRecordDate(record, "created"),
			Interactions: interactionItems,
			Pipelines:    pipelineItems,
		}

		component := templates.CustomerViewPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}
