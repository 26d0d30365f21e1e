package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

// loadPipelines reads every pipeline record and maps it into the services
// view. The raw records are returned alongside for callers that still need
// record-level data (dates, lookups).
func loadPipelines(app *pocketbase.PocketBase) ([]*core.Record, []services.Pipeline, error) {
	pipelinesCol, err := app.FindCollectionByNameOrId("pipelines")
	if err != nil {
		return nil, nil, err
	}
	records, err := app.FindAllRecords(pipelinesCol)
	if err != nil {
		return nil, nil, err
	}
	pipelines := make([]services.Pipeline, 0, len(records))
	for _, rec := range records {
		pipelines = append(pipelines, recordToPipeline(rec))
	}
	return records, pipelines, nil
}

func HandlePipelineList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, pipelines, err := loadPipelines(app)
		if err != nil {
			log.Printf("pipeline_list: could not load pipelines: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		recordByID := make(map[string]*core.Record, len(records))
		for _, rec := range records {
			recordByID[rec.Id] = rec
		}

		groupSizes := make(map[string]int)
		for _, p := range pipelines {
			groupSizes[services.GroupKey(p)]++
		}

		reps := services.GroupForListView(pipelines)
		items := make([]templates.PipelineListItem, 0, len(reps))
		for _, p := range reps {
			item := templates.PipelineListItem{
				ID:              p.ID,
				CustomerName:    customerName(app, p.CustomerID),
				ProductName:     services.ResolveProductName(app, p.ChemicalTypeID, p.TdsID),
				Stage:           p.Stage,
				StageBadgeClass: services.StageBadgeClass(p.Stage),
				ProgressPct:     fmt.Sprintf("%.0f", services.StageProgress(p.Stage)),
				Amount:          services.FormatQuantity(p.Amount, p.Unit),
				GroupSize:       groupSizes[services.GroupKey(p)],
			}
			if totals := services.DeriveTotals(p); totals != nil {
				item.TotalValue = services.FormatMoney(totals.TotalAmount, p.Currency)
			} else {
				item.TotalValue = "—"
			}
			if rec, ok := recordByID[p.ID]; ok {
				item.UpdatedDate = formatRecordDate(rec, "updated")
			}
			items = append(items, item)
		}

		data := templates.PipelineListData{
			Items:      items,
			TotalCount: len(pipelines),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PipelineListContent(data)
		} else {
			component = templates.PipelineListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
