package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

// formatHistoryTime renders a stage-history timestamp for display, passing
// through values that are not RFC3339.
func formatHistoryTime(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("02 Jan 2006 15:04")
	}
	return s
}

func HandlePipelineView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_view: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		p := recordToPipeline(record)
		productName := services.ResolveProductName(app, p.ChemicalTypeID, p.TdsID)

		data := templates.PipelineViewData{
			ID:              p.ID,
			CustomerName:    customerName(app, p.CustomerID),
			ProductName:     productName,
			Stage:           p.Stage,
			StageBadgeClass: services.StageBadgeClass(p.Stage),
			ProgressPct:     fmt.Sprintf("%.0f", services.StageProgress(p.Stage)),
			Amount:          services.FormatQuantity(p.Amount, p.Unit),
			UnitPrice:       services.FormatOptionalMoney(p.UnitPrice, p.Currency),
			Currency:        p.Currency,
			BusinessModel:   p.BusinessModel,
			BusinessUnit:    p.BusinessUnit,
			Forex:           p.Forex,
			Incoterm:        p.Incoterm,
			LeadSource:      p.LeadSource,
			ContactPerLead:  p.ContactPerLead,
			CloseReason:     p.CloseReason,
		}

		if !p.ExpectedCloseDate.IsZero() {
			data.ExpectedCloseDate = p.ExpectedCloseDate.Format("02 Jan 2006")
		}

		if totals := services.DeriveTotals(p); totals != nil {
			data.TotalAmount = services.FormatMoney(totals.TotalAmount, p.Currency)
			data.TotalWithVAT = services.FormatMoney(totals.TotalWithVAT, p.Currency)
		} else {
			data.TotalAmount = "—"
			data.TotalWithVAT = "—"
		}

		for _, change := range p.StageHistory() {
			data.History = append(data.History, templates.StageHistoryItem{
				FromStage:     change.FromStage,
				ToStage:       change.ToStage,
				ChangedAt:     formatHistoryTime(change.ChangedAt),
				Justification: change.Justification,
			})
		}

		for _, note := range p.AIInteractions {
			data.Interactions = append(data.Interactions, templates.AIInteractionItem{
				Timestamp: formatHistoryTime(note.Timestamp),
				UserInput: note.UserInput,
				Response:  note.AIResponse,
			})
		}

		if rank := services.StageRank(p.Stage); rank >= 0 {
			for _, stage := range services.PipelineStages[rank+1:] {
				data.NextStages = append(data.NextStages, templates.SelectOption{Value: stage, Label: stage})
			}
		}

		_, pipelines, err := loadPipelines(app)
		if err != nil {
			log.Printf("pipeline_view: could not load group members: %v", err)
		} else {
			for _, member := range services.GroupForDetailView(pipelines, services.GroupKey(p)) {
				if member.ID == p.ID {
					continue
				}
				item := templates.PipelineListItem{
					ID:              member.ID,
					CustomerName:    data.CustomerName,
					ProductName:     productName,
					Stage:           member.Stage,
					StageBadgeClass: services.StageBadgeClass(member.Stage),
					Amount:          services.FormatQuantity(member.Amount, member.Unit),
				}
				if totals := services.DeriveTotals(member); totals != nil {
					item.TotalValue = services.FormatMoney(totals.TotalAmount, member.Currency)
				} else {
					item.TotalValue = "—"
				}
				data.GroupMembers = append(data.GroupMembers, item)
			}
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PipelineViewContent(data)
		} else {
			component = templates.PipelineViewPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
