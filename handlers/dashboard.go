package handlers

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelinesCol, err := app.FindCollectionByNameOrId("pipelines")
		if err != nil {
			log.Printf("dashboard: could not find pipelines collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(pipelinesCol)
		if err != nil {
			log.Printf("dashboard: could not query pipelines: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		pipelines := make([]services.Pipeline, 0, len(records))
		for _, rec := range records {
			pipelines = append(pipelines, recordToPipeline(rec))
		}

		now := time.Now()
		insights := services.DeriveInsights(pipelines, now)
		forecast := services.DeriveForecast(pipelines, now, 30)

		weekKeys := make([]string, 0, len(forecast.ByWeek))
		for week := range forecast.ByWeek {
			weekKeys = append(weekKeys, week)
		}
		sort.Strings(weekKeys)

		var weeks []templates.ForecastWeek
		for _, key := range weekKeys {
			weekStart := key
			if t, err := time.Parse("2006-01-02", key); err == nil {
				weekStart = t.Format("02 Jan 2006")
			}
			weeks = append(weeks, templates.ForecastWeek{
				WeekStart: weekStart,
				Value:     services.FormatMoney(forecast.ByWeek[key], "USD"),
			})
		}

		var churn []templates.ChurnRiskItem
		for _, entry := range insights.ChurnRisk {
			churn = append(churn, templates.ChurnRiskItem{
				PipelineID:   entry.PipelineID,
				CustomerName: customerName(app, entry.CustomerID),
				Stage:        entry.Stage,
				DaysInStage:  entry.DaysInStage,
			})
		}

		var distribution []templates.StageCount
		for _, stage := range services.PipelineStages {
			distribution = append(distribution, templates.StageCount{
				Stage: stage,
				Count: insights.StageDistribution[stage],
			})
		}

		openCount := 0
		for _, p := range pipelines {
			if p.Stage != "Closed" {
				openCount++
			}
		}

		data := templates.DashboardData{
			CustomerCount:      countRecords(app, "customers"),
			ChemicalCount:      countRecords(app, "chemicals"),
			PartnerCount:       countRecords(app, "partners"),
			OpenPipelineCount:  openCount,
			TotalPipelineValue: services.FormatMoney(insights.TotalPipelineValue, "USD"),
			ForecastValue:      services.FormatMoney(insights.ForecastValue, "USD"),
			StageDistribution:  distribution,
			ChurnRisk:          churn,
			ForecastPeriodDays: forecast.PeriodDays,
			ForecastWeeks:      weeks,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DashboardContent(data)
		} else {
			component = templates.DashboardPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
