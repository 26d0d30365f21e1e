package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func DashboardPage(data DashboardData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Dashboard", header, sidebar, DashboardContent(data))
}

func DashboardContent(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Dashboard", "", ""); err != nil {
			return err
		}

		if err := write(w, `<div class="stats shadow mb-6 w-full">`); err != nil {
			return err
		}
		stats := []struct {
			label string
			value string
		}{
			{"Customers", strconv.Itoa(data.CustomerCount)},
			{"Chemicals", strconv.Itoa(data.ChemicalCount)},
			{"Partners", strconv.Itoa(data.PartnerCount)},
			{"Open Pipelines", strconv.Itoa(data.OpenPipelineCount)},
			{"Pipeline Value", data.TotalPipelineValue},
			{"Forecast", data.ForecastValue},
		}
		for _, s := range stats {
			if err := writef(w, `<div class="stat"><div class="stat-title">%s</div><div class="stat-value text-lg">%s</div></div>`,
				esc(s.label), esc(s.value)); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}

		// stage distribution
		if err := write(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">Stage Distribution</h2><table class="table table-sm"><thead><tr><th>Stage</th><th>Pipelines</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, sc := range data.StageDistribution {
			if err := writef(w, `<tr><td>%s</td><td>%d</td></tr>`, esc(sc.Stage), sc.Count); err != nil {
				return err
			}
		}
		if err := write(w, `</tbody></table></div></div>`); err != nil {
			return err
		}

		// forecast by week of expected close
		if err := writef(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">%d-Day Forecast</h2>`, data.ForecastPeriodDays); err != nil {
			return err
		}
		if len(data.ForecastWeeks) == 0 {
			if err := write(w, `<p class="opacity-60">No pipelines expected to close in this window.</p>`); err != nil {
				return err
			}
		} else {
			if err := write(w, `<table class="table table-sm"><thead><tr><th>Week of</th><th>Expected Value</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, fw := range data.ForecastWeeks {
				if err := writef(w, `<tr><td>%s</td><td>%s</td></tr>`, esc(fw.WeekStart), esc(fw.Value)); err != nil {
					return err
				}
			}
			if err := write(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div></div>`); err != nil {
			return err
		}

		// churn risk
		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><h2 class="card-title">Churn Risk</h2>`); err != nil {
			return err
		}
		if len(data.ChurnRisk) == 0 {
			if err := write(w, `<p class="opacity-60">No pipelines stuck in stage.</p>`); err != nil {
				return err
			}
		} else {
			if err := write(w, `<table class="table table-sm"><thead><tr><th>Customer</th><th>Stage</th><th>Days in Stage</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, cr := range data.ChurnRisk {
				if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%d</td><td><a href="/pipelines/%s" class="link">view</a></td></tr>`,
					esc(cr.CustomerName), esc(cr.Stage), cr.DaysInStage, cr.PipelineID); err != nil {
					return err
				}
			}
			if err := write(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		return write(w, `</div></div>`)
	})
}
