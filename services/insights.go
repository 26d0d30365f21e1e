package services

import (
	"sort"
	"time"
)

// forecastStages are the stages whose deal value counts as committed
// revenue.
var forecastStages = []string{"Proposal", "Confirmation", "Closed"}

// churnRiskDays is how long a pipeline may sit in one stage before it is
// flagged as at risk.
const churnRiskDays = 14

// ChurnRiskEntry flags a pipeline stuck in its current stage.
type ChurnRiskEntry struct {
	PipelineID  string
	CustomerID  string
	Stage       string
	DaysInStage int
}

// PipelineInsights aggregates the health of the whole pipeline.
type PipelineInsights struct {
	TotalPipelineValue float64
	ForecastValue      float64
	StageDistribution  map[string]int
	ChurnRisk          []ChurnRiskEntry
}

// DeriveInsights computes pipeline analytics from an in-memory snapshot.
// Total pipeline value covers open records only (Closed excluded); forecast
// value sums Proposal, Confirmation and Closed. Churn risk is judged from
// the last stage_history entry: more than 14 days without movement flags
// the record. Records without amount contribute zero value.
func DeriveInsights(records []Pipeline, now time.Time) PipelineInsights {
	insights := PipelineInsights{
		StageDistribution: make(map[string]int, len(PipelineStages)),
	}
	for _, stage := range PipelineStages {
		insights.StageDistribution[stage] = 0
	}

	for _, p := range records {
		if _, known := insights.StageDistribution[p.Stage]; known {
			insights.StageDistribution[p.Stage]++
		}

		var amount float64
		if p.Amount != nil {
			amount = *p.Amount
		}
		if p.Stage != "Closed" {
			insights.TotalPipelineValue += amount
		}
		if isOption(p.Stage, forecastStages) {
			insights.ForecastValue += amount
		}

		if p.Stage == "Closed" {
			continue
		}
		if entry, ok := churnRisk(p, now); ok {
			insights.ChurnRisk = append(insights.ChurnRisk, entry)
		}
	}

	sort.Slice(insights.ChurnRisk, func(i, j int) bool {
		if insights.ChurnRisk[i].DaysInStage != insights.ChurnRisk[j].DaysInStage {
			return insights.ChurnRisk[i].DaysInStage > insights.ChurnRisk[j].DaysInStage
		}
		return insights.ChurnRisk[i].PipelineID < insights.ChurnRisk[j].PipelineID
	})

	return insights
}

// churnRisk checks the last stage change of a pipeline against the churn
// threshold. Records without usable history are not flagged.
func churnRisk(p Pipeline, now time.Time) (ChurnRiskEntry, bool) {
	history := p.StageHistory()
	if len(history) == 0 {
		return ChurnRiskEntry{}, false
	}
	changedAt, err := time.Parse(time.RFC3339, history[len(history)-1].ChangedAt)
	if err != nil {
		return ChurnRiskEntry{}, false
	}
	days := int(now.Sub(changedAt).Hours() / 24)
	if days <= churnRiskDays {
		return ChurnRiskEntry{}, false
	}
	return ChurnRiskEntry{
		PipelineID:  p.ID,
		CustomerID:  p.CustomerID,
		Stage:       p.Stage,
		DaysInStage: days,
	}, true
}

// PipelineForecast is the committed-revenue outlook for a time window.
type PipelineForecast struct {
	PeriodDays    int
	TotalValue    float64
	ByStage       map[string]float64
	ByWeek        map[string]float64
	PipelineCount int
}

// DeriveForecast sums deal value for pipelines expected to close within the
// next daysAhead days, broken down by stage and by the Monday of the
// expected close week. Records without an expected close date are skipped.
func DeriveForecast(records []Pipeline, now time.Time, daysAhead int) PipelineForecast {
	forecast := PipelineForecast{
		PeriodDays: daysAhead,
		ByStage:    make(map[string]float64, len(PipelineStages)),
		ByWeek:     make(map[string]float64),
	}
	for _, stage := range PipelineStages {
		forecast.ByStage[stage] = 0
	}

	end := now.AddDate(0, 0, daysAhead)
	for _, p := range records {
		if p.ExpectedCloseDate.IsZero() || p.ExpectedCloseDate.After(end) {
			continue
		}
		var amount float64
		if p.Amount != nil {
			amount = *p.Amount
		}
		if _, known := forecast.ByStage[p.Stage]; known {
			forecast.ByStage[p.Stage] += amount
		}
		forecast.TotalValue += amount
		forecast.PipelineCount++

		weekday := int(p.ExpectedCloseDate.Weekday())
		// time.Weekday counts Sunday as 0; weeks here start on Monday.
		offset := (weekday + 6) % 7
		weekStart := p.ExpectedCloseDate.AddDate(0, 0, -offset)
		forecast.ByWeek[weekStart.Format("2006-01-02")] += amount
	}

	return forecast
}
