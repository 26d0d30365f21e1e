package services

import (
	"testing"
	"time"
)

var insightsNow = time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

func stageHistoryMeta(changedAt string) map[string]any {
	return map[string]any{
		"stage_history": []any{
			map[string]any{
				"from_stage": "Lead ID",
				"to_stage":   "Discovery",
				"changed_at": changedAt,
			},
		},
	}
}

func TestDeriveInsights_Values(t *testing.T) {
	records := []Pipeline{
		{ID: "p1", Stage: "Discovery", Amount: f64(1000)},
		{ID: "p2", Stage: "Proposal", Amount: f64(2000)},
		{ID: "p3", Stage: "Closed", Amount: f64(5000)},
		{ID: "p4", Stage: "Sample"}, // no amount
	}

	got := DeriveInsights(records, insightsNow)

	// Open pipeline value excludes Closed.
	if got.TotalPipelineValue != 3000 {
		t.Errorf("TotalPipelineValue = %v, want 3000", got.TotalPipelineValue)
	}
	// Forecast counts Proposal, Confirmation and Closed.
	if got.ForecastValue != 7000 {
		t.Errorf("ForecastValue = %v, want 7000", got.ForecastValue)
	}
	if got.StageDistribution["Discovery"] != 1 ||
		got.StageDistribution["Proposal"] != 1 ||
		got.StageDistribution["Closed"] != 1 ||
		got.StageDistribution["Sample"] != 1 {
		t.Errorf("StageDistribution = %v", got.StageDistribution)
	}
	if got.StageDistribution["Lead ID"] != 0 {
		t.Errorf("Lead ID count = %d, want 0", got.StageDistribution["Lead ID"])
	}
}

func TestDeriveInsights_ChurnRisk(t *testing.T) {
	stuck := insightsNow.AddDate(0, 0, -30).Format(time.RFC3339)
	fresh := insightsNow.AddDate(0, 0, -3).Format(time.RFC3339)

	records := []Pipeline{
		{ID: "stuck", CustomerID: "c1", Stage: "Discovery", Metadata: stageHistoryMeta(stuck)},
		{ID: "fresh", CustomerID: "c2", Stage: "Discovery", Metadata: stageHistoryMeta(fresh)},
		{ID: "closed", CustomerID: "c3", Stage: "Closed", Metadata: stageHistoryMeta(stuck)},
		{ID: "nohistory", CustomerID: "c4", Stage: "Sample"},
	}

	got := DeriveInsights(records, insightsNow)

	if len(got.ChurnRisk) != 1 {
		t.Fatalf("ChurnRisk = %+v, want exactly the stuck record", got.ChurnRisk)
	}
	entry := got.ChurnRisk[0]
	if entry.PipelineID != "stuck" || entry.DaysInStage != 30 || entry.Stage != "Discovery" {
		t.Errorf("ChurnRisk[0] = %+v", entry)
	}
}

func TestDeriveForecast(t *testing.T) {
	// 2026-08-26 is a Wednesday; its week starts Monday 2026-08-24.
	inWindow := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)
	nextWeek := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	outOfWindow := insightsNow.AddDate(0, 2, 0)

	records := []Pipeline{
		{ID: "p1", Stage: "Proposal", Amount: f64(1000), ExpectedCloseDate: inWindow},
		{ID: "p2", Stage: "Confirmation", Amount: f64(500), ExpectedCloseDate: nextWeek},
		{ID: "p3", Stage: "Proposal", Amount: f64(9999), ExpectedCloseDate: outOfWindow},
		{ID: "p4", Stage: "Discovery", Amount: f64(50)}, // no close date
	}

	got := DeriveForecast(records, insightsNow, 30)

	if got.PeriodDays != 30 {
		t.Errorf("PeriodDays = %d", got.PeriodDays)
	}
	if got.TotalValue != 1500 {
		t.Errorf("TotalValue = %v, want 1500", got.TotalValue)
	}
	if got.PipelineCount != 2 {
		t.Errorf("PipelineCount = %d, want 2", got.PipelineCount)
	}
	if got.ByStage["Proposal"] != 1000 || got.ByStage["Confirmation"] != 500 {
		t.Errorf("ByStage = %v", got.ByStage)
	}
	if got.ByWeek["2026-08-24"] != 1000 {
		t.Errorf("ByWeek[2026-08-24] = %v, want 1000", got.ByWeek["2026-08-24"])
	}
	if got.ByWeek["2026-08-31"] != 500 {
		t.Errorf("ByWeek[2026-08-31] = %v, want 500", got.ByWeek["2026-08-31"])
	}
}

func TestDeriveForecast_Empty(t *testing.T) {
	got := DeriveForecast(nil, insightsNow, 30)
	if got.TotalValue != 0 || got.PipelineCount != 0 {
		t.Errorf("empty forecast = %+v", got)
	}
}
