package services

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		name   string
		p      Pipeline
		expect string
	}{
		{
			name:   "chemical type wins over tds",
			p:      Pipeline{CustomerID: "cust1", ChemicalTypeID: "chem1", TdsID: "tds1"},
			expect: "cust1/chem1",
		},
		{
			name:   "tds when no chemical type",
			p:      Pipeline{CustomerID: "cust1", TdsID: "tds1"},
			expect: "cust1/tds1",
		},
		{
			name:   "none bucket when both absent",
			p:      Pipeline{CustomerID: "cust1"},
			expect: "cust1/none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupKey(tt.p); got != tt.expect {
				t.Errorf("GroupKey() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestGroupForListView_PicksNewestPerGroup(t *testing.T) {
	records := []Pipeline{
		{ID: "p1", CustomerID: "cust1", ChemicalTypeID: "chem1", CreatedAt: day("2024-01-01")},
		{ID: "p2", CustomerID: "cust1", ChemicalTypeID: "chem1", CreatedAt: day("2024-03-01")},
		{ID: "p3", CustomerID: "cust2", ChemicalTypeID: "chem1", CreatedAt: day("2024-02-01")},
	}

	got := GroupForListView(records)
	if len(got) != 2 {
		t.Fatalf("GroupForListView() returned %d records, want 2", len(got))
	}
	// Newest representative first.
	if got[0].ID != "p2" {
		t.Errorf("first representative = %s, want p2", got[0].ID)
	}
	if got[1].ID != "p3" {
		t.Errorf("second representative = %s, want p3", got[1].ID)
	}
}

func TestGroupForListView_RepresentativeRecency(t *testing.T) {
	records := []Pipeline{
		{ID: "a", CustomerID: "c", TdsID: "t", CreatedAt: day("2024-01-05")},
		{ID: "b", CustomerID: "c", TdsID: "t", CreatedAt: day("2024-06-01")},
		{ID: "c", CustomerID: "c", TdsID: "t", CreatedAt: day("2024-03-10")},
	}

	got := GroupForListView(records)
	if len(got) != 1 {
		t.Fatalf("expected 1 representative, got %d", len(got))
	}
	for _, r := range records {
		if got[0].CreatedAt.Before(r.CreatedAt) {
			t.Errorf("representative %s (created %v) older than %s (%v)",
				got[0].ID, got[0].CreatedAt, r.ID, r.CreatedAt)
		}
	}
}

func TestGroupForListView_MissingCreatedSortsOldest(t *testing.T) {
	records := []Pipeline{
		{ID: "dated", CustomerID: "c", TdsID: "t", CreatedAt: day("2020-01-01")},
		{ID: "undated", CustomerID: "c", TdsID: "t"},
	}

	got := GroupForListView(records)
	if len(got) != 1 || got[0].ID != "dated" {
		t.Fatalf("expected dated record as representative, got %+v", got)
	}
}

func TestGroupForListView_TieBrokenByID(t *testing.T) {
	created := day("2024-04-01")
	records := []Pipeline{
		{ID: "aaa", CustomerID: "c", TdsID: "t", CreatedAt: created},
		{ID: "zzz", CustomerID: "c", TdsID: "t", CreatedAt: created},
	}

	first := GroupForListView(records)
	second := GroupForListView([]Pipeline{records[1], records[0]})
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected single representative, got %d and %d", len(first), len(second))
	}
	if first[0].ID != second[0].ID {
		t.Errorf("tie-break not deterministic: %s vs %s", first[0].ID, second[0].ID)
	}
	if first[0].ID != "zzz" {
		t.Errorf("tie-break pick = %s, want zzz", first[0].ID)
	}
}

func TestGroupForListView_NoneBucketGroupsTogether(t *testing.T) {
	records := []Pipeline{
		{ID: "p1", CustomerID: "cust1", CreatedAt: day("2024-01-01")},
		{ID: "p2", CustomerID: "cust1", CreatedAt: day("2024-02-01")},
		{ID: "p3", CustomerID: "cust2", CreatedAt: day("2024-01-15")},
	}

	got := GroupForListView(records)
	if len(got) != 2 {
		t.Fatalf("records without product refs must share one bucket per customer; got %d groups", len(got))
	}
}

func TestGroupForDetailView_FullHistoryNewestFirst(t *testing.T) {
	records := []Pipeline{
		{ID: "p1", CustomerID: "cust1", ChemicalTypeID: "chem1", CreatedAt: day("2024-01-01")},
		{ID: "p2", CustomerID: "cust1", ChemicalTypeID: "chem1", CreatedAt: day("2024-03-01")},
		{ID: "p3", CustomerID: "cust1", ChemicalTypeID: "other", CreatedAt: day("2024-02-01")},
	}

	got := GroupForDetailView(records, "cust1/chem1")
	if len(got) != 2 {
		t.Fatalf("GroupForDetailView() returned %d records, want 2", len(got))
	}
	if got[0].ID != "p2" || got[1].ID != "p1" {
		t.Errorf("detail view order = [%s %s], want [p2 p1]", got[0].ID, got[1].ID)
	}
}

// No record may be lost or duplicated by grouping: concatenating the detail
// views of every distinct key must reproduce the input set.
func TestGrouping_Completeness(t *testing.T) {
	records := []Pipeline{
		{ID: "p1", CustomerID: "c1", ChemicalTypeID: "chem1", CreatedAt: day("2024-01-01")},
		{ID: "p2", CustomerID: "c1", ChemicalTypeID: "chem1", CreatedAt: day("2024-02-01")},
		{ID: "p3", CustomerID: "c1", TdsID: "tds1", CreatedAt: day("2024-03-01")},
		{ID: "p4", CustomerID: "c2"},
		{ID: "p5", CustomerID: "c2", CreatedAt: day("2024-04-01")},
	}

	keys := make(map[string]bool)
	for _, r := range records {
		keys[GroupKey(r)] = true
	}

	seen := make(map[string]int)
	for key := range keys {
		for _, r := range GroupForDetailView(records, key) {
			seen[r.ID]++
		}
	}

	if len(seen) != len(records) {
		t.Fatalf("detail views cover %d records, want %d", len(seen), len(records))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("record %s appears %d times across detail views, want 1", id, count)
		}
	}
}

func TestGroupForListView_Empty(t *testing.T) {
	if got := GroupForListView(nil); len(got) != 0 {
		t.Errorf("GroupForListView(nil) = %v, want empty", got)
	}
	if got := GroupForDetailView(nil, "c/none"); len(got) != 0 {
		t.Errorf("GroupForDetailView(nil) = %v, want empty", got)
	}
}
