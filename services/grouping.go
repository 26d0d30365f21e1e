package services

import "sort"

// NoProductKey is the product portion of a grouping key for pipeline
// records that reference neither a chemical type nor a TDS. All such
// records of one customer land in the same bucket on purpose: without a
// product link they represent one undifferentiated opportunity, not many.
const NoProductKey = "none"

// ProductKey returns the product half of a pipeline's grouping key. The
// chemical type reference wins over the TDS reference when both are set.
func ProductKey(p Pipeline) string {
	if p.ChemicalTypeID != "" {
		return p.ChemicalTypeID
	}
	if p.TdsID != "" {
		return p.TdsID
	}
	return NoProductKey
}

// GroupKey returns the full (customer, product) grouping key of a pipeline.
func GroupKey(p Pipeline) string {
	return p.CustomerID + "/" + ProductKey(p)
}

// newerThan reports whether a should sort before b: later created first,
// ties broken by descending ID so the ordering is deterministic. A missing
// created timestamp sorts as the oldest possible record.
func newerThan(a, b Pipeline) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// GroupForListView collapses pipeline records into one representative per
// (customer, product) group: the most recently created record of each
// group. Representatives are returned newest-first. The full history per
// group stays reachable through GroupForDetailView.
func GroupForListView(records []Pipeline) []Pipeline {
	reps := make(map[string]Pipeline)
	for _, p := range records {
		key := GroupKey(p)
		current, seen := reps[key]
		if !seen || newerThan(p, current) {
			reps[key] = p
		}
	}

	out := make([]Pipeline, 0, len(reps))
	for _, p := range reps {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return newerThan(out[i], out[j]) })
	return out
}

// GroupForDetailView returns every record whose grouping key matches,
// newest-first. Used when drilling into one customer-product pair to show
// the full opportunity history.
func GroupForDetailView(records []Pipeline, key string) []Pipeline {
	var out []Pipeline
	for _, p := range records {
		if GroupKey(p) == key {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newerThan(out[i], out[j]) })
	return out
}
