package services

import (
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
)

// UnknownProductName is shown when no product reference of a pipeline can
// be resolved.
const UnknownProductName = "Unknown Product"

// ResolveProductName resolves a pipeline's product references to a display
// name using one ordered fallback chain:
//
//  1. chemical record matched by ID,
//  2. chemical record matched by legacy numeric ID (rows migrated from the
//     old chemical_types table carry their former integer key),
//  3. TDS record matched by ID (brand + grade),
//  4. "Unknown Product".
//
// Keeping the chain in one place is deliberate: product lookups used to be
// scattered across pages with inconsistent fallbacks.
func ResolveProductName(app *pocketbase.PocketBase, chemicalTypeID, tdsID string) string {
	if chemicalTypeID != "" {
		if rec, err := app.FindRecordById("chemicals", chemicalTypeID); err == nil {
			return rec.GetString("name")
		}
		if num, err := strconv.Atoi(chemicalTypeID); err == nil {
			matches, err := app.FindRecordsByFilter(
				"chemicals",
				"legacy_id = {:legacyId}",
				"", 1, 0,
				map[string]any{"legacyId": num},
			)
			if err == nil && len(matches) > 0 {
				return matches[0].GetString("name")
			}
		}
	}

	if tdsID != "" {
		if rec, err := app.FindRecordById("tds", tdsID); err == nil {
			name := strings.TrimSpace(rec.GetString("brand") + " " + rec.GetString("grade"))
			if name != "" {
				return name
			}
		}
	}

	return UnknownProductName
}
