package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateLegacyProductLinks finds all pipeline records that carry a numeric
// legacy chemical id in their metadata but have no chemical_type relation
// set, and links them to the matching chemicals record by legacy_id.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateLegacyProductLinks(app *pocketbase.PocketBase) error {
	pipelinesCol, err := app.FindCollectionByNameOrId("pipelines")
	if err != nil {
		return fmt.Errorf("migrate: could not find pipelines collection: %w", err)
	}

	chemicalsCol, err := app.FindCollectionByNameOrId("chemicals")
	if err != nil {
		return fmt.Errorf("migrate: could not find chemicals collection: %w", err)
	}

	unlinked, err := app.FindRecordsByFilter(
		pipelinesCol,
		"chemical_type = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query unlinked pipelines: %w", err)
	}

	if len(unlinked) == 0 {
		return nil
	}

	migrated := 0
	for _, pipeline := range unlinked {
		meta := map[string]any{}
		if err := pipeline.UnmarshalJSONField("metadata", &meta); err != nil {
			continue
		}
		legacyID, ok := meta["legacy_chemical_id"].(float64)
		if !ok {
			continue
		}

		matches, err := app.FindRecordsByFilter(
			chemicalsCol,
			"legacy_id = {:id}",
			"", 1, 0,
			map[string]any{"id": legacyID},
		)
		if err != nil || len(matches) == 0 {
			log.Printf("migrate: no chemical with legacy_id %v for pipeline %s\n", legacyID, pipeline.Id)
			continue
		}

		pipeline.Set("chemical_type", matches[0].Id)
		if err := app.Save(pipeline); err != nil {
			log.Printf("migrate: failed to link pipeline %s to chemical %s: %v\n", pipeline.Id, matches[0].Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: linked %d pipeline(s) to chemicals by legacy id\n", migrated)
	}
	return nil
}
