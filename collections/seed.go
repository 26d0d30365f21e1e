package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type chemicalDef struct {
	name         string
	category     string
	hsCode       string
	applications []string
	specTemplate map[string]any
	legacyID     int
}

type tdsDef struct {
	chemicalName string // resolved to the chemicals record at insert time
	brand        string
	grade        string
	owner        string
	source       string
	specs        map[string]any
}

type partnerDef struct {
	name     string
	country  string
	metadata map[string]any
}

// Seed populates the chemical catalog, TDS library and supplier partners
// with realistic chemicals trading data. It is safe to call on every
// startup because it returns early if any chemical records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if chemicals already exist ─────────────────
	chemicalsCol, err := app.FindCollectionByNameOrId("chemicals")
	if err != nil {
		return fmt.Errorf("seed: could not find chemicals collection: %w", err)
	}
	existing, err := app.FindAllRecords(chemicalsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query chemicals: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: chemicals collection is empty – inserting seed data …")

	tdsCol, err := app.FindCollectionByNameOrId("tds")
	if err != nil {
		return fmt.Errorf("seed: could not find tds collection: %w", err)
	}
	partnersCol, err := app.FindCollectionByNameOrId("partners")
	if err != nil {
		return fmt.Errorf("seed: could not find partners collection: %w", err)
	}

	chemicalDefs := []chemicalDef{
		{
			name: "Sodium Benzoate", category: "Preservatives", hsCode: "2916.31",
			applications: []string{"Carbonated beverages", "Juices", "Sauces"},
			specTemplate: map[string]any{"assay_pct": "99.0 min", "moisture_pct": "1.5 max", "appearance": "White granules"},
			legacyID:     101,
		},
		{
			name: "Citric Acid Monohydrate", category: "Acidulants", hsCode: "2918.14",
			applications: []string{"Beverages", "Confectionery", "Detergents"},
			specTemplate: map[string]any{"assay_pct": "99.5-100.5", "sulphate_ash_pct": "0.05 max", "mesh": "8-40"},
			legacyID:     102,
		},
		{
			name: "Titanium Dioxide (Rutile)", category: "Pigments", hsCode: "3206.11",
			applications: []string{"Paints & coatings", "Plastics masterbatch", "Paper"},
			specTemplate: map[string]any{"tio2_pct": "93 min", "oil_absorption": "19 max", "whiteness": "95 min"},
			legacyID:     103,
		},
		{
			name: "Caustic Soda Flakes", category: "Alkalis", hsCode: "2815.11",
			applications: []string{"Soap & detergents", "Textile processing", "Water treatment"},
			specTemplate: map[string]any{"naoh_pct": "98.5 min", "na2co3_pct": "0.8 max", "nacl_pct": "0.03 max"},
			legacyID:     104,
		},
		{
			name: "Carboxymethyl Cellulose (CMC)", category: "Thickeners", hsCode: "3912.31",
			applications: []string{"Detergent powder", "Drilling fluids", "Food grade stabiliser"},
			specTemplate: map[string]any{"purity_pct": "55 min", "viscosity_cps": "50-5000", "degree_substitution": "0.65-0.95"},
			legacyID:     105,
		},
		{
			name: "Soda Ash Dense", category: "Alkalis", hsCode: "2836.20",
			applications: []string{"Glass manufacturing", "Detergents", "Water treatment"},
			specTemplate: map[string]any{"na2co3_pct": "99.2 min", "nacl_pct": "0.5 max", "bulk_density": "0.9-1.1"},
			legacyID:     106,
		},
		{
			name: "Sodium Lauryl Ether Sulphate (SLES 70%)", category: "Surfactants", hsCode: "3402.11",
			applications: []string{"Shampoo", "Liquid detergents", "Dishwash"},
			specTemplate: map[string]any{"active_matter_pct": "70 ± 2", "ph_10pct": "7.0-9.5", "color_klett": "10 max"},
			legacyID:     107,
		},
		{
			name: "Polyvinyl Alcohol (PVA)", category: "Polymers", hsCode: "3905.30",
			applications: []string{"Adhesives", "Textile sizing", "Paper coating"},
			specTemplate: map[string]any{"hydrolysis_pct": "87-89", "viscosity_cps": "20-30", "volatiles_pct": "5 max"},
			legacyID:     108,
		},
	}

	chemicalIDs := make(map[string]string, len(chemicalDefs))
	for _, d := range chemicalDefs {
		r := core.NewRecord(chemicalsCol)
		r.Set("name", d.name)
		r.Set("category", d.category)
		r.Set("hs_code", d.hsCode)
		r.Set("applications", d.applications)
		r.Set("spec_template", d.specTemplate)
		r.Set("legacy_id", d.legacyID)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save chemical %q: %w", d.name, err)
		}
		chemicalIDs[d.name] = r.Id
	}

	tdsDefs := []tdsDef{
		{
			chemicalName: "Sodium Benzoate", brand: "Wuhan Youji", grade: "Food Grade BP/E211",
			owner: "LeanChems", source: "China",
			specs: map[string]any{"assay_pct": "99.7", "moisture_pct": "0.8", "packing": "25kg kraft bag"},
		},
		{
			chemicalName: "Citric Acid Monohydrate", brand: "TTCA", grade: "Food Grade BP2012",
			owner: "LeanChems", source: "China",
			specs: map[string]any{"assay_pct": "99.8", "mesh": "8-40", "packing": "25kg bag"},
		},
		{
			chemicalName: "Titanium Dioxide (Rutile)", brand: "Lomon R-996", grade: "Industrial",
			owner: "Partner", source: "China",
			specs: map[string]any{"tio2_pct": "94.2", "oil_absorption": "17", "packing": "25kg bag"},
		},
		{
			chemicalName: "Caustic Soda Flakes", brand: "Tianye", grade: "99% Industrial",
			owner: "LeanChems", source: "China",
			specs: map[string]any{"naoh_pct": "99.0", "packing": "25kg PP bag"},
		},
		{
			chemicalName: "Sodium Lauryl Ether Sulphate (SLES 70%)", brand: "Galaxy", grade: "2EO Cosmetic",
			owner: "Partner", source: "India",
			specs: map[string]any{"active_matter_pct": "70.1", "packing": "170kg drum"},
		},
	}

	for _, d := range tdsDefs {
		chemID, ok := chemicalIDs[d.chemicalName]
		if !ok {
			return fmt.Errorf("seed: tds %q references unknown chemical %q", d.brand, d.chemicalName)
		}
		r := core.NewRecord(tdsCol)
		r.Set("chemical_type", chemID)
		r.Set("brand", d.brand)
		r.Set("grade", d.grade)
		r.Set("owner", d.owner)
		r.Set("source", d.source)
		r.Set("specs", d.specs)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save tds %q: %w", d.brand, err)
		}
	}

	partnerDefs := []partnerDef{
		{
			name: "Wuhan Youji Industries", country: "China",
			metadata: map[string]any{"products": []string{"Sodium Benzoate", "Benzoic Acid"}, "incoterm": "CIF Djibouti"},
		},
		{
			name: "TTCA Co., Ltd.", country: "China",
			metadata: map[string]any{"products": []string{"Citric Acid Monohydrate", "Citric Acid Anhydrous"}, "incoterm": "CIF Mombasa"},
		},
		{
			name: "Galaxy Surfactants", country: "India",
			metadata: map[string]any{"products": []string{"SLES 70%", "CAPB"}, "incoterm": "CIF Djibouti"},
		},
		{
			name: "Lomon Billions Group", country: "China",
			metadata: map[string]any{"products": []string{"Titanium Dioxide R-996", "Titanium Dioxide BLR-895"}},
		},
	}

	for _, d := range partnerDefs {
		r := core.NewRecord(partnersCol)
		r.Set("name", d.name)
		r.Set("country", d.country)
		r.Set("metadata", d.metadata)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save partner %q: %w", d.name, err)
		}
	}

	log.Printf("seed: inserted %d chemicals, %d TDS documents, %d partners\n",
		len(chemicalDefs), len(tdsDefs), len(partnerDefs))
	return nil
}
