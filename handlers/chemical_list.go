package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandleChemicalList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		chemicalsCol, err := app.FindCollectionByNameOrId("chemicals")
		if err != nil {
			log.Printf("chemical_list: could not find chemicals collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(chemicalsCol)
		if err != nil {
			log.Printf("chemical_list: could not query chemicals: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		tdsCol, _ := app.FindCollectionByNameOrId("tds")

		var items []templates.ChemicalListItem
		for _, rec := range records {
			var tdsCount int
			if tdsCol != nil {
				tdsRecords, err := app.FindRecordsByFilter(
					tdsCol,
					"chemical_type = {:chemId}",
					"", 0, 0,
					map[string]any{"chemId": rec.Id},
				)
				if err == nil {
					tdsCount = len(tdsRecords)
				}
			}

			items = append(items, templates.ChemicalListItem{
				ID:       rec.Id,
				Name:     rec.GetString("name"),
				Category: rec.GetString("category"),
				HSCode:   rec.GetString("hs_code"),
				TdsCount: tdsCount,
			})
		}

		data := templates.ChemicalListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ChemicalListContent(data)
		} else {
			component = templates.ChemicalListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
