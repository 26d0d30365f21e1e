package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandleTdsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tdsCol, err := app.FindCollectionByNameOrId("tds")
		if err != nil {
			log.Printf("tds_list: could not find tds collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(tdsCol)
		if err != nil {
			log.Printf("tds_list: could not query tds: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// group by linked chemical, unlinked docs last
		grouped := make(map[string][]templates.TdsListItem)
		for _, rec := range records {
			name := "Unlinked"
			if chemID := rec.GetString("chemical_type"); chemID != "" {
				if chem, err := app.FindRecordById("chemicals", chemID); err == nil {
					name = chem.GetString("name")
				}
			}
			grouped[name] = append(grouped[name], templates.TdsListItem{
				ID:     rec.Id,
				Brand:  rec.GetString("brand"),
				Grade:  rec.GetString("grade"),
				Owner:  rec.GetString("owner"),
				Source: rec.GetString("source"),
			})
		}

		names := make([]string, 0, len(grouped))
		for name := range grouped {
			if name != "Unlinked" {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		if _, ok := grouped["Unlinked"]; ok {
			names = append(names, "Unlinked")
		}

		var groups []templates.TdsGroup
		for _, name := range names {
			groups = append(groups, templates.TdsGroup{
				ChemicalName: name,
				Items:        grouped[name],
			})
		}

		data := templates.TdsListData{
			Groups:     groups,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.TdsListContent(data)
		} else {
			component = templates.TdsListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// chemicalSelectOptions builds the chemical dropdown for TDS and pipeline forms.
func chemicalSelectOptions(app *pocketbase.PocketBase) []templates.SelectOption {
	col, err := app.FindCollectionByNameOrId("chemicals")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return nil
	}
	var options []templates.SelectOption
	for _, rec := range records {
		options = append(options, templates.SelectOption{
			Value: rec.Id,
			Label: rec.GetString("name"),
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options
}
