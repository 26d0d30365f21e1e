package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/templates"
)

func HandlePartnerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		partnersCol, err := app.FindCollectionByNameOrId("partners")
		if err != nil {
			log.Printf("partner_list: could not find partners collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(partnersCol)
		if err != nil {
			log.Printf("partner_list: could not query partners: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.PartnerListItem
		for _, rec := range records {
			items = append(items, templates.PartnerListItem{
				ID:      rec.Id,
				Name:    rec.GetString("name"),
				Country: rec.GetString("country"),
			})
		}

		data := templates.PartnerListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PartnerListContent(data)
		} else {
			component = templates.PartnerListPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
