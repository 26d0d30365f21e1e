package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func PartnerListPage(data PartnerListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Partners", header, sidebar, PartnerListContent(data))
}

func PartnerListContent(data PartnerListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Partners", "/partners/create", "New Partner"); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			return write(w, `<p class="opacity-60">No supplier partners yet.</p>`)
		}
		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><table class="table"><thead><tr><th>Name</th><th>Country</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, it := range data.Items {
			if err := writef(w, `<tr><td class="font-medium">%s</td><td>%s</td><td class="flex gap-2"><a href="/partners/%s/edit" class="btn btn-ghost btn-xs">Edit</a>`,
				esc(it.Name), esc(it.Country), it.ID); err != nil {
				return err
			}
			if err := deleteButton(w, "/partners/"+it.ID); err != nil {
				return err
			}
			if err := write(w, `</td></tr>`); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table><p class="text-sm opacity-60">%d partner(s)</p></div></div>`, data.TotalCount)
	})
}

func PartnerFormPage(data PartnerFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Partner"
	if data.IsEdit {
		title = "Edit Partner"
	}
	return Layout(title, header, sidebar, PartnerFormContent(data))
}

func PartnerFormContent(data PartnerFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "New Partner"
		action := "/partners"
		if data.IsEdit {
			title = "Edit Partner"
			action = "/partners/" + data.ID + "/save"
		}
		if err := pageHeading(w, title, "", ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card bg-base-100 shadow max-w-2xl"><div class="card-body"><form hx-post="%s" hx-target="body">`, action); err != nil {
			return err
		}
		if err := formField(w, "Name", "name", data.Values["name"], data.Errors["name"]); err != nil {
			return err
		}
		if err := formField(w, "Country", "country", data.Values["country"], data.Errors["country"]); err != nil {
			return err
		}
		return write(w, `<div class="card-actions justify-end"><a href="/partners" class="btn btn-ghost">Cancel</a><button type="submit" class="btn btn-primary">Save</button></div></form></div></div>`)
	})
}
