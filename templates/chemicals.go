package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func ChemicalListPage(data ChemicalListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Chemicals", header, sidebar, ChemicalListContent(data))
}

func ChemicalListContent(data ChemicalListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Chemicals", "/chemicals/create", "New Chemical"); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			return write(w, `<p class="opacity-60">No chemicals in the catalog yet.</p>`)
		}
		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><table class="table"><thead><tr><th>Name</th><th>Category</th><th>HS Code</th><th>TDS</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, it := range data.Items {
			if err := writef(w, `<tr><td class="font-medium">%s</td><td>%s</td><td>%s</td><td>%d</td><td class="flex gap-2"><a href="/chemicals/%s/edit" class="btn btn-ghost btn-xs">Edit</a>`,
				esc(it.Name), esc(it.Category), esc(it.HSCode), it.TdsCount, it.ID); err != nil {
				return err
			}
			if err := deleteButton(w, "/chemicals/"+it.ID); err != nil {
				return err
			}
			if err := write(w, `</td></tr>`); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table><p class="text-sm opacity-60">%d chemical(s)</p></div></div>`, data.TotalCount)
	})
}

func ChemicalFormPage(data ChemicalFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Chemical"
	if data.IsEdit {
		title = "Edit Chemical"
	}
	return Layout(title, header, sidebar, ChemicalFormContent(data))
}

func ChemicalFormContent(data ChemicalFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "New Chemical"
		action := "/chemicals"
		if data.IsEdit {
			title = "Edit Chemical"
			action = "/chemicals/" + data.ID + "/save"
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
		if err := formField(w, "Category", "category", data.Values["category"], data.Errors["category"]); err != nil {
			return err
		}
		if err := formField(w, "HS Code", "hs_code", data.Values["hs_code"], data.Errors["hs_code"]); err != nil {
			return err
		}
		if err := formTextarea(w, "Applications (one per line)", "applications", data.Values["applications"], 4); err != nil {
			return err
		}
		return write(w, `<div class="card-actions justify-end"><a href="/chemicals" class="btn btn-ghost">Cancel</a><button type="submit" class="btn btn-primary">Save</button></div></form></div></div>`)
	})
}
