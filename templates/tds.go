package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func TdsListPage(data TdsListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("TDS Library", header, sidebar, TdsListContent(data))
}

func TdsListContent(data TdsListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "TDS Library", "/tds/create", "New TDS"); err != nil {
			return err
		}
		if len(data.Groups) == 0 {
			return write(w, `<p class="opacity-60">No technical data sheets yet.</p>`)
		}
		for _, g := range data.Groups {
			if err := writef(w, `<div class="card bg-base-100 shadow mb-4"><div class="card-body"><h2 class="card-title">%s</h2><table class="table table-sm"><thead><tr><th>Brand</th><th>Grade</th><th>Owner</th><th>Source</th><th></th></tr></thead><tbody>`,
				esc(g.ChemicalName)); err != nil {
				return err
			}
			for _, it := range g.Items {
				if err := writef(w, `<tr><td class="font-medium">%s</td><td>%s</td><td>%s</td><td>%s</td><td class="flex gap-2"><a href="/tds/%s/edit" class="btn btn-ghost btn-xs">Edit</a>`,
					esc(it.Brand), esc(it.Grade), esc(it.Owner), esc(it.Source), it.ID); err != nil {
					return err
				}
				if err := deleteButton(w, "/tds/"+it.ID); err != nil {
					return err
				}
				if err := write(w, `</td></tr>`); err != nil {
					return err
				}
			}
			if err := write(w, `</tbody></table></div></div>`); err != nil {
				return err
			}
		}
		return writef(w, `<p class="text-sm opacity-60">%d TDS document(s)</p>`, data.TotalCount)
	})
}

func TdsFormPage(data TdsFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New TDS"
	if data.IsEdit {
		title = "Edit TDS"
	}
	return Layout(title, header, sidebar, TdsFormContent(data))
}

func TdsFormContent(data TdsFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "New TDS"
		action := "/tds"
		if data.IsEdit {
			title = "Edit TDS"
			action = "/tds/" + data.ID + "/save"
		}
		if err := pageHeading(w, title, "", ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card bg-base-100 shadow max-w-2xl"><div class="card-body"><form hx-post="%s" hx-target="body">`, action); err != nil {
			return err
		}
		if err := formSelect(w, "Chemical Type", "chemical_type", data.Values["chemical_type"], data.ChemicalOptions, data.Errors["chemical_type"]); err != nil {
			return err
		}
		if err := formField(w, "Brand", "brand", data.Values["brand"], data.Errors["brand"]); err != nil {
			return err
		}
		if err := formField(w, "Grade", "grade", data.Values["grade"], data.Errors["grade"]); err != nil {
			return err
		}
		if err := formField(w, "Owner", "owner", data.Values["owner"], data.Errors["owner"]); err != nil {
			return err
		}
		if err := formField(w, "Source", "source", data.Values["source"], data.Errors["source"]); err != nil {
			return err
		}
		return write(w, `<div class="card-actions justify-end"><a href="/tds" class="btn btn-ghost">Cancel</a><button type="submit" class="btn btn-primary">Save</button></div></form></div></div>`)
	})
}
