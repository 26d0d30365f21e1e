package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func CustomerListPage(data CustomerListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Customers", header, sidebar, CustomerListContent(data))
}

func CustomerListContent(data CustomerListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Customers", "/customers/create", "New Customer"); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			return write(w, `<p class="opacity-60">No customers yet.</p>`)
		}
		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><table class="table"><thead><tr><th>ID</th><th>Name</th><th>Sales Stage</th><th>Pipelines</th><th>Created</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, it := range data.Items {
			if err := writef(w, `<tr><td>%s</td><td><a href="/customers/%s" class="link font-medium">%s</a></td><td><span class="badge %s">%s</span></td><td>%d</td><td>%s</td><td class="flex gap-2"><a href="/customers/%s/edit" class="btn btn-ghost btn-xs">Edit</a>`,
				esc(it.DisplayID), it.ID, esc(it.Name), it.StageBadgeClass, esc(it.SalesStage), it.PipelineCount, esc(it.CreatedDate), it.ID); err != nil {
				return err
			}
			if err := deleteButton(w, "/customers/"+it.ID); err != nil {
				return err
			}
			if err := write(w, `</td></tr>`); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table><p class="text-sm opacity-60">%d customer(s)</p></div></div>`, data.TotalCount)
	})
}

func CustomerFormPage(data CustomerFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Customer"
	if data.IsEdit {
		title = "Edit Customer"
	}
	return Layout(title, header, sidebar, CustomerFormContent(data))
}

func CustomerFormContent(data CustomerFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "New Customer"
		action := "/customers"
		if data.IsEdit {
			title = "Edit Customer"
			action = "/customers/" + data.ID + "/save"
		}
		if err := pageHeading(w, title, "", ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card bg-base-100 shadow max-w-2xl"><div class="card-body"><form hx-post="%s" hx-target="body">`, action); err != nil {
			return err
		}
		if err := formField(w, "Customer Name", "customer_name", data.Values["customer_name"], data.Errors["customer_name"]); err != nil {
			return err
		}
		if err := formTextarea(w, "Profile", "profile", data.Values["profile"], 8); err != nil {
			return err
		}
		return write(w, `<div class="card-actions justify-end"><a href="/customers" class="btn btn-ghost">Cancel</a><button type="submit" class="btn btn-primary">Save</button></div></form></div></div>`)
	})
}

func CustomerViewPage(data CustomerViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.Name, header, sidebar, CustomerViewContent(data))
}

func CustomerViewContent(data CustomerViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, data.Name, "/customers/"+data.ID+"/edit", "Edit"); err != nil {
			return err
		}

		if err := writef(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><div class="grid grid-cols-3 gap-4"><div><div class="text-sm opacity-60">Display ID</div><div>%s</div></div><div><div class="text-sm opacity-60">Sales Stage</div><div>%s</div></div><div><div class="text-sm opacity-60">Since</div><div>%s</div></div></div>`,
			esc(data.DisplayID), esc(data.SalesStage), esc(data.CreatedDate)); err != nil {
			return err
		}
		if data.Profile != "" {
			if err := writef(w, `<div class="mt-4"><div class="text-sm opacity-60">Profile</div><div class="whitespace-pre-line">%s</div></div>`, esc(data.Profile)); err != nil {
				return err
			}
		}
		if err := write(w, `</div></div>`); err != nil {
			return err
		}

		if err := write(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">Pipelines</h2>`); err != nil {
			return err
		}
		if len(data.Pipelines) == 0 {
			if err := write(w, `<p class="opacity-60">No pipelines.</p>`); err != nil {
				return err
			}
		} else {
			if err := write(w, `<table class="table table-sm"><thead><tr><th>Product</th><th>Stage</th><th>Amount</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, p := range data.Pipelines {
				if err := writef(w, `<tr><td><a href="/pipelines/%s" class="link">%s</a></td><td><span class="badge %s">%s</span></td><td>%s</td></tr>`,
					p.ID, esc(p.ProductName), p.BadgeClass, esc(p.Stage), esc(p.Amount)); err != nil {
					return err
				}
			}
			if err := write(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div></div>`); err != nil {
			return err
		}

		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><h2 class="card-title">Interactions</h2>`); err != nil {
			return err
		}
		if len(data.Interactions) == 0 {
			if err := write(w, `<p class="opacity-60">No interactions logged.</p>`); err != nil {
				return err
			}
		} else {
			for _, in := range data.Interactions {
				if err := writef(w, `<div class="border-l-2 border-primary pl-3 mb-3"><div class="text-sm opacity-60">%s</div><div>%s</div>`,
					esc(in.Date), esc(in.InputText)); err != nil {
					return err
				}
				if in.Response != "" {
					if err := writef(w, `<div class="text-sm mt-1 opacity-80">%s</div>`, esc(in.Response)); err != nil {
						return err
					}
				}
				if err := write(w, `</div>`); err != nil {
					return err
				}
			}
		}
		return write(w, `</div></div>`)
	})
}
