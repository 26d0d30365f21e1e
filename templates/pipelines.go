package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func PipelineListPage(data PipelineListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Pipelines", header, sidebar, PipelineListContent(data))
}

func PipelineListContent(data PipelineListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Pipelines", "/pipelines/create", "New Pipeline"); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			return write(w, `<p class="opacity-60">No pipelines yet.</p>`)
		}
		if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><table class="table"><thead><tr><th>Customer</th><th>Product</th><th>Stage</th><th>Progress</th><th>Value</th><th>Updated</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, it := range data.Items {
			groupNote := ""
			if it.GroupSize > 1 {
				groupNote = writeGroupBadge(it.GroupSize)
			}
			if err := writef(w, `<tr><td><a href="/pipelines/%s" class="link font-medium">%s</a>%s</td><td>%s</td><td><span class="badge %s">%s</span></td><td><progress class="progress progress-primary w-24" value="%s" max="100"></progress></td><td>%s</td><td>%s</td><td class="flex gap-2"><a href="/pipelines/%s/edit" class="btn btn-ghost btn-xs">Edit</a>`,
				it.ID, esc(it.CustomerName), groupNote, esc(it.ProductName), it.StageBadgeClass, esc(it.Stage),
				it.ProgressPct, esc(it.TotalValue), esc(it.UpdatedDate), it.ID); err != nil {
				return err
			}
			if err := deleteButton(w, "/pipelines/"+it.ID); err != nil {
				return err
			}
			if err := write(w, `</td></tr>`); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table><p class="text-sm opacity-60">%d pipeline group(s)</p></div></div>`, data.TotalCount)
	})
}

func writeGroupBadge(size int) string {
	return ` <span class="badge badge-ghost badge-sm">` + strconv.Itoa(size) + ` deals</span>`
}

func PipelineFormPage(data PipelineFormData, header HeaderData, sidebar SidebarData) templ.Component {
	title := "New Pipeline"
	if data.IsEdit {
		title = "Edit Pipeline"
	}
	return Layout(title, header, sidebar, PipelineFormContent(data))
}

func PipelineFormContent(data PipelineFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := "New Pipeline"
		action := "/pipelines"
		if data.IsEdit {
			title = "Edit Pipeline"
			action = "/pipelines/" + data.ID + "/save"
		}
		if err := pageHeading(w, title, "", ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card bg-base-100 shadow max-w-3xl"><div class="card-body"><form hx-post="%s" hx-target="body">`, action); err != nil {
			return err
		}

		if err := formSelect(w, "Customer", "customer", data.Values["customer"], data.CustomerOptions, data.Errors["customer"]); err != nil {
			return err
		}
		if err := write(w, `<div class="grid grid-cols-2 gap-4">`); err != nil {
			return err
		}
		if err := formSelect(w, "Chemical Type", "chemical_type", data.Values["chemical_type"], data.ChemicalOptions, data.Errors["chemical_type"]); err != nil {
			return err
		}
		if err := formSelect(w, "TDS", "tds", data.Values["tds"], data.TdsOptions, data.Errors["tds"]); err != nil {
			return err
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}

		if data.IsEdit {
			if err := formSelect(w, "Stage", "stage", data.Values["stage"], data.StageOptions, data.Errors["stage"]); err != nil {
				return err
			}
		}

		if err := write(w, `<div class="grid grid-cols-3 gap-4">`); err != nil {
			return err
		}
		if err := formField(w, "Amount", "amount", data.Values["amount"], data.Errors["amount"]); err != nil {
			return err
		}
		if err := formSelect(w, "Unit", "unit", data.Values["unit"], data.UnitOptions, data.Errors["unit"]); err != nil {
			return err
		}
		if err := formField(w, "Unit Price", "unit_price", data.Values["unit_price"], data.Errors["unit_price"]); err != nil {
			return err
		}
		if err := write(w, `</div><div class="grid grid-cols-3 gap-4">`); err != nil {
			return err
		}
		if err := formSelect(w, "Currency", "currency", data.Values["currency"], data.CurrencyOptions, data.Errors["currency"]); err != nil {
			return err
		}
		if err := formSelect(w, "Business Unit", "business_unit", data.Values["business_unit"], data.BusinessUnits, data.Errors["business_unit"]); err != nil {
			return err
		}
		if err := formSelect(w, "Forex", "forex", data.Values["forex"], data.ForexOptions, data.Errors["forex"]); err != nil {
			return err
		}
		if err := write(w, `</div><div class="grid grid-cols-2 gap-4">`); err != nil {
			return err
		}
		if err := formSelect(w, "Incoterm", "incoterm", data.Values["incoterm"], data.IncotermOptions, data.Errors["incoterm"]); err != nil {
			return err
		}
		if err := formField(w, "Business Model", "business_model", data.Values["business_model"], data.Errors["business_model"]); err != nil {
			return err
		}
		if err := write(w, `</div><div class="grid grid-cols-2 gap-4">`); err != nil {
			return err
		}
		if err := formField(w, "Lead Source", "lead_source", data.Values["lead_source"], data.Errors["lead_source"]); err != nil {
			return err
		}
		if err := formField(w, "Contact per Lead", "contact_per_lead", data.Values["contact_per_lead"], data.Errors["contact_per_lead"]); err != nil {
			return err
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}
		if err := formField(w, "Expected Close Date (YYYY-MM-DD)", "expected_close_date", data.Values["expected_close_date"], data.Errors["expected_close_date"]); err != nil {
			return err
		}
		if data.IsEdit {
			if err := formField(w, "Close Reason", "close_reason", data.Values["close_reason"], data.Errors["close_reason"]); err != nil {
				return err
			}
		}
		return write(w, `<div class="card-actions justify-end"><a href="/pipelines" class="btn btn-ghost">Cancel</a><button type="submit" class="btn btn-primary">Save</button></div></form></div></div>`)
	})
}

func PipelineViewPage(data PipelineViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.CustomerName+" — "+data.ProductName, header, sidebar, PipelineViewContent(data))
}

func PipelineViewContent(data PipelineViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, data.CustomerName+" — "+data.ProductName, "/pipelines/"+data.ID+"/edit", "Edit"); err != nil {
			return err
		}

		// stage + progress
		if err := writef(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><div class="flex items-center gap-4"><span class="badge badge-lg %s">%s</span><progress class="progress progress-primary w-64" value="%s" max="100"></progress><span class="text-sm opacity-60">%s%%</span></div>`,
			data.StageBadgeClass, esc(data.Stage), data.ProgressPct, data.ProgressPct); err != nil {
			return err
		}

		// stage advance form
		if len(data.NextStages) > 0 {
			if err := writef(w, `<form hx-post="/pipelines/%s/stage" hx-target="body" class="flex items-end gap-2 mt-4"><div class="form-control"><label class="label"><span class="label-text">Move to stage</span></label><select name="stage" class="select select-bordered select-sm">`, data.ID); err != nil {
				return err
			}
			for _, opt := range data.NextStages {
				if err := writef(w, `<option value="%s">%s</option>`, esc(opt.Value), esc(opt.Label)); err != nil {
					return err
				}
			}
			if err := write(w, `</select></div><div class="form-control flex-1"><label class="label"><span class="label-text">Justification</span></label><input type="text" name="justification" class="input input-bordered input-sm"/></div><button type="submit" class="btn btn-primary btn-sm">Advance</button></form>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div></div>`); err != nil {
			return err
		}

		// financials
		if err := writef(w, `<div class="stats shadow mb-6 w-full"><div class="stat"><div class="stat-title">Quantity</div><div class="stat-value text-lg">%s</div></div><div class="stat"><div class="stat-title">Unit Price</div><div class="stat-value text-lg">%s</div></div><div class="stat"><div class="stat-title">Total</div><div class="stat-value text-lg">%s</div></div><div class="stat"><div class="stat-title">Total incl. VAT</div><div class="stat-value text-lg">%s</div></div></div>`,
			esc(data.Amount), esc(data.UnitPrice), esc(data.TotalAmount), esc(data.TotalWithVAT)); err != nil {
			return err
		}

		// deal attributes
		if err := write(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">Deal Details</h2><div class="grid grid-cols-4 gap-4">`); err != nil {
			return err
		}
		details := []struct{ label, value string }{
			{"Currency", data.Currency},
			{"Business Model", data.BusinessModel},
			{"Business Unit", data.BusinessUnit},
			{"Forex", data.Forex},
			{"Incoterm", data.Incoterm},
			{"Lead Source", data.LeadSource},
			{"Contact per Lead", data.ContactPerLead},
			{"Expected Close", data.ExpectedCloseDate},
		}
		for _, d := range details {
			value := d.value
			if value == "" {
				value = "—"
			}
			if err := writef(w, `<div><div class="text-sm opacity-60">%s</div><div>%s</div></div>`, esc(d.label), esc(value)); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}
		if data.CloseReason != "" {
			if err := writef(w, `<div class="mt-2"><div class="text-sm opacity-60">Close Reason</div><div>%s</div></div>`, esc(data.CloseReason)); err != nil {
				return err
			}
		}
		if err := writef(w, `<div class="card-actions mt-2"><a href="/pipelines/%s/quote" class="btn btn-outline btn-sm">Generate Quote</a></div></div></div>`, data.ID); err != nil {
			return err
		}

		// stage history
		if err := write(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">Stage History</h2>`); err != nil {
			return err
		}
		if len(data.History) == 0 {
			if err := write(w, `<p class="opacity-60">No stage changes recorded.</p>`); err != nil {
				return err
			}
		} else {
			if err := write(w, `<table class="table table-sm"><thead><tr><th>From</th><th>To</th><th>When</th><th>Justification</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, h := range data.History {
				if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(h.FromStage), esc(h.ToStage), esc(h.ChangedAt), esc(h.Justification)); err != nil {
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

		// notes / AI interactions
		if err := writef(w, `<div class="card bg-base-100 shadow mb-6"><div class="card-body"><h2 class="card-title">Notes</h2><form hx-post="/pipelines/%s/notes" hx-target="body" class="flex gap-2 mb-4"><input type="text" name="user_input" placeholder="Add a note…" class="input input-bordered flex-1"/><button type="submit" class="btn btn-primary">Add</button></form>`, data.ID); err != nil {
			return err
		}
		for _, in := range data.Interactions {
			if err := writef(w, `<div class="border-l-2 border-primary pl-3 mb-3"><div class="text-sm opacity-60">%s</div><div>%s</div>`,
				esc(in.Timestamp), esc(in.UserInput)); err != nil {
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
		if err := write(w, `</div></div>`); err != nil {
			return err
		}

		// other deals in the same group
		if len(data.GroupMembers) > 0 {
			if err := write(w, `<div class="card bg-base-100 shadow"><div class="card-body"><h2 class="card-title">Other Deals (Same Customer &amp; Product)</h2><table class="table table-sm"><thead><tr><th>Stage</th><th>Value</th><th>Updated</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, m := range data.GroupMembers {
				if err := writef(w, `<tr><td><a href="/pipelines/%s" class="link"><span class="badge %s">%s</span></a></td><td>%s</td><td>%s</td></tr>`,
					m.ID, m.StageBadgeClass, esc(m.Stage), esc(m.TotalValue), esc(m.UpdatedDate)); err != nil {
					return err
				}
			}
			if err := write(w, `</tbody></table></div></div>`); err != nil {
				return err
			}
		}
		return nil
	})
}
