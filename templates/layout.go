package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeEsc(w io.Writer, s string) error {
	_, err := io.WriteString(w, templ.EscapeString(s))
	return err
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// esc shortens templ.EscapeString for inline interpolation.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps page content with the document shell, header and sidebar.
func Layout(title string, header HeaderData, sidebar SidebarData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<!DOCTYPE html><html lang="en" data-theme="corporate"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>`); err != nil {
			return err
		}
		if err := writeEsc(w, title); err != nil {
			return err
		}
		if err := write(w, ` — LeanChems</title><script src="https://unpkg.com/htmx.org@1.9.12"></script><link href="https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css" rel="stylesheet" type="text/css"/><script src="https://cdn.tailwindcss.com"></script></head><body class="min-h-screen bg-base-200">`); err != nil {
			return err
		}
		if err := Header(header).Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, `<div class="flex"><aside class="w-64 min-h-screen bg-base-100 shadow-md">`); err != nil {
			return err
		}
		if err := Sidebar(sidebar).Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, `</aside><main id="main-content" class="flex-1 p-6">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if err := write(w, `</main></div><div id="toast-container" class="toast toast-end"></div><script>
document.body.addEventListener("showToast", function(evt) {
  var d = evt.detail;
  var el = document.createElement("div");
  el.className = "alert alert-" + (d.type || "info");
  el.innerText = d.message;
  document.getElementById("toast-container").appendChild(el);
  setTimeout(function() { el.remove(); }, 4000);
});
// toasts set before a non-HTMX redirect arrive as a flash cookie
var flash = document.cookie.split("; ").find(function(c) { return c.indexOf("flash_toast=") === 0; });
if (flash) {
  try {
    var d = JSON.parse(decodeURIComponent(flash.slice("flash_toast=".length).replace(/\+/g, " ")));
    document.body.dispatchEvent(new CustomEvent("showToast", { detail: d }));
  } catch (e) {}
  document.cookie = "flash_toast=; Max-Age=0; path=/";
}
</script></body></html>`); err != nil {
			return err
		}
		return nil
	})
}

// Header renders the top navigation bar.
func Header(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Title
		if title == "" {
			title = "LeanChems CRM"
		}
		return writef(w, `<header class="navbar bg-base-100 shadow-sm px-6"><div class="flex-1"><a href="/dashboard" class="text-xl font-bold">%s</a></div><div class="flex-none"><span class="text-sm opacity-60">Chemicals Trading CRM &amp; PMS</span></div></header>`, esc(title))
	})
}

type navItem struct {
	section string
	href    string
	label   string
	count   int
}

// Sidebar renders the navigation sidebar with record counts per section.
func Sidebar(data SidebarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		items := []navItem{
			{"dashboard", "/dashboard", "Dashboard", -1},
			{"pipelines", "/pipelines", "Pipelines", data.PipelineCount},
			{"customers", "/customers", "Customers", data.CustomerCount},
			{"chemicals", "/chemicals", "Chemicals", data.ChemicalCount},
			{"tds", "/tds", "TDS Library", data.TdsCount},
			{"partners", "/partners", "Partners", data.PartnerCount},
		}

		if err := write(w, `<ul class="menu p-4 gap-1">`); err != nil {
			return err
		}
		for _, it := range items {
			active := ""
			if it.section == data.ActiveSection {
				active = " active"
			}
			badge := ""
			if it.count >= 0 {
				badge = fmt.Sprintf(`<span class="badge badge-sm">%d</span>`, it.count)
			}
			if err := writef(w, `<li><a href="%s" class="flex justify-between%s">%s %s</a></li>`,
				it.href, active, esc(it.label), badge); err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}

// pageHeading renders the standard page title row with an optional action button.
func pageHeading(w io.Writer, title, actionHref, actionLabel string) error {
	if err := writef(w, `<div class="flex justify-between items-center mb-6"><h1 class="text-2xl font-bold">%s</h1>`, esc(title)); err != nil {
		return err
	}
	if actionHref != "" {
		if err := writef(w, `<a href="%s" class="btn btn-primary btn-sm">%s</a>`, actionHref, esc(actionLabel)); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}

// formField renders a labelled text input with its validation error, if any.
func formField(w io.Writer, label, name, value, errMsg string) error {
	if err := writef(w, `<div class="form-control mb-3"><label class="label"><span class="label-text">%s</span></label><input type="text" name="%s" value="%s" class="input input-bordered"/>`,
		esc(label), name, esc(value)); err != nil {
		return err
	}
	if errMsg != "" {
		if err := writef(w, `<span class="text-error text-sm">%s</span>`, esc(errMsg)); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}

// formSelect renders a labelled dropdown. An empty first option is emitted
// so "unset" survives round-trips through the form.
func formSelect(w io.Writer, label, name, selected string, options []SelectOption, errMsg string) error {
	if err := writef(w, `<div class="form-control mb-3"><label class="label"><span class="label-text">%s</span></label><select name="%s" class="select select-bordered"><option value=""></option>`,
		esc(label), name); err != nil {
		return err
	}
	for _, opt := range options {
		sel := ""
		if opt.Selected || (selected != "" && opt.Value == selected) {
			sel = " selected"
		}
		label := opt.Label
		if label == "" {
			label = opt.Value
		}
		if err := writef(w, `<option value="%s"%s>%s</option>`, esc(opt.Value), sel, esc(label)); err != nil {
			return err
		}
	}
	if err := write(w, `</select>`); err != nil {
		return err
	}
	if errMsg != "" {
		if err := writef(w, `<span class="text-error text-sm">%s</span>`, esc(errMsg)); err != nil {
			return err
		}
	}
	return write(w, `</div>`)
}

// formTextarea renders a labelled multi-line input.
func formTextarea(w io.Writer, label, name, value string, rows int) error {
	return writef(w, `<div class="form-control mb-3"><label class="label"><span class="label-text">%s</span></label><textarea name="%s" rows="%d" class="textarea textarea-bordered">%s</textarea></div>`,
		esc(label), name, rows, esc(value))
}

// deleteButton renders the standard HTMX delete control with confirmation.
func deleteButton(w io.Writer, path string) error {
	return writef(w, `<button class="btn btn-error btn-xs" hx-delete="%s" hx-confirm="Are you sure?" hx-target="body">Delete</button>`, path)
}
