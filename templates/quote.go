package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func QuoteFormPage(data QuoteFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Generate Quote", header, sidebar, QuoteFormContent(data))
}

func QuoteFormContent(data QuoteFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := pageHeading(w, "Generate Quote", "", ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card bg-base-100 shadow max-w-2xl"><div class="card-body"><p class="mb-2"><span class="opacity-60">Customer:</span> %s</p><p class="mb-4"><span class="opacity-60">Product:</span> %s</p>`,
			esc(data.CustomerName), esc(data.ProductName)); err != nil {
			return err
		}
		if err := writef(w, `<form method="post" action="/pipelines/%s/quote/excel" id="quote-form">`, data.PipelineID); err != nil {
			return err
		}
		if err := formSelect(w, "Format", "format", "", data.FormatOptions, ""); err != nil {
			return err
		}
		if err := formSelect(w, "Payment Terms", "terms", "", data.TermsOptions, ""); err != nil {
			return err
		}
		if err := writef(w, `<div class="card-actions justify-end"><a href="/pipelines/%s" class="btn btn-ghost">Back</a><button type="submit" class="btn btn-primary">Download Excel</button><button type="submit" formaction="/pipelines/%s/quote/pdf" class="btn btn-secondary">Download PDF</button></div></form></div></div>`,
			data.PipelineID, data.PipelineID); err != nil {
			return err
		}
		return nil
	})
}
