package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/services"
	"leanchems/templates"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func HandleQuoteForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pipelineID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pipelines", pipelineID)
		if err != nil {
			log.Printf("pipeline_quote: could not find pipeline %s: %v", pipelineID, err)
			return e.String(http.StatusNotFound, "Pipeline not found")
		}

		p := recordToPipeline(record)

		var formats []templates.SelectOption
		for _, f := range services.QuoteFormats {
			formats = append(formats, templates.SelectOption{Value: string(f), Label: string(f)})
		}

		data := templates.QuoteFormData{
			PipelineID:    p.ID,
			CustomerName:  customerName(app, p.CustomerID),
			ProductName:   services.ResolveProductName(app, p.ChemicalTypeID, p.TdsID),
			FormatOptions: formats,
			TermsOptions:  stringSelectOptions(services.PaymentTermsOptions),
		}

		component := templates.QuoteFormPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildQuoteFromRequest parses the quote form and assembles the generator
// payload for the given pipeline.
func buildQuoteFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) (*services.QuoteRequest, error) {
	pipelineID := e.Request.PathValue("id")
	record, err := app.FindRecordById("pipelines", pipelineID)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s not found: %w", pipelineID, err)
	}

	if err := e.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form data: %w", err)
	}

	format, err := services.ParseQuoteFormat(e.Request.FormValue("format"))
	if err != nil {
		return nil, err
	}

	p := recordToPipeline(record)
	productName := services.ResolveProductName(app, p.ChemicalTypeID, p.TdsID)

	req := services.BuildQuoteRequest(p, format, e.Request.FormValue("terms"), productName)
	req.CustomerName = customerName(app, p.CustomerID)
	return &req, nil
}

func HandleQuoteExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := buildQuoteFromRequest(app, e)
		if err != nil {
			log.Printf("quote_excel: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not build the quote. Please try again.")
		}

		data, err := services.GenerateQuoteExcel(*req, time.Now())
		if err != nil {
			log.Printf("quote_excel: generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := sanitizeFilename(fmt.Sprintf("Quote-%s-%s.xlsx", req.CustomerName, req.Reference))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK, excelContentType, data)
	}
}

func HandleQuotePDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := buildQuoteFromRequest(app, e)
		if err != nil {
			log.Printf("quote_pdf: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not build the quote. Please try again.")
		}

		data, err := services.GenerateQuotePDF(*req, time.Now())
		if err != nil {
			log.Printf("quote_pdf: generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := sanitizeFilename(fmt.Sprintf("Quote-%s-%s.pdf", req.CustomerName, req.Reference))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK, "application/pdf", data)
	}
}
