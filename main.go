package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"leanchems/collections"
	"leanchems/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateLegacyProductLinks(app); err != nil {
			log.Printf("Warning: legacy product migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Navigation counts for the sidebar on every page
		se.Router.BindFunc(handlers.NavMiddleware(app))

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(app))

		// ── Customer CRUD ────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/create", handlers.HandleCustomerCreate(app))
		se.Router.POST("/customers", handlers.HandleCustomerSave(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEdit(app))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))
		se.Router.GET("/customers/{id}", handlers.HandleCustomerView(app))

		// ── Chemical CRUD ────────────────────────────────────────
		se.Router.GET("/chemicals", handlers.HandleChemicalList(app))
		se.Router.GET("/chemicals/create", handlers.HandleChemicalCreate(app))
		se.Router.POST("/chemicals", handlers.HandleChemicalSave(app))
		se.Router.GET("/chemicals/{id}/edit", handlers.HandleChemicalEdit(app))
		se.Router.POST("/chemicals/{id}/save", handlers.HandleChemicalUpdate(app))
		se.Router.DELETE("/chemicals/{id}", handlers.HandleChemicalDelete(app))

		// ── TDS CRUD ─────────────────────────────────────────────
		se.Router.GET("/tds", handlers.HandleTdsList(app))
		se.Router.GET("/tds/create", handlers.HandleTdsCreate(app))
		se.Router.POST("/tds", handlers.HandleTdsSave(app))
		se.Router.GET("/tds/{id}/edit", handlers.HandleTdsEdit(app))
		se.Router.POST("/tds/{id}/save", handlers.HandleTdsUpdate(app))
		se.Router.DELETE("/tds/{id}", handlers.HandleTdsDelete(app))

		// ── Partner CRUD ─────────────────────────────────────────
		se.Router.GET("/partners", handlers.HandlePartnerList(app))
		se.Router.GET("/partners/create", handlers.HandlePartnerCreate(app))
		se.Router.POST("/partners", handlers.HandlePartnerSave(app))
		se.Router.GET("/partners/{id}/edit", handlers.HandlePartnerEdit(app))
		se.Router.POST("/partners/{id}/save", handlers.HandlePartnerUpdate(app))
		se.Router.DELETE("/partners/{id}", handlers.HandlePartnerDelete(app))

		// ── Pipeline CRUD ────────────────────────────────────────
		se.Router.GET("/pipelines", handlers.HandlePipelineList(app))
		se.Router.GET("/pipelines/create", handlers.HandlePipelineCreate(app))
		se.Router.POST("/pipelines", handlers.HandlePipelineSave(app))
		se.Router.GET("/pipelines/{id}/edit", handlers.HandlePipelineEdit(app))
		se.Router.POST("/pipelines/{id}/save", handlers.HandlePipelineUpdate(app))
		se.Router.POST("/pipelines/{id}/stage", handlers.HandlePipelineStage(app))
		se.Router.POST("/pipelines/{id}/notes", handlers.HandlePipelineNote(app))
		se.Router.DELETE("/pipelines/{id}", handlers.HandlePipelineDelete(app))

		// ── Quote generation ─────────────────────────────────────
		se.Router.GET("/pipelines/{id}/quote", handlers.HandleQuoteForm(app))
		se.Router.POST("/pipelines/{id}/quote/excel", handlers.HandleQuoteExcel(app))
		se.Router.POST("/pipelines/{id}/quote/pdf", handlers.HandleQuotePDF(app))

		// Pipeline detail (after the specific /pipelines/{id}/* routes)
		se.Router.GET("/pipelines/{id}", handlers.HandlePipelineView(app))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
