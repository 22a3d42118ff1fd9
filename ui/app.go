package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rosterlens/app"
	"rosterlens/internal"
	"rosterlens/internal/config"
	"rosterlens/internal/session"
)

//go:embed templates/*.html help.md
var embeddedFiles embed.FS

// App is the web presenter: upload form, structure report, roster and
// statistics tables, workbook export.
type App struct {
	router    *chi.Mux
	analyzer  *app.Analyzer
	store     *session.Store
	templates *template.Template
	log       *internal.Logger
	cfg       *config.Config
}

// NewApp creates the UI application.
func NewApp(cfg *config.Config, logger *internal.Logger) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"pct": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		analyzer:  app.NewAnalyzer(logger),
		store:     session.NewStore(),
		templates: templates,
		log:       logger,
		cfg:       cfg,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/help", a.handleHelp)

	a.router.Post("/upload", a.handleUpload)
	a.router.Post("/reset", a.handleReset)
	a.router.Get("/export", a.handleExport)

	// API endpoints
	a.router.Get("/api/stats", a.handleStatsJSON)
	a.router.Get("/api/report", a.handleReportJSON)
}

// Handler exposes the router for serving and for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Server builds the http.Server for this app.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:    ":" + a.cfg.Server.Port,
		Handler: a.router,
	}
}
