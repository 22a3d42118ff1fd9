package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"rosterlens/adapters/excel"
	"rosterlens/domain/roster"
	"rosterlens/internal/aggregate"
	"rosterlens/internal/errors"
	"rosterlens/internal/sniff"
)

// recordView is one roster row prepared for the template.
type recordView struct {
	ID             string
	Name           string
	Function       string
	EmploymentType string
	EmployeeType   string
	StartDate      string
	EndDate        string
	Employer       string
	Manager        string
	PartTime       string
	Present        bool
	PresenceLabel  string
}

type errorView struct {
	Code    string
	Message string
}

type indexView struct {
	HasAnalysis bool
	Error       *errorView
	Report      *sniff.Report
	Records     []recordView
	Managers    []roster.ManagerStats
	Summary     aggregate.Summary
	UploadedAt  string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.store.Current()

	view := indexView{}
	if err != nil {
		view.Error = &errorView{Code: errors.GetCode(err), Message: err.Error()}
	}
	if analysis != nil {
		view.HasAnalysis = true
		view.Report = analysis.Report
		view.Managers = analysis.Stats.Managers
		view.Summary = analysis.Stats.Summary
		view.UploadedAt = analysis.UploadedAt.Format("15:04:05")
		view.Records = make([]recordView, 0, len(analysis.Records))
		for _, rec := range analysis.Records {
			view.Records = append(view.Records, toRecordView(rec))
		}
	}

	a.renderTemplate(w, "index.html", view)
}

func toRecordView(rec roster.EmployeeRecord) recordView {
	v := recordView{
		ID:             rec.ID,
		Name:           rec.Name,
		Function:       rec.Function,
		EmploymentType: rec.EmploymentType,
		EmployeeType:   rec.EmployeeType,
		Employer:       rec.Employer,
		Manager:        rec.Manager,
		PartTime:       rec.PartTime.Value,
		Present:        roster.ClassifyPresence(rec.Present),
		PresenceLabel:  roster.PresenceLabel(rec.Present),
	}
	if rec.StartDate != nil {
		v.StartDate = rec.StartDate.Format("2006-01-02")
	}
	if rec.EndDate != nil {
		v.EndDate = rec.EndDate.Format("2006-01-02")
	}
	return v
}

// handleUpload receives the workbook and runs the pipeline synchronously.
// Any failure is terminal for the session; prior results are discarded.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Upload.MaxUploadBytes)

	file, header, err := r.FormFile("workbook")
	if err != nil {
		a.log.Warn("upload rejected, no file: %v", err)
		a.store.Fail(errors.ReadFailure(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	if header.Size > a.cfg.Upload.MaxUploadBytes {
		a.store.Fail(errors.InvalidInput(fmt.Sprintf(
			"file size (%.1f MB) exceeds the %d MB limit",
			float64(header.Size)/(1024*1024),
			a.cfg.Upload.MaxUploadBytes/(1024*1024))))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	filename := header.Filename
	if !hasValidExtension(filename) {
		a.log.Warn("upload rejected, invalid extension: %s", filename)
		a.store.Fail(errors.InvalidInput("only Excel (.xlsx) and CSV (.csv) files are supported"))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	analysis, err := a.analyzer.Analyze(file, filename, header.Size)
	if err != nil {
		a.store.Fail(err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.store.Set(analysis)
	a.log.Info("upload %s analyzed as %s", filename, analysis.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func hasValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".csv")
}

func (a *App) handleReset(w http.ResponseWriter, r *http.Request) {
	a.store.Reset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleExport streams the two-sheet result workbook.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	analysis, _ := a.store.Current()
	if analysis == nil {
		http.Error(w, "nothing to export", http.StatusNotFound)
		return
	}

	buf, err := excel.WriteExport(analysis.Records, analysis.Stats.Managers)
	if err != nil {
		a.log.Error("export failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", excel.ExportFileName))
	if _, err := buf.WriteTo(w); err != nil {
		a.log.Error("error writing export response: %v", err)
	}
}

func (a *App) handleStatsJSON(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.store.Current()
	if analysis == nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, analysis.Stats)
}

func (a *App) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.store.Current()
	if analysis == nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, analysis.Report)
}

func (a *App) handleHelp(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		http.Error(w, "help unavailable", http.StatusInternalServerError)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML(src, p, renderer)

	a.renderTemplate(w, "help.html", struct {
		Content template.HTML
	}{Content: template.HTML(rendered)})
}

// renderTemplate executes a template into a buffer first so errors never
// leak a half-written page.
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.log.Error("template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		a.log.Error("error writing template response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}

func writeJSONError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	msg := "no analysis available"
	code := "NO_SESSION"
	if err != nil {
		msg = err.Error()
		code = errors.GetCode(err)
	}
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
