package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/crashlens/crashlens/internal/core"
	"github.com/crashlens/crashlens/internal/logging"
	"github.com/crashlens/crashlens/internal/web/templates"
)

// defaultPreviewRows is how many rows the table preview returns when
// the client does not ask for a specific limit.
const defaultPreviewRows = 50

// maxPreviewRows caps the preview size regardless of what the client
// asks for.
const maxPreviewRows = 1000

// ---- Pages ----

// handleDashboard renders the main dashboard page: metric cards over
// the working table, optional equality filter, and the insight blocks.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := sessionFrom(ctx)
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	working, _ := s.service.Sessions().Working(sess.ID)
	filtered := s.applyFilter(working, r)

	missingCells := 0
	for _, name := range filtered.Columns() {
		col, _ := filtered.Col(name)
		missingCells += col.Missing()
	}

	view := templates.DashboardView{
		Rows:         filtered.NumRows(),
		Cols:         filtered.NumCols(),
		MissingCells: missingCells,
		Score:        s.service.Audit().Score,
		Insights:     core.GenerateInsights(filtered, s.insightConfig()),
		Columns:      filtered.Columns(),
		FilterColumn: r.URL.Query().Get("col"),
		FilterValue:  r.URL.Query().Get("val"),
		Preview:      previewRecords(filtered, 10),
	}
	templates.Dashboard(view).Render(ctx, w)
}

// handleAuditPage renders the health audit page.
func (s *Server) handleAuditPage(w http.ResponseWriter, r *http.Request) {
	view := templates.AuditView{
		Report:  s.service.Audit(),
		Quality: s.service.Quality(),
	}
	templates.Audit(view).Render(r.Context(), w)
}

// handleCleaningPage renders the interactive cleaning page.
func (s *Server) handleCleaningPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := sessionFrom(ctx)
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	working, _ := s.service.Sessions().Working(sess.ID)
	cols := make([]templates.CleaningColumn, 0, working.NumCols())
	for _, name := range working.Columns() {
		col, _ := working.Col(name)
		cols = append(cols, templates.CleaningColumn{
			Name:    name,
			Kind:    col.InferKind().String(),
			Missing: col.Missing(),
		})
	}

	view := templates.CleaningView{
		Rows:       working.NumRows(),
		Columns:    cols,
		Strategies: core.Strategies,
		Message:    r.URL.Query().Get("msg"),
	}
	templates.Cleaning(view).Render(ctx, w)
}

// handleHistoryPage renders the processing history page.
func (s *Server) handleHistoryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := sessionFrom(ctx)
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	entries, err := s.service.History(sess.ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	view := templates.HistoryView{Entries: toHistoryRows(entries)}
	templates.History(view).Render(ctx, w)
}

// ---- JSON API ----

// tableResponse is the JSON shape of the working-table preview.
type tableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Shape   shapeInfo  `json:"shape"`
}

type shapeInfo struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// handleTable returns a head preview plus shape of the working table.
// Supports ?limit, and the equality filter ?col=...&val=... applied as
// a view.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	working, _ := s.service.Sessions().Working(sess.ID)
	filtered := s.applyFilter(working, r)

	limit := defaultPreviewRows
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeErrorJSON(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n > maxPreviewRows {
			n = maxPreviewRows
		}
		limit = n
	}

	records := previewRecords(filtered, limit)
	writeJSON(w, tableResponse{
		Columns: filtered.Columns(),
		Rows:    records,
		Shape:   shapeInfo{Rows: filtered.NumRows(), Cols: filtered.NumCols()},
	})
}

// handleAudit returns the health audit of the raw dataset.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.Audit())
}

// handleQuality returns the four-dimension quality breakdown.
func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.Quality())
}

// handleInsights returns the insight blocks for the (filtered) working
// table.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	working, _ := s.service.Sessions().Working(sess.ID)
	filtered := s.applyFilter(working, r)
	writeJSON(w, map[string]interface{}{
		"insights": core.GenerateInsights(filtered, s.insightConfig()),
	})
}

// cleanRequest is the body of the cleaning POST endpoints. Both JSON
// and form encoding are accepted so the server-rendered pages work
// without script.
type cleanRequest struct {
	Column   string `json:"column"`
	Strategy string `json:"strategy"`
}

// handleImpute applies an imputation strategy to one column of the
// session's working table.
func (s *Server) handleImpute(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	req, err := parseCleanRequest(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Column == "" || req.Strategy == "" {
		writeErrorJSON(w, http.StatusBadRequest, "column and strategy are required")
		return
	}

	after, msg, err := s.service.ImputeColumn(sess.ID, req.Column, req.Strategy)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logging.FromContext(r.Context()).Info("impute",
		"column", req.Column,
		"strategy", req.Strategy,
		"rows", after.NumRows(),
	)

	if !wantsJSON(r) {
		redirectWithMessage(w, r, "/cleaning", msg)
		return
	}
	writeJSON(w, map[string]interface{}{
		"message": msg,
		"shape":   shapeInfo{Rows: after.NumRows(), Cols: after.NumCols()},
	})
}

// handleNormalizeDate re-parses one column of the working table as
// dates.
func (s *Server) handleNormalizeDate(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	req, err := parseCleanRequest(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Column == "" {
		writeErrorJSON(w, http.StatusBadRequest, "column is required")
		return
	}

	after, msg, err := s.service.NormalizeDateColumn(sess.ID, req.Column)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	if !wantsJSON(r) {
		redirectWithMessage(w, r, "/cleaning", msg)
		return
	}
	writeJSON(w, map[string]interface{}{
		"message": msg,
		"shape":   shapeInfo{Rows: after.NumRows(), Cols: after.NumCols()},
	})
}

// handleReset restores the working table to the post-pipeline
// baseline.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	after, err := s.service.ResetSession(sess.ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	if !wantsJSON(r) {
		redirectWithMessage(w, r, "/cleaning", "Working data reset to cleaned baseline.")
		return
	}
	writeJSON(w, map[string]interface{}{
		"message": "Working data reset to cleaned baseline.",
		"shape":   shapeInfo{Rows: after.NumRows(), Cols: after.NumCols()},
	})
}

// handleHistory returns the session's processing log.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	entries, err := s.service.History(sess.ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"entries": entries})
}

// handleExportAudit streams the audit report workbook.
func (s *Server) handleExportAudit(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.AuditWorkbook()
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, "audit_report.xlsx", data)
}

// handleExportHistory streams the session's history workbook.
func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r.Context())
	if !ok {
		s.respondError(w, r, fmt.Errorf("no session on request"), http.StatusInternalServerError)
		return
	}

	data, err := s.service.HistoryWorkbook(sess.ID)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, "history_log.xlsx", data)
}

// ---- Helpers ----

// applyFilter applies the ?col=...&val=... equality filter as a view
// over a table. Filtering is a presentation concern; the session's
// working table is untouched.
func (s *Server) applyFilter(t core.Table, r *http.Request) core.Table {
	col := r.URL.Query().Get("col")
	val := r.URL.Query().Get("val")
	if col == "" || val == "" {
		return t
	}
	return core.FilterEqual(t, col, val)
}

// insightConfig builds the insight settings from the audit config.
func (s *Server) insightConfig() core.InsightConfig {
	return core.InsightConfig{
		CategoryPriority: s.cfg.Audit.CategoryPriority,
		PainPointPct:     s.cfg.Audit.WarnMissingPct,
	}
}

// parseCleanRequest reads a cleaning request from JSON or form data.
func parseCleanRequest(r *http.Request) (cleanRequest, error) {
	var req cleanRequest
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid JSON body")
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("invalid form body")
	}
	req.Column = r.PostFormValue("column")
	req.Strategy = r.PostFormValue("strategy")
	return req, nil
}

// redirectWithMessage sends a post-redirect-get back to a page with
// the operation's message in the query string.
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, msg string) {
	target := path
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// writeWorkbook streams XLSX bytes as a download.
func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// previewRecords renders up to n data rows as display strings.
func previewRecords(t core.Table, n int) [][]string {
	head := t.Head(n)
	records := head.Records()
	if len(records) <= 1 {
		return nil
	}
	return records[1:]
}

// toHistoryRows converts history entries to the template's row type.
func toHistoryRows(entries []core.HistoryEntry) []templates.HistoryRow {
	rows := make([]templates.HistoryRow, len(entries))
	for i, e := range entries {
		rows[i] = templates.HistoryRow{
			Timestamp: e.Timestamp.Format("2006-01-02 15:04:05"),
			Action:    e.Action,
			Details:   e.Details,
			RowCount:  e.RowCount,
		}
	}
	return rows
}
