package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crashlens/crashlens/internal/config"
	"github.com/crashlens/crashlens/internal/core"
)

func testConfig(datasetPath string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   60 * time.Second,
			IdleTimeout:    60 * time.Second,
			RequestTimeout: 60 * time.Second,
		},
		Dataset: config.DatasetConfig{
			Path:            datasetPath,
			TimestampColumn: "Crash Date/Time",
		},
		Audit: config.AuditConfig{
			IdentifierColumn:   "Report Number",
			YearColumn:         "Vehicle Year",
			KeyFields:          []string{"Report Number", "Crash Date/Time"},
			CategoryPriority:   []string{"Collision Type", "Agency Name"},
			LatitudeColumn:     "Latitude",
			LongitudeColumn:    "Longitude",
			ParkedColumn:       "Parked Vehicle",
			MovementColumn:     "Vehicle Movement",
			StalenessYears:     4,
			DuplicatePenalty:   20,
			FuturePenalty:      10,
			KeyFieldPenalty:    5,
			MissingPenalty:     1,
			YearPenalty:        5,
			KeyFieldMissingPct: 1.0,
			WarnMissingPct:     5.0,
			MinYear:            1900,
		},
		Session: config.SessionConfig{TTL: time.Hour, SweepInterval: 5 * time.Minute},
		Rate:    config.RateLimitConfig{Enabled: false},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	csv := "Report Number,Crash Date/Time,Vehicle Year,Collision Type,Speed Limit\n" +
		"R1,2023-06-15,2018,REAR END,30\n" +
		"R2,2023-07-01,2020,REAR END,\n" +
		"R3,2023-07-02,2019,HEAD ON,25\n"
	path := filepath.Join(t.TempDir(), "crash.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(path)
	fixed := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	audit := core.DefaultAuditConfig()
	audit.Now = fixed
	quality := core.DefaultQualityConfig()
	quality.Now = fixed

	service := core.NewService(core.ServiceConfig{
		DatasetPath:     path,
		TimestampColumn: cfg.Dataset.TimestampColumn,
		Audit:           audit,
		Quality:         quality,
		Pipeline:        core.PipelineConfig{YearColumn: "Vehicle Year", MinYear: 1900, Now: fixed},
		Insight:         core.DefaultInsightConfig(),
		SessionTTL:      cfg.Session.TTL,
	})
	return NewServer(cfg, service)
}

// sessionCookie mints a session by hitting any endpoint once.
func sessionCookie(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table", nil))
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSessionCookieMintedOnce(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/table", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			t.Error("second request with a valid cookie minted a new session")
		}
	}
	if srv.service.Sessions().Count() != 1 {
		t.Errorf("sessions = %d, want 1", srv.service.Sessions().Count())
	}
}

func TestHandleTable(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
		Shape   struct {
			Rows int `json:"rows"`
			Cols int `json:"cols"`
		} `json:"shape"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Shape.Rows != 3 || resp.Shape.Cols != 5 {
		t.Errorf("shape = %+v, want 3x5", resp.Shape)
	}
	if len(resp.Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(resp.Rows))
	}
	if resp.Columns[0] != "Report Number" {
		t.Errorf("columns = %v", resp.Columns)
	}
}

func TestHandleTable_Filter(t *testing.T) {
	srv := testServer(t)
	target := "/api/table?col=" + url.QueryEscape("Collision Type") + "&val=" + url.QueryEscape("REAR END")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var resp struct {
		Shape struct {
			Rows int `json:"rows"`
		} `json:"shape"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Shape.Rows != 2 {
		t.Errorf("filtered rows = %d, want 2", resp.Shape.Rows)
	}
}

func TestHandleTable_BadLimit(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/table?limit=zero", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleAudit(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var rep core.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Score < 1 || rep.Score > 100 {
		t.Errorf("score = %d", rep.Score)
	}
	if len(rep.Columns) != 5 {
		t.Errorf("column stats = %d, want 5", len(rep.Columns))
	}
}

func TestHandleImpute_JSON(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	body := strings.NewReader(`{"column":"Speed Limit","strategy":"Mean"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clean/impute", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Message, "Mean") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestHandleImpute_FormRedirects(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	form := url.Values{"column": {"Speed Limit"}, "strategy": {"Drop Rows"}}
	req := httptest.NewRequest(http.MethodPost, "/api/clean/impute", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/cleaning?msg=") {
		t.Errorf("Location = %q", loc)
	}
}

func TestHandleImpute_MissingFields(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	req := httptest.NewRequest(http.MethodPost, "/api/clean/impute", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleReset(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	form := url.Values{"column": {"Speed Limit"}, "strategy": {"Drop Rows"}}
	drop := httptest.NewRequest(http.MethodPost, "/api/clean/impute", strings.NewReader(form.Encode()))
	drop.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	drop.AddCookie(cookie)
	srv.Router().ServeHTTP(httptest.NewRecorder(), drop)

	req := httptest.NewRequest(http.MethodPost, "/api/clean/reset", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Shape struct {
			Rows int `json:"rows"`
		} `json:"shape"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Shape.Rows != 3 {
		t.Errorf("rows after reset = %d, want 3", resp.Shape.Rows)
	}
}

func TestHandleHistory(t *testing.T) {
	srv := testServer(t)
	cookie := sessionCookie(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var resp struct {
		Entries []core.HistoryEntry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	// The standard pass logs four steps at session open.
	if len(resp.Entries) != 4 {
		t.Errorf("entries = %d, want 4", len(resp.Entries))
	}
}

func TestHandleExportAudit(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export/audit.xlsx", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "audit_report.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}

func TestPagesRender(t *testing.T) {
	srv := testServer(t)
	for _, path := range []string{"/", "/audit", "/cleaning", "/history"} {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<html") {
			t.Errorf("GET %s did not render a page", path)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	if !rl.allow("1.2.3.4") || !rl.allow("1.2.3.4") {
		t.Fatal("first two requests should pass")
	}
	if rl.allow("1.2.3.4") {
		t.Error("third request should be limited")
	}
	if !rl.allow("5.6.7.8") {
		t.Error("other IPs have their own bucket")
	}
}
