package core

// Service ties the core pieces together for the web layer: it loads
// the configured dataset, audits it, creates per-user sessions, and
// applies the interactive cleaning operations to session state.

import (
	"fmt"
	"log/slog"
	"time"
)

// ServiceConfig bundles the core configuration for one dataset.
type ServiceConfig struct {
	DatasetPath     string
	TimestampColumn string

	Audit    AuditConfig
	Quality  QualityConfig
	Pipeline PipelineConfig
	Insight  InsightConfig

	SessionTTL time.Duration
}

// Service is the core façade. It holds no per-user mutable state
// itself; all of that lives in the session manager.
type Service struct {
	cfg      ServiceConfig
	loader   *Loader
	auditor  *Auditor
	sessions *SessionManager
}

// NewService builds a service from config.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		cfg:      cfg,
		loader:   NewLoader(cfg.TimestampColumn),
		auditor:  NewAuditor(cfg.Audit),
		sessions: NewSessionManager(cfg.SessionTTL),
	}
}

// Sessions exposes the session manager, for the sweeper goroutine.
func (s *Service) Sessions() *SessionManager {
	return s.sessions
}

// Raw loads the configured dataset (memoized).
func (s *Service) Raw() LoadResult {
	return s.loader.Load(s.cfg.DatasetPath)
}

// ReloadDataset drops the loader cache so the next Raw call re-reads
// the file from disk.
func (s *Service) ReloadDataset() {
	s.loader.Invalidate(s.cfg.DatasetPath)
}

// OpenSession creates a session over the current raw dataset: the
// standard cleaning pass runs and its steps land on the session's
// history log.
func (s *Service) OpenSession() *Session {
	res := s.Raw()
	sess := s.sessions.Create(res.Table, s.cfg.Pipeline)
	slog.Info("session opened",
		"session_id", sess.ID,
		"raw_shape", res.Table.Shape(),
		"clean_shape", sess.Working.Shape(),
	)
	return sess
}

// Session returns an existing session by ID.
func (s *Service) Session(id string) (*Session, bool) {
	return s.sessions.Get(id)
}

// Audit runs the health audit over the raw dataset.
func (s *Service) Audit() Report {
	return s.auditor.Run(s.Raw().Table)
}

// Quality runs the four-dimension breakdown over the raw dataset.
func (s *Service) Quality() QualityReport {
	return QualityBreakdown(s.Raw().Table, s.cfg.Quality)
}

// Insights generates insight blocks for a session's working table.
func (s *Service) Insights(sessionID string) ([]string, error) {
	t, ok := s.sessions.Working(sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", sessionID)
	}
	return GenerateInsights(t, s.cfg.Insight), nil
}

// ImputeColumn applies an imputation strategy to a session's working
// table and logs the outcome.
func (s *Service) ImputeColumn(sessionID, column, strategy string) (Table, string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Table{}, "", fmt.Errorf("unknown session: %s", sessionID)
	}
	before, _ := s.sessions.Working(sessionID)

	after, msg, err := Impute(before, column, strategy)
	if err != nil {
		return Table{}, "", err
	}
	if !after.Equal(before) {
		s.sessions.Replace(sessionID, after)
	}
	sess.History.Append("Impute", msg, after.NumRows())
	slog.Info("impute applied",
		"session_id", sessionID,
		"column", column,
		"strategy", strategy,
		"shape", after.Shape(),
	)
	return after, msg, nil
}

// NormalizeDateColumn re-parses a column of a session's working table
// as dates and logs the outcome.
func (s *Service) NormalizeDateColumn(sessionID, column string) (Table, string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return Table{}, "", fmt.Errorf("unknown session: %s", sessionID)
	}
	before, _ := s.sessions.Working(sessionID)

	after, msg, err := NormalizeDate(before, column)
	if err != nil {
		return Table{}, "", err
	}
	if !after.Equal(before) {
		s.sessions.Replace(sessionID, after)
	}
	sess.History.Append("Normalize", msg, after.NumRows())
	return after, msg, nil
}

// ResetSession restores a session's working table to the cleaned
// baseline.
func (s *Service) ResetSession(sessionID string) (Table, error) {
	t, ok := s.sessions.Reset(sessionID)
	if !ok {
		return Table{}, fmt.Errorf("unknown session: %s", sessionID)
	}
	return t, nil
}

// History returns a session's processing log entries.
func (s *Service) History(sessionID string) ([]HistoryEntry, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", sessionID)
	}
	return sess.History.Entries(), nil
}

// AuditWorkbook renders the current audit report as an XLSX download.
func (s *Service) AuditWorkbook() ([]byte, error) {
	return BuildAuditWorkbook(s.Audit())
}

// HistoryWorkbook renders a session's history log as an XLSX download.
func (s *Service) HistoryWorkbook(sessionID string) ([]byte, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("unknown session: %s", sessionID)
	}
	return BuildHistoryWorkbook(sess.History)
}

// FilterEqual returns the rows of a table whose cell in the named
// column displays as the given value. An unknown column returns the
// table unchanged; filtering is a view, never a mutation.
func FilterEqual(t Table, column, value string) Table {
	idx := t.colIndex(column)
	if idx < 0 {
		return t
	}
	return t.FilterRows(func(row int) bool {
		return t.cols[idx].Cells[row].Valid && t.cols[idx].Cells[row].String() == value
	})
}
