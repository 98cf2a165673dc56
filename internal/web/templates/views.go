package templates

import "github.com/crashlens/crashlens/internal/core"

// DashboardView feeds the dashboard page.
type DashboardView struct {
	Rows         int
	Cols         int
	MissingCells int
	Score        int
	Insights     []string
	Columns      []string
	FilterColumn string
	FilterValue  string
	Preview      [][]string
}

// AuditView feeds the data quality audit page.
type AuditView struct {
	Report  core.Report
	Quality core.QualityReport
}

// CleaningColumn is one row of the cleaning page's column table.
type CleaningColumn struct {
	Name    string
	Kind    string
	Missing int
}

// CleaningView feeds the data cleaning page.
type CleaningView struct {
	Rows       int
	Columns    []CleaningColumn
	Strategies []string
	Message    string
}

// HistoryRow is one rendered history entry.
type HistoryRow struct {
	Timestamp string
	Action    string
	Details   string
	RowCount  int
}

// HistoryView feeds the history log page.
type HistoryView struct {
	Entries []HistoryRow
}

// navClass marks the active navigation link.
func navClass(active, name string) string {
	if active == name {
		return "active"
	}
	return ""
}

// findingClass maps a finding severity to its CSS classes.
func findingClass(sev core.Severity) string {
	return "finding " + string(sev)
}
