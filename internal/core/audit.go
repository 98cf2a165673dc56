package core

// audit.go implements the data health audit: independent checks
// (duplicates, timeliness, per-column completeness, year-range
// accuracy) whose penalties accumulate into a single 0-100 score.
//
// Checks are keyed by column roles configured once on AuditConfig
// rather than by column-name lookups inside the algorithm; a role that
// is unmapped or absent from the table skips its check cleanly.

import (
	"fmt"
	"time"
)

// Severity classifies an audit finding.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Finding is one human-readable audit observation.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ColumnStatus is the per-column verdict shown in the detail table.
type ColumnStatus string

const (
	StatusValid    ColumnStatus = "Valid"
	StatusWarning  ColumnStatus = "Warning"
	StatusCritical ColumnStatus = "Critical"
)

// ColumnStat is the derived, read-only statistic row for one column.
type ColumnStat struct {
	Name       string       `json:"name"`
	Kind       string       `json:"kind"`
	Missing    int          `json:"missing"`
	MissingPct float64      `json:"missingPct"`
	Distinct   int          `json:"distinct"`
	Status     ColumnStatus `json:"status"`
}

// DateRange summarizes the observed span of the timestamp column.
type DateRange struct {
	Known bool      `json:"known"`
	Min   time.Time `json:"min,omitempty"`
	Max   time.Time `json:"max,omitempty"`
}

// String renders the range the way the audit page displays it.
func (d DateRange) String() string {
	if !d.Known {
		return "Unknown"
	}
	return fmt.Sprintf("From %s to %s", d.Min.Format("2006-01-02"), d.Max.Format("2006-01-02"))
}

// Report is the result of one audit run. It is produced fresh per
// invocation and never mutated afterward.
type Report struct {
	Score     int          `json:"score"`
	Findings  []Finding    `json:"findings"`
	Columns   []ColumnStat `json:"columns"`
	DateRange DateRange    `json:"dateRange"`
}

// AuditConfig carries the column-role mapping and the business-rule
// constants. Penalty magnitudes and thresholds are operator-tunable
// configuration, not algorithmic truths.
type AuditConfig struct {
	IdentifierColumn string   // logical row identifier, e.g. "Report Number"
	TimestampColumn  string   // event timestamp, e.g. "Crash Date/Time"
	YearColumn       string   // vintage year, e.g. "Vehicle Year"
	KeyFields        []string // columns critical for analysis

	StalenessYears int // newest record older than this emits a warning

	DuplicatePenalty int // deducted once if any identifier repeats
	FuturePenalty    int // deducted once if any timestamp is in the future
	KeyFieldPenalty  int // deducted per key field above KeyFieldMissingPct
	MissingPenalty   int // deducted per ordinary column above WarnMissingPct
	YearPenalty      int // deducted once if the year column has out-of-range values

	KeyFieldMissingPct float64 // key-field critical threshold (percent)
	WarnMissingPct     float64 // ordinary-column warning threshold (percent)

	MinYear int // oldest acceptable vintage year

	// Now supplies the audit clock; defaults to time.Now. Injectable so
	// timeliness checks are testable.
	Now func() time.Time
}

// DefaultAuditConfig returns the rule set tuned for the crash-report
// dataset.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		IdentifierColumn:   "Report Number",
		TimestampColumn:    "Crash Date/Time",
		YearColumn:         "Vehicle Year",
		KeyFields:          []string{"Report Number", "Crash Date/Time", "Latitude", "Longitude"},
		StalenessYears:     4,
		DuplicatePenalty:   20,
		FuturePenalty:      10,
		KeyFieldPenalty:    5,
		MissingPenalty:     1,
		YearPenalty:        5,
		KeyFieldMissingPct: 1.0,
		WarnMissingPct:     5.0,
		MinYear:            1900,
	}
}

func (c AuditConfig) clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c AuditConfig) isKeyField(name string) bool {
	for _, k := range c.KeyFields {
		if k == name {
			return true
		}
	}
	return false
}

// Auditor runs health audits with a fixed configuration.
type Auditor struct {
	cfg AuditConfig
}

// NewAuditor returns an auditor for the given configuration.
func NewAuditor(cfg AuditConfig) *Auditor {
	return &Auditor{cfg: cfg}
}

// Config returns the auditor's configuration.
func (a *Auditor) Config() AuditConfig {
	return a.cfg
}

// Run audits a table and returns its health report. Deductions are
// independent and cumulative; check order only affects the order of
// findings. An empty table short-circuits to a zero score with a
// single finding.
func (a *Auditor) Run(t Table) Report {
	totalRows := t.NumRows()
	if totalRows == 0 {
		return Report{
			Score:    0,
			Findings: []Finding{{Severity: SeverityWarning, Message: "Dataset is empty."}},
		}
	}

	cfg := a.cfg
	now := cfg.clock()
	score := 100
	var findings []Finding

	// Consistency: duplicate identifiers.
	if col, ok := t.Col(cfg.IdentifierColumn); cfg.IdentifierColumn != "" && ok {
		dups := duplicateCount(col)
		if dups > 0 {
			score -= cfg.DuplicatePenalty
			rate := float64(dups) / float64(totalRows) * 100
			findings = append(findings, Finding{
				Severity: SeverityCritical,
				Message:  fmt.Sprintf("Found %d duplicate records based on %q (%.2f%%).", dups, cfg.IdentifierColumn, rate),
			})
		} else {
			findings = append(findings, Finding{
				Severity: SeverityPositive,
				Message:  fmt.Sprintf("No duplicates found in %q.", cfg.IdentifierColumn),
			})
		}
	} else if cfg.IdentifierColumn != "" {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Identifier column %q not found in dataset.", cfg.IdentifierColumn),
		})
	}

	// Timeliness: date range, future dates, staleness.
	var dateRange DateRange
	if col, ok := t.Col(cfg.TimestampColumn); cfg.TimestampColumn != "" && ok {
		var dates []time.Time
		for _, cell := range col.Cells {
			if d, ok := CoerceDate(cell); ok {
				dates = append(dates, d)
			}
		}
		if len(dates) == 0 {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("%q column exists but contains no valid dates.", cfg.TimestampColumn),
			})
		} else {
			minDate, maxDate := dates[0], dates[0]
			future := 0
			for _, d := range dates {
				if d.Before(minDate) {
					minDate = d
				}
				if d.After(maxDate) {
					maxDate = d
				}
				if d.After(now) {
					future++
				}
			}
			dateRange = DateRange{Known: true, Min: minDate, Max: maxDate}

			if future > 0 {
				score -= cfg.FuturePenalty
				findings = append(findings, Finding{
					Severity: SeverityCritical,
					Message:  fmt.Sprintf("Found %d records with future dates.", future),
				})
			}
			if cfg.StalenessYears > 0 && maxDate.Before(now.AddDate(-cfg.StalenessYears, 0, 0)) {
				findings = append(findings, Finding{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("Data might be outdated. Latest record is from %d.", maxDate.Year()),
				})
			}
		}
	}

	// Completeness and accuracy, column by column.
	maxYear := now.Year() + 1
	columns := make([]ColumnStat, 0, t.NumCols())
	for _, name := range t.Columns() {
		col, _ := t.Col(name)
		missing := col.Missing()
		missingPct := float64(missing) / float64(totalRows) * 100

		status := StatusValid
		if missingPct > 0 {
			switch {
			case cfg.isKeyField(name) && missingPct > cfg.KeyFieldMissingPct:
				status = StatusCritical
				score -= cfg.KeyFieldPenalty
				findings = append(findings, Finding{
					Severity: SeverityCritical,
					Message:  fmt.Sprintf("Critical field %q has %.1f%% missing values (high risk).", name, missingPct),
				})
			case missingPct > cfg.WarnMissingPct:
				status = StatusWarning
				score -= cfg.MissingPenalty
			default:
				status = StatusWarning
			}
		}

		if cfg.YearColumn != "" && name == cfg.YearColumn {
			invalid := 0
			for _, cell := range col.Cells {
				if y, ok := CoerceNumber(cell); ok && (y < float64(cfg.MinYear) || y > float64(maxYear)) {
					invalid++
				}
			}
			if invalid > 0 {
				status = StatusCritical
				score -= cfg.YearPenalty
				findings = append(findings, Finding{
					Severity: SeverityCritical,
					Message:  fmt.Sprintf("%q contains %d invalid year values (<%d or future).", name, invalid, cfg.MinYear),
				})
			}
		}

		columns = append(columns, ColumnStat{
			Name:       name,
			Kind:       col.InferKind().String(),
			Missing:    missing,
			MissingPct: missingPct,
			Distinct:   col.Distinct(),
			Status:     status,
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Report{
		Score:     score,
		Findings:  findings,
		Columns:   columns,
		DateRange: dateRange,
	}
}

// duplicateCount counts rows whose present identifier repeats an
// earlier occurrence. Absent identifiers are not compared against
// each other.
func duplicateCount(col Column) int {
	seen := make(map[string]struct{}, len(col.Cells))
	dups := 0
	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		key := cell.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}
