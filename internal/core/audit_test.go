package core

import (
	"strings"
	"testing"
	"time"
)

// fixedNow pins the audit clock so timeliness checks are deterministic.
var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testAuditor() *Auditor {
	cfg := DefaultAuditConfig()
	cfg.Now = func() time.Time { return fixedNow }
	return NewAuditor(cfg)
}

func TestAudit_EmptyTable(t *testing.T) {
	rep := testAuditor().Run(Table{})

	if rep.Score != 0 {
		t.Errorf("Score = %d, want 0", rep.Score)
	}
	if len(rep.Findings) != 1 {
		t.Fatalf("Findings = %d, want exactly 1", len(rep.Findings))
	}
	if rep.Findings[0].Message != "Dataset is empty." {
		t.Errorf("unexpected finding: %q", rep.Findings[0].Message)
	}
}

func TestAudit_CleanDataScoresHundred(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R2")}},
		Column{Name: "Crash Date/Time", Cells: []Cell{
			TimeCell(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
			TimeCell(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)),
		}},
		Column{Name: "Vehicle Year", Cells: []Cell{NumberCell(2018), NumberCell(2020)}},
	)

	rep := testAuditor().Run(tbl)
	if rep.Score != 100 {
		t.Errorf("Score = %d, want 100", rep.Score)
	}
	if !rep.DateRange.Known {
		t.Fatal("DateRange should be known")
	}
	if got := rep.DateRange.String(); got != "From 2024-01-10 to 2024-02-20" {
		t.Errorf("DateRange = %q", got)
	}
}

func TestAudit_DefectsDeductIndependently(t *testing.T) {
	// One duplicate id (-20), one future date (-10), one invalid year (-5).
	tbl := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R2"), TextCell("R1")}},
		Column{Name: "Crash Date/Time", Cells: []Cell{
			TimeCell(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
			TimeCell(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
			TimeCell(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		}},
		Column{Name: "Vehicle Year", Cells: []Cell{NumberCell(2020), NumberCell(1800), NumberCell(2023)}},
	)

	rep := testAuditor().Run(tbl)
	if rep.Score != 65 {
		t.Errorf("Score = %d, want 65", rep.Score)
	}

	var sawDup, sawFuture, sawYear bool
	for _, f := range rep.Findings {
		switch {
		case strings.Contains(f.Message, "duplicate"):
			sawDup = true
		case strings.Contains(f.Message, "future dates"):
			sawFuture = true
		case strings.Contains(f.Message, "invalid year"):
			sawYear = true
		}
	}
	if !sawDup || !sawFuture || !sawYear {
		t.Errorf("missing findings: dup=%v future=%v year=%v", sawDup, sawFuture, sawYear)
	}

	for _, c := range rep.Columns {
		if c.Name == "Vehicle Year" && c.Status != StatusCritical {
			t.Errorf("Vehicle Year status = %q, want Critical", c.Status)
		}
	}
}

func TestAudit_AddingDefectsNeverRaisesScore(t *testing.T) {
	base := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R2"), TextCell("R3")}},
		Column{Name: "Vehicle Year", Cells: []Cell{NumberCell(2018), NumberCell(2019), NumberCell(2020)}},
	)
	worse := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R2"), TextCell("R1")}},
		Column{Name: "Vehicle Year", Cells: []Cell{NumberCell(2018), NumberCell(1850), NumberCell(2020)}},
	)

	a := testAuditor()
	if a.Run(worse).Score > a.Run(base).Score {
		t.Error("score increased after introducing defects")
	}
}

func TestAudit_KeyFieldMissingIsCritical(t *testing.T) {
	// 1 of 10 Latitude values missing: 10% > 1% key-field threshold.
	lat := make([]Cell, 10)
	ids := make([]Cell, 10)
	for i := range lat {
		lat[i] = NumberCell(39.0)
		ids[i] = TextCell(strings.Repeat("R", i+1))
	}
	lat[3] = AbsentCell()

	tbl := NewTable(
		Column{Name: "Report Number", Cells: ids},
		Column{Name: "Latitude", Cells: lat},
	)

	rep := testAuditor().Run(tbl)
	if rep.Score != 95 {
		t.Errorf("Score = %d, want 95", rep.Score)
	}
	var found bool
	for _, c := range rep.Columns {
		if c.Name == "Latitude" {
			found = true
			if c.Status != StatusCritical {
				t.Errorf("Latitude status = %q, want Critical", c.Status)
			}
			if c.MissingPct != 10 {
				t.Errorf("Latitude MissingPct = %v, want 10", c.MissingPct)
			}
		}
	}
	if !found {
		t.Fatal("Latitude column stat not reported")
	}
}

func TestAudit_OrdinaryColumnMissingWarns(t *testing.T) {
	// 2 of 10 missing in a non-key column: 20% > 5% threshold, -1 point.
	vals := make([]Cell, 10)
	ids := make([]Cell, 10)
	for i := range vals {
		vals[i] = TextCell("x")
		ids[i] = TextCell(strings.Repeat("R", i+1))
	}
	vals[0] = AbsentCell()
	vals[1] = AbsentCell()

	tbl := NewTable(
		Column{Name: "Report Number", Cells: ids},
		Column{Name: "Weather", Cells: vals},
	)

	rep := testAuditor().Run(tbl)
	if rep.Score != 99 {
		t.Errorf("Score = %d, want 99", rep.Score)
	}
	for _, c := range rep.Columns {
		if c.Name == "Weather" && c.Status != StatusWarning {
			t.Errorf("Weather status = %q, want Warning", c.Status)
		}
	}
}

func TestAudit_StalenessWarningDoesNotDeduct(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1")}},
		Column{Name: "Crash Date/Time", Cells: []Cell{
			TimeCell(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)),
		}},
	)

	rep := testAuditor().Run(tbl)
	if rep.Score != 100 {
		t.Errorf("Score = %d, want 100 (staleness is a warning, not a deduction)", rep.Score)
	}
	var stale bool
	for _, f := range rep.Findings {
		if strings.Contains(f.Message, "outdated") {
			stale = true
			if f.Severity != SeverityWarning {
				t.Errorf("staleness severity = %q, want warning", f.Severity)
			}
		}
	}
	if !stale {
		t.Error("expected a staleness warning")
	}
}

func TestAudit_ScoreClampsAtZero(t *testing.T) {
	cfg := DefaultAuditConfig()
	cfg.Now = func() time.Time { return fixedNow }
	cfg.DuplicatePenalty = 200
	a := NewAuditor(cfg)

	tbl := NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R1")}},
	)
	if got := a.Run(tbl).Score; got != 0 {
		t.Errorf("Score = %d, want clamped to 0", got)
	}
}

func TestDuplicateCount_IgnoresAbsent(t *testing.T) {
	col := Column{Name: "id", Cells: []Cell{
		TextCell("a"), AbsentCell(), AbsentCell(), TextCell("a"),
	}}
	if got := duplicateCount(col); got != 1 {
		t.Errorf("duplicateCount = %d, want 1 (absent ids are not compared)", got)
	}
}
