package core

import (
	"testing"
	"time"
)

func pipelineConfig() PipelineConfig {
	return PipelineConfig{
		YearColumn: "Vehicle Year",
		MinYear:    1900,
		Now:        func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestCleanDataset(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Report Number", Cells: []Cell{
			TextCell("R1"), TextCell("R1"), TextCell("R2"), TextCell("R3"),
		}},
		Column{Name: "Agency Name", Cells: []Cell{
			TextCell("County"), TextCell("County"), AbsentCell(), TextCell("State"),
		}},
		Column{Name: "Vehicle Year", Cells: []Cell{
			NumberCell(2018), NumberCell(2018), NumberCell(2020), NumberCell(1850),
		}},
	)
	saved := tbl.Clone()
	log := NewHistoryLog()

	out := CleanDataset(tbl, pipelineConfig(), log)

	if !tbl.Equal(saved) {
		t.Error("CleanDataset mutated its input")
	}
	// Row 1 is an exact duplicate of row 0; row 3 has year 1850.
	if out.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", out.NumRows())
	}

	agency, _ := out.Col("Agency Name")
	if agency.Missing() != 0 {
		t.Errorf("Agency Name missing = %d, want 0", agency.Missing())
	}
	if got := agency.Cells[1].Text; got != "Unknown" {
		t.Errorf("filled categorical = %q, want Unknown", got)
	}

	entries := log.Entries()
	if len(entries) != 4 {
		t.Fatalf("history entries = %d, want 4", len(entries))
	}
	wantDetails := []string{
		"Initial Data Load",
		"Drop Duplicates",
		"Fill Missing Categorical with 'Unknown'",
		"Remove Invalid Vehicle Years (<1900 or >Current)",
	}
	wantRows := []int{4, 3, 3, 2}
	for i, e := range entries {
		if e.Details != wantDetails[i] {
			t.Errorf("entry %d details = %q, want %q", i, e.Details, wantDetails[i])
		}
		if e.RowCount != wantRows[i] {
			t.Errorf("entry %d rows = %d, want %d", i, e.RowCount, wantRows[i])
		}
	}
}

func TestCleanDataset_NumericGapsSurvive(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Speed Limit", Cells: []Cell{NumberCell(30), AbsentCell()}},
	)
	out := CleanDataset(tbl, PipelineConfig{}, NewHistoryLog())

	col, _ := out.Col("Speed Limit")
	if col.Missing() != 1 {
		t.Errorf("numeric gap was filled by the standard pass: missing = %d, want 1", col.Missing())
	}
}

func TestCleanDataset_YearRowsWithUnparsableYearDrop(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Vehicle Year", Cells: []Cell{NumberCell(2020), TextCell("N/A"), AbsentCell()}},
	)
	out := CleanDataset(tbl, pipelineConfig(), NewHistoryLog())

	if out.NumRows() != 1 {
		t.Errorf("NumRows = %d, want 1 (non-numeric years dropped)", out.NumRows())
	}
}

func TestDropDuplicateRows_AbsentVsEmptyText(t *testing.T) {
	// An absent cell and an empty text cell are different values, so the
	// two rows are not duplicates.
	tbl := NewTable(
		Column{Name: "a", Cells: []Cell{TextCell("x"), TextCell("x")}},
		Column{Name: "b", Cells: []Cell{AbsentCell(), TextCell("")}},
	)
	if got := dropDuplicateRows(tbl).NumRows(); got != 2 {
		t.Errorf("NumRows = %d, want 2", got)
	}
}
