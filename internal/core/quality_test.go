package core

import (
	"testing"
	"time"
)

func testQualityConfig() QualityConfig {
	cfg := DefaultQualityConfig()
	cfg.Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return cfg
}

func TestQualityBreakdown_EmptyTable(t *testing.T) {
	rep := QualityBreakdown(Table{}, testQualityConfig())
	if len(rep.Completeness) != 0 || rep.InvalidGeo != 0 || rep.FutureDates != 0 {
		t.Errorf("empty table should yield a zero report: %+v", rep)
	}
}

func TestQualityBreakdown_CompletenessSortedWorstFirst(t *testing.T) {
	tbl := NewTable(
		Column{Name: "a", Cells: []Cell{TextCell("x"), AbsentCell(), TextCell("x"), TextCell("x")}},
		Column{Name: "b", Cells: []Cell{AbsentCell(), AbsentCell(), AbsentCell(), TextCell("x")}},
		Column{Name: "c", Cells: []Cell{TextCell("x"), TextCell("x"), TextCell("x"), TextCell("x")}},
	)
	rep := QualityBreakdown(tbl, testQualityConfig())

	if len(rep.Completeness) != 2 {
		t.Fatalf("Completeness = %d entries, want 2 (full columns excluded)", len(rep.Completeness))
	}
	if rep.Completeness[0].Column != "b" || rep.Completeness[0].Percentage != 75 {
		t.Errorf("worst column = %+v, want b at 75%%", rep.Completeness[0])
	}
	if rep.Completeness[1].Column != "a" || rep.Completeness[1].Missing != 1 {
		t.Errorf("second column = %+v", rep.Completeness[1])
	}
}

func TestQualityBreakdown_GeoBounds(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Latitude", Cells: []Cell{
			NumberCell(39.1), NumberCell(45.0), NumberCell(38.5), AbsentCell(),
		}},
		Column{Name: "Longitude", Cells: []Cell{
			NumberCell(-77.2), NumberCell(-77.2), NumberCell(-100.0), NumberCell(-77.2),
		}},
	)
	rep := QualityBreakdown(tbl, testQualityConfig())

	// Row 1 is out of latitude range, row 2 out of longitude range;
	// row 3 has a missing coordinate and is skipped.
	if rep.InvalidGeo != 2 {
		t.Errorf("InvalidGeo = %d, want 2", rep.InvalidGeo)
	}
}

func TestQualityBreakdown_InvalidYears(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Vehicle Year", Cells: []Cell{
			NumberCell(2018), NumberCell(1850), NumberCell(2030), AbsentCell(),
		}},
	)
	rep := QualityBreakdown(tbl, testQualityConfig())
	if rep.InvalidYear != 2 {
		t.Errorf("InvalidYear = %d, want 2", rep.InvalidYear)
	}
}

func TestQualityBreakdown_InconsistentParking(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Parked Vehicle", Cells: []Cell{
			TextCell("Yes"), TextCell("Yes"), TextCell("Yes"), TextCell("No"),
		}},
		Column{Name: "Vehicle Movement", Cells: []Cell{
			TextCell("PARKED"), TextCell("MOVING CONSTANT SPEED"), AbsentCell(), TextCell("MOVING CONSTANT SPEED"),
		}},
	)
	rep := QualityBreakdown(tbl, testQualityConfig())

	// Parked + moving counts, parked + absent movement counts, parked +
	// PARKED does not, and unparked rows are ignored.
	if rep.InconsistentParking != 2 {
		t.Errorf("InconsistentParking = %d, want 2", rep.InconsistentParking)
	}
}

func TestQualityBreakdown_Timeliness(t *testing.T) {
	tbl := NewTable(
		Column{Name: "Crash Date/Time", Cells: []Cell{
			TimeCell(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			TimeCell(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
			TimeCell(time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)),
			TextCell("not a date"),
		}},
	)
	rep := QualityBreakdown(tbl, testQualityConfig())

	if rep.FutureDates != 1 {
		t.Errorf("FutureDates = %d, want 1", rep.FutureDates)
	}
	if rep.OldDates != 1 {
		t.Errorf("OldDates = %d, want 1", rep.OldDates)
	}
}
