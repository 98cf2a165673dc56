package core

import (
	"testing"
	"time"
)

func TestHistoryLog_AppendOrder(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	log := NewHistoryLogAt(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	log.Append("Load", "Initial Data Load", 100)
	log.Append("Clean", "Drop Duplicates", 90)
	log.Append("Filter", "Remove Invalid Vehicle Years (<1900 or >Current)", 85)

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries = %d, want 3", len(entries))
	}
	if entries[0].Action != "Load" || entries[2].Action != "Filter" {
		t.Error("entries not in append order")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Error("timestamps not monotonic")
		}
	}
	if log.Len() != 3 {
		t.Errorf("Len = %d, want 3", log.Len())
	}
}

func TestHistoryLog_EntriesReturnsCopy(t *testing.T) {
	log := NewHistoryLog()
	log.Append("Load", "Initial Data Load", 10)

	got := log.Entries()
	got[0].Action = "tampered"

	if log.Entries()[0].Action != "Load" {
		t.Error("Entries exposed internal state")
	}
}

func TestHistoryLog_Export(t *testing.T) {
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	log := NewHistoryLogAt(func() time.Time { return base })
	log.Append("Load", "Initial Data Load", 100)
	log.Append("Clean", "Fill Missing Categorical with 'Unknown'", 100)

	tbl := log.Export()
	want := []string{"Timestamp", "Action", "Details", "Rows Remaining"}
	for i, name := range tbl.Columns() {
		if name != want[i] {
			t.Errorf("column %d = %q, want %q", i, name, want[i])
		}
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("NumRows = %d, want 2", tbl.NumRows())
	}
	// Last exported row reflects the last append.
	last := tbl.Row(1)
	if last[1].Text != "Clean" || last[3].Text != "100" {
		t.Errorf("last row = %v", last)
	}
	if last[0].Text != "2024-06-01 10:00:00" {
		t.Errorf("timestamp = %q", last[0].Text)
	}
}
