package core

import (
	"testing"
	"time"
)

func sessionSeedTable() Table {
	return NewTable(
		Column{Name: "Report Number", Cells: []Cell{TextCell("R1"), TextCell("R2")}},
		Column{Name: "Agency Name", Cells: []Cell{TextCell("County"), AbsentCell()}},
	)
}

func TestSessionManager_CreateRunsStandardPass(t *testing.T) {
	m := NewSessionManager(time.Hour)
	s := m.Create(sessionSeedTable(), PipelineConfig{})

	if s.ID == "" {
		t.Fatal("session has no ID")
	}
	agency, _ := s.Working.Col("Agency Name")
	if agency.Missing() != 0 {
		t.Error("standard pass did not fill categorical gaps")
	}
	if !s.Baseline.Equal(s.Working) {
		t.Error("baseline and working should start identical")
	}
	if s.History.Len() == 0 {
		t.Error("standard pass steps were not logged")
	}

	got, ok := m.Get(s.ID)
	if !ok || got.ID != s.ID {
		t.Error("Get did not return the created session")
	}
}

func TestSessionManager_SessionsAreIsolated(t *testing.T) {
	m := NewSessionManager(time.Hour)
	a := m.Create(sessionSeedTable(), PipelineConfig{})
	b := m.Create(sessionSeedTable(), PipelineConfig{})

	m.Replace(a.ID, a.Working.Head(1))

	bw, _ := m.Working(b.ID)
	if !bw.Equal(b.Baseline) {
		t.Error("mutation in one session leaked into another")
	}
}

func TestSessionManager_ResetRestoresBaseline(t *testing.T) {
	m := NewSessionManager(time.Hour)
	s := m.Create(sessionSeedTable(), PipelineConfig{})

	smaller := s.Working.Head(1)
	m.Replace(s.ID, smaller)

	restored, ok := m.Reset(s.ID)
	if !ok {
		t.Fatal("Reset failed")
	}
	if !restored.Equal(s.Baseline) {
		t.Error("Reset did not restore the baseline")
	}

	entries := s.History.Entries()
	last := entries[len(entries)-1]
	if last.Action != "Reset" {
		t.Errorf("last history action = %q, want Reset", last.Action)
	}
}

func TestSessionManager_SweepEvictsIdle(t *testing.T) {
	m := NewSessionManager(time.Hour)
	clock := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return clock }

	stale := m.Create(sessionSeedTable(), PipelineConfig{})
	clock = clock.Add(30 * time.Minute)
	fresh := m.Create(sessionSeedTable(), PipelineConfig{})

	clock = clock.Add(45 * time.Minute)
	if evicted := m.Sweep(); evicted != 1 {
		t.Fatalf("Sweep evicted %d, want 1", evicted)
	}
	if _, ok := m.Get(stale.ID); ok {
		t.Error("stale session survived the sweep")
	}
	if _, ok := m.Get(fresh.ID); !ok {
		t.Error("fresh session was evicted")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestSessionManager_UnknownID(t *testing.T) {
	m := NewSessionManager(time.Hour)
	if _, ok := m.Get("nope"); ok {
		t.Error("Get on unknown ID should fail")
	}
	if _, ok := m.Working("nope"); ok {
		t.Error("Working on unknown ID should fail")
	}
	if m.Replace("nope", Table{}) {
		t.Error("Replace on unknown ID should succeed only for live sessions")
	}
	if _, ok := m.Reset("nope"); ok {
		t.Error("Reset on unknown ID should fail")
	}
}
