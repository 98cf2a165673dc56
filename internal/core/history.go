package core

// history.go is the append-only processing log shown on the History
// page. Entries record what was done, in order, with the row count
// that remained after each step.

import (
	"strconv"
	"sync"
	"time"
)

// HistoryEntry is one recorded processing step.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	RowCount  int       `json:"rowCount"`
}

// HistoryLog is an append-only, concurrency-safe log of processing
// steps. Entries are never reordered or removed.
type HistoryLog struct {
	mu      sync.Mutex
	entries []HistoryEntry

	// now supplies timestamps; defaults to time.Now.
	now func() time.Time
}

// NewHistoryLog returns an empty log.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{now: time.Now}
}

// NewHistoryLogAt returns an empty log with an injected clock.
func NewHistoryLogAt(now func() time.Time) *HistoryLog {
	return &HistoryLog{now: now}
}

// Append records one step.
func (h *HistoryLog) Append(action, details string, rowCount int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, HistoryEntry{
		Timestamp: h.now(),
		Action:    action,
		Details:   details,
		RowCount:  rowCount,
	})
}

// Entries returns a copy of the log in append order.
func (h *HistoryLog) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *HistoryLog) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Export renders the log as a display table with the columns the
// History page shows.
func (h *HistoryLog) Export() Table {
	entries := h.Entries()
	ts := Column{Name: "Timestamp", Cells: make([]Cell, len(entries))}
	action := Column{Name: "Action", Cells: make([]Cell, len(entries))}
	details := Column{Name: "Details", Cells: make([]Cell, len(entries))}
	rows := Column{Name: "Rows Remaining", Cells: make([]Cell, len(entries))}
	for i, e := range entries {
		ts.Cells[i] = TextCell(e.Timestamp.Format("2006-01-02 15:04:05"))
		action.Cells[i] = TextCell(e.Action)
		details.Cells[i] = TextCell(e.Details)
		rows.Cells[i] = TextCell(strconv.Itoa(e.RowCount))
	}
	return NewTable(ts, action, details, rows)
}
