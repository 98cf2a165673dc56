// Package core holds the business logic for the crash-report
// analytics dashboard, independent of any UI or transport layer.
//
// # Architecture
//
// The package is organized around a few key concepts:
//
//   - Table: an immutable, absent-aware, mixed-type columnar table.
//     Every transformation returns a new Table; nothing mutates in
//     place.
//   - Loader: reads the configured CSV into a Table, tolerating
//     malformed rows, mixed encodings, and a missing file.
//   - Auditor: scores data health 0-100 from independent checks
//     (duplicates, timeliness, completeness, year-range accuracy) and
//     produces human-readable findings.
//   - Cleaning: pure Impute/NormalizeDate operations plus the standard
//     CleanDataset pass that runs at session start.
//   - HistoryLog: append-only record of every processing step.
//   - SessionManager: per-user working state with TTL eviction. All
//     mutable table state lives here.
//   - Service: the façade the web layer calls.
//
// # Missing values
//
// A missing value is a Cell with Valid=false, which is distinct from
// zero or the empty string. All statistics (means, modes, missing
// counts, duplicate keys) are computed over present cells only.
//
// # Determinism
//
// Audit reports and insights are pure functions of the table and the
// configuration (with an injectable clock), so repeated runs over
// unchanged data give identical results.
package core
