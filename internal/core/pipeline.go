package core

// pipeline.go is the standard cleaning pass applied once when a
// session starts, before the user takes over with the interactive
// cleaning tools. Each step appends to the history log so the History
// page can replay what happened to the data.

import (
	"fmt"
	"time"
)

// PipelineConfig controls the standard cleaning pass.
type PipelineConfig struct {
	YearColumn string
	MinYear    int
	Now        func() time.Time
}

// DefaultPipelineConfig matches the crash-report dataset.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{YearColumn: "Vehicle Year", MinYear: 1900}
}

func (c PipelineConfig) clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// CleanDataset runs the standard pass: drop exact-duplicate rows, fill
// missing text-column cells with "Unknown", and drop rows whose year
// value is out of range. The input table is unchanged; every step is
// logged.
func CleanDataset(t Table, cfg PipelineConfig, log *HistoryLog) Table {
	out := t.Clone()
	log.Append("Load", "Initial Data Load", out.NumRows())

	out = dropDuplicateRows(out)
	log.Append("Clean", "Drop Duplicates", out.NumRows())

	out = fillTextColumnsUnknown(out)
	log.Append("Clean", "Fill Missing Categorical with 'Unknown'", out.NumRows())

	if cfg.YearColumn != "" && out.HasColumn(cfg.YearColumn) {
		maxYear := float64(cfg.clock().Year() + 1)
		idx := out.colIndex(cfg.YearColumn)
		out = out.FilterRows(func(row int) bool {
			y, ok := CoerceNumber(out.cols[idx].Cells[row])
			if !ok {
				return false
			}
			return y >= float64(cfg.MinYear) && y <= maxYear
		})
		log.Append("Filter", fmt.Sprintf("Remove Invalid Vehicle Years (<%d or >Current)", cfg.MinYear), out.NumRows())
	}

	return out
}

// dropDuplicateRows keeps the first occurrence of each distinct row.
func dropDuplicateRows(t Table) Table {
	seen := make(map[string]struct{}, t.NumRows())
	return t.FilterRows(func(row int) bool {
		key := t.rowKey(row)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

// fillTextColumnsUnknown fills absent cells of text-kind columns with
// the literal "Unknown". Numeric and datetime columns keep their gaps
// for the interactive cleaning tools.
func fillTextColumnsUnknown(t Table) Table {
	out := t
	for _, name := range t.Columns() {
		col, _ := out.Col(name)
		if col.InferKind() != KindText || col.Missing() == 0 {
			continue
		}
		for i, cell := range col.Cells {
			if !cell.Valid {
				col.Cells[i] = TextCell("Unknown")
			}
		}
		out = out.WithColumn(col)
	}
	return out
}
