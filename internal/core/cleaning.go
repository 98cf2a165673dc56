package core

// cleaning.go holds the interactive cleaning operations. Every
// operation is pure: it returns a new Table and a user-facing message,
// leaving the input untouched. Inapplicable operations return the
// original table unchanged together with a message saying why.

import (
	"fmt"
	"math"
	"sort"
)

// Strategy names for Impute. DropRows removes rows instead of filling.
const (
	StrategyMean     = "Mean"
	StrategyMedian   = "Median"
	StrategyMode     = "Mode"
	StrategyDropRows = "Drop Rows"
)

// Strategies lists the imputation strategies in display order.
var Strategies = []string{StrategyMean, StrategyMedian, StrategyMode, StrategyDropRows}

// Impute fills or drops missing values in one column. The input table
// is never modified. An unknown column is a caller bug and returns an
// error; an inapplicable strategy (Mean/Median on a non-numeric
// column) is a user-facing no-op.
func Impute(t Table, column, strategy string) (Table, string, error) {
	col, ok := t.Col(column)
	if !ok {
		return t, "", fmt.Errorf("unknown column: %s", column)
	}

	missing := col.Missing()
	if missing == 0 {
		return t, fmt.Sprintf("No missing values in '%s' to impute.", column), nil
	}

	switch strategy {
	case StrategyDropRows:
		idx := t.colIndex(column)
		out := t.FilterRows(func(row int) bool {
			return t.cols[idx].Cells[row].Valid
		})
		return out, fmt.Sprintf("Dropped %d rows with missing '%s'", missing, column), nil

	case StrategyMean:
		if !col.IsNumeric() {
			return t, fmt.Sprintf("Strategy '%s' not applicable for column '%s'", strategy, column), nil
		}
		fill := round2(columnMean(col))
		out := fillMissing(t, column, NumberCell(fill))
		return out, fmt.Sprintf("Filled missing '%s' with Mean: %.2f", column, fill), nil

	case StrategyMedian:
		if !col.IsNumeric() {
			return t, fmt.Sprintf("Strategy '%s' not applicable for column '%s'", strategy, column), nil
		}
		fill := round2(columnMedian(col))
		out := fillMissing(t, column, NumberCell(fill))
		return out, fmt.Sprintf("Filled missing '%s' with Median: %.2f", column, fill), nil

	case StrategyMode:
		mode, ok := columnMode(col)
		if !ok {
			return t, fmt.Sprintf("Strategy '%s' not applicable for column '%s'", strategy, column), nil
		}
		out := fillMissing(t, column, mode)
		return out, fmt.Sprintf("Filled missing '%s' with Mode: %s", column, mode.String()), nil

	default:
		return t, fmt.Sprintf("Strategy '%s' not applicable for column '%s'", strategy, column), nil
	}
}

// NormalizeDate re-parses every present cell of a column as a date.
// Cells that cannot be read as dates become absent; the message
// reports how many parsed out of the total row count.
func NormalizeDate(t Table, column string) (Table, string, error) {
	if !t.HasColumn(column) {
		return t, "", fmt.Errorf("unknown column: %s", column)
	}
	out, parsed := normalizeDateColumn(t, column)
	return out, fmt.Sprintf("Fixed format for '%s'. %d/%d valid dates.", column, parsed, t.NumRows()), nil
}

// normalizeDateColumn converts one column to datetime cells, returning
// the new table and the count of successfully parsed values. Cells
// already holding dates pass through; unparsable cells become absent.
func normalizeDateColumn(t Table, column string) (Table, int) {
	col, ok := t.Col(column)
	if !ok {
		return t, 0
	}
	parsed := 0
	cells := make([]Cell, len(col.Cells))
	for i, cell := range col.Cells {
		if d, ok := CoerceDate(cell); ok {
			cells[i] = TimeCell(d)
			parsed++
		} else {
			cells[i] = AbsentCell()
		}
	}
	return t.WithColumn(Column{Name: column, Cells: cells}), parsed
}

// fillMissing replaces every absent cell of a column with fill.
func fillMissing(t Table, column string, fill Cell) Table {
	col, _ := t.Col(column)
	for i, cell := range col.Cells {
		if !cell.Valid {
			col.Cells[i] = fill
		}
	}
	return t.WithColumn(col)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// columnMean averages the present numeric cells.
func columnMean(col Column) float64 {
	var sum float64
	n := 0
	for _, cell := range col.Cells {
		if cell.Valid {
			sum += cell.Number
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// columnMedian returns the median of the present numeric cells. Even
// counts average the two middle values.
func columnMedian(col Column) float64 {
	var vals []float64
	for _, cell := range col.Cells {
		if cell.Valid {
			vals = append(vals, cell.Number)
		}
	}
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}

// columnMode returns the most frequent present value. Ties break to
// the value that reached the winning count first in row order.
func columnMode(col Column) (Cell, bool) {
	counts := make(map[string]int)
	var best Cell
	bestCount := 0
	for _, cell := range col.Cells {
		if !cell.Valid {
			continue
		}
		key := cell.String()
		counts[key]++
		if counts[key] > bestCount {
			bestCount = counts[key]
			best = cell
		}
	}
	if bestCount == 0 {
		return Cell{}, false
	}
	return best, true
}
