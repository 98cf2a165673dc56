package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the parsed type of a single cell.
type CellKind int

const (
	KindText CellKind = iota
	KindNumber
	KindTime
)

// String returns the display name of a cell kind.
func (k CellKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTime:
		return "datetime"
	default:
		return "text"
	}
}

// Cell is a single table value. Valid=false means the cell is absent,
// which is distinct from zero or the empty string.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
	Valid  bool
}

// TextCell returns a present text cell.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s, Valid: true}
}

// NumberCell returns a present numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f, Valid: true}
}

// TimeCell returns a present datetime cell.
func TimeCell(t time.Time) Cell {
	return Cell{Kind: KindTime, Time: t, Valid: true}
}

// AbsentCell returns an absent cell.
func AbsentCell() Cell {
	return Cell{}
}

// String formats a cell for display. Absent cells render as the empty string.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindTime:
		return c.Time.Format("2006-01-02 15:04:05")
	default:
		return c.Text
	}
}

// Equal reports whether two cells hold the same value.
// All absent cells compare equal regardless of kind.
func (c Cell) Equal(o Cell) bool {
	if !c.Valid || !o.Valid {
		return c.Valid == o.Valid
	}
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case KindNumber:
		return c.Number == o.Number
	case KindTime:
		return c.Time.Equal(o.Time)
	default:
		return c.Text == o.Text
	}
}

// Column is a named, row-aligned sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Missing returns the number of absent cells.
func (c Column) Missing() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.Valid {
			n++
		}
	}
	return n
}

// Distinct returns the number of distinct present values.
func (c Column) Distinct() int {
	seen := make(map[string]struct{})
	for _, cell := range c.Cells {
		if cell.Valid {
			seen[cell.String()] = struct{}{}
		}
	}
	return len(seen)
}

// InferKind returns the predominant kind among present cells.
// A column with no present cells is reported as text.
func (c Column) InferKind() CellKind {
	var num, tim, txt int
	for _, cell := range c.Cells {
		if !cell.Valid {
			continue
		}
		switch cell.Kind {
		case KindNumber:
			num++
		case KindTime:
			tim++
		default:
			txt++
		}
	}
	if num >= tim && num >= txt && num > 0 {
		return KindNumber
	}
	if tim >= txt && tim > 0 {
		return KindTime
	}
	return KindText
}

// IsNumeric reports whether the column can take numeric aggregation:
// at least one present cell, and every present cell is a number.
func (c Column) IsNumeric() bool {
	present := 0
	for _, cell := range c.Cells {
		if !cell.Valid {
			continue
		}
		if cell.Kind != KindNumber {
			return false
		}
		present++
	}
	return present > 0
}

// clone returns a deep copy of the column.
func (c Column) clone() Column {
	cells := make([]Cell, len(c.Cells))
	copy(cells, c.Cells)
	return Column{Name: c.Name, Cells: cells}
}

// Table is an ordered collection of named columns with row-aligned cells.
// Tables are treated as immutable values: every transformation returns a
// new Table and leaves its input untouched.
type Table struct {
	cols []Column
}

// NewTable builds a table from columns. All columns must have the same
// length; shorter columns are padded with absent cells so that a ragged
// input can never corrupt row alignment.
func NewTable(cols ...Column) Table {
	rows := 0
	for _, c := range cols {
		if len(c.Cells) > rows {
			rows = len(c.Cells)
		}
	}
	out := make([]Column, len(cols))
	for i, c := range cols {
		cc := c.clone()
		for len(cc.Cells) < rows {
			cc.Cells = append(cc.Cells, AbsentCell())
		}
		out[i] = cc
	}
	return Table{cols: out}
}

// NumRows returns the number of rows.
func (t Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Cells)
}

// NumCols returns the number of columns.
func (t Table) NumCols() int {
	return len(t.cols)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return t.NumRows() == 0
}

// Columns returns the column names in order.
func (t Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// colIndex returns the position of a column by exact name, or -1.
func (t Table) colIndex(name string) int {
	for i, c := range t.cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a column with the given name exists.
func (t Table) HasColumn(name string) bool {
	return t.colIndex(name) >= 0
}

// Col returns a copy of the named column.
func (t Table) Col(name string) (Column, bool) {
	i := t.colIndex(name)
	if i < 0 {
		return Column{}, false
	}
	return t.cols[i].clone(), true
}

// Cell returns the cell at (row, column index).
func (t Table) Cell(row, col int) Cell {
	return t.cols[col].Cells[row]
}

// Row returns the cells of one row in column order.
func (t Table) Row(i int) []Cell {
	row := make([]Cell, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Cells[i]
	}
	return row
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.clone()
	}
	return Table{cols: cols}
}

// WithColumn returns a new table with the named column replaced (or
// appended, if no column of that name exists). The input is unchanged.
func (t Table) WithColumn(col Column) Table {
	out := t.Clone()
	i := out.colIndex(col.Name)
	if i < 0 {
		out.cols = append(out.cols, col.clone())
		return NewTable(out.cols...)
	}
	out.cols[i] = col.clone()
	return out
}

// FilterRows returns a new table containing only the rows for which keep
// returns true.
func (t Table) FilterRows(keep func(row int) bool) Table {
	rows := t.NumRows()
	idx := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	cols := make([]Column, len(t.cols))
	for j, c := range t.cols {
		cells := make([]Cell, len(idx))
		for k, i := range idx {
			cells[k] = c.Cells[i]
		}
		cols[j] = Column{Name: c.Name, Cells: cells}
	}
	return Table{cols: cols}
}

// Head returns a new table with at most n rows.
func (t Table) Head(n int) Table {
	return t.FilterRows(func(row int) bool { return row < n })
}

// Equal reports whether two tables have identical shape, column names,
// and cell values.
func (t Table) Equal(o Table) bool {
	if len(t.cols) != len(o.cols) || t.NumRows() != o.NumRows() {
		return false
	}
	for i := range t.cols {
		if t.cols[i].Name != o.cols[i].Name {
			return false
		}
		for j := range t.cols[i].Cells {
			if !t.cols[i].Cells[j].Equal(o.cols[i].Cells[j]) {
				return false
			}
		}
	}
	return true
}

// Records renders the table as a header row plus formatted value rows,
// suitable for CSV output or display.
func (t Table) Records() [][]string {
	out := make([][]string, 0, t.NumRows()+1)
	out = append(out, t.Columns())
	for i := 0; i < t.NumRows(); i++ {
		row := make([]string, len(t.cols))
		for j, c := range t.cols {
			row[j] = c.Cells[i].String()
		}
		out = append(out, row)
	}
	return out
}

// rowKey joins the display values of one row into a comparison key.
func (t Table) rowKey(i int) string {
	parts := make([]string, len(t.cols))
	for j, c := range t.cols {
		cell := c.Cells[i]
		if !cell.Valid {
			parts[j] = "\x00"
		} else {
			parts[j] = cell.String()
		}
	}
	return strings.Join(parts, "\x1f")
}

// Shape returns a short "rows x cols" description for logging.
func (t Table) Shape() string {
	return fmt.Sprintf("%dx%d", t.NumRows(), t.NumCols())
}
