package core

import "testing"

func TestNewTable_PadsRaggedColumns(t *testing.T) {
	tbl := NewTable(
		Column{Name: "a", Cells: []Cell{TextCell("x"), TextCell("y"), TextCell("z")}},
		Column{Name: "b", Cells: []Cell{NumberCell(1)}},
	)

	if tbl.NumRows() != 3 {
		t.Fatalf("NumRows() = %d, want 3", tbl.NumRows())
	}
	if got := tbl.Cell(1, 1); got.Valid {
		t.Errorf("padded cell should be absent, got %v", got)
	}
}

func TestWithColumn_DoesNotMutateInput(t *testing.T) {
	orig := NewTable(
		Column{Name: "a", Cells: []Cell{NumberCell(1), NumberCell(2)}},
	)
	saved := orig.Clone()

	modified := orig.WithColumn(Column{Name: "a", Cells: []Cell{NumberCell(9), NumberCell(9)}})

	if !orig.Equal(saved) {
		t.Error("WithColumn mutated its input")
	}
	if modified.Equal(orig) {
		t.Error("WithColumn returned an unchanged table")
	}
}

func TestWithColumn_AppendsUnknownName(t *testing.T) {
	tbl := NewTable(Column{Name: "a", Cells: []Cell{NumberCell(1)}})
	out := tbl.WithColumn(Column{Name: "b", Cells: []Cell{TextCell("x")}})

	if out.NumCols() != 2 {
		t.Fatalf("NumCols() = %d, want 2", out.NumCols())
	}
	if !out.HasColumn("b") {
		t.Error("appended column not found")
	}
}

func TestFilterRows(t *testing.T) {
	tbl := NewTable(
		Column{Name: "n", Cells: []Cell{NumberCell(1), NumberCell(2), NumberCell(3)}},
	)
	out := tbl.FilterRows(func(row int) bool { return row != 1 })

	if out.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", out.NumRows())
	}
	if got := out.Cell(1, 0); got.Number != 3 {
		t.Errorf("Cell(1,0) = %v, want 3", got.Number)
	}
}

func TestColumnMissingAndDistinct(t *testing.T) {
	col := Column{Name: "c", Cells: []Cell{
		TextCell("a"), AbsentCell(), TextCell("a"), TextCell("b"), AbsentCell(),
	}}

	if got := col.Missing(); got != 2 {
		t.Errorf("Missing() = %d, want 2", got)
	}
	if got := col.Distinct(); got != 2 {
		t.Errorf("Distinct() = %d, want 2", got)
	}
}

func TestColumnIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  bool
	}{
		{"all numbers", []Cell{NumberCell(1), NumberCell(2)}, true},
		{"numbers with gaps", []Cell{NumberCell(1), AbsentCell()}, true},
		{"mixed", []Cell{NumberCell(1), TextCell("x")}, false},
		{"all absent", []Cell{AbsentCell(), AbsentCell()}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := Column{Name: "c", Cells: tt.cells}
			if got := col.IsNumeric(); got != tt.want {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellEqual_AbsentCellsMatch(t *testing.T) {
	if !AbsentCell().Equal(AbsentCell()) {
		t.Error("absent cells should compare equal")
	}
	if AbsentCell().Equal(TextCell("")) {
		t.Error("absent should not equal empty text")
	}
}

func TestTableEqual(t *testing.T) {
	a := NewTable(Column{Name: "x", Cells: []Cell{NumberCell(1)}})
	b := NewTable(Column{Name: "x", Cells: []Cell{NumberCell(1)}})
	c := NewTable(Column{Name: "x", Cells: []Cell{NumberCell(2)}})

	if !a.Equal(b) {
		t.Error("identical tables should be equal")
	}
	if a.Equal(c) {
		t.Error("different tables should not be equal")
	}
}
