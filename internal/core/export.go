package core

// export.go renders the audit report and the history log as XLSX
// workbooks for download.

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BuildAuditWorkbook renders an audit report as an XLSX file: a
// summary sheet with the score and findings, and a detail sheet with
// the per-column statistics.
func BuildAuditWorkbook(rep Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summary := "Summary"
	index, err := f.NewSheet(summary)
	if err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	_ = f.SetCellValue(summary, "A1", "Health Score")
	_ = f.SetCellValue(summary, "B1", rep.Score)
	_ = f.SetCellValue(summary, "A2", "Date Range")
	_ = f.SetCellValue(summary, "B2", rep.DateRange.String())

	_ = f.SetCellValue(summary, "A4", "Severity")
	_ = f.SetCellValue(summary, "B4", "Finding")
	for i, finding := range rep.Findings {
		row := i + 5
		_ = f.SetCellValue(summary, fmt.Sprintf("A%d", row), string(finding.Severity))
		_ = f.SetCellValue(summary, fmt.Sprintf("B%d", row), finding.Message)
	}
	_ = f.SetColWidth(summary, "A", "A", 15)
	_ = f.SetColWidth(summary, "B", "B", 80)

	detail := "Columns"
	if _, err := f.NewSheet(detail); err != nil {
		return nil, fmt.Errorf("create detail sheet: %w", err)
	}
	headers := []string{"Column", "Type", "Missing", "Missing %", "Distinct", "Status"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(detail, cell, header)
	}
	for i, stat := range rep.Columns {
		row := i + 2
		_ = f.SetCellValue(detail, fmt.Sprintf("A%d", row), stat.Name)
		_ = f.SetCellValue(detail, fmt.Sprintf("B%d", row), stat.Kind)
		_ = f.SetCellValue(detail, fmt.Sprintf("C%d", row), stat.Missing)
		_ = f.SetCellValue(detail, fmt.Sprintf("D%d", row), stat.MissingPct)
		_ = f.SetCellValue(detail, fmt.Sprintf("E%d", row), stat.Distinct)
		_ = f.SetCellValue(detail, fmt.Sprintf("F%d", row), string(stat.Status))
	}
	_ = f.SetColWidth(detail, "A", "A", 30)
	_ = f.SetColWidth(detail, "B", "F", 12)

	styleHeaders(f, summary, "A4", "B4")
	styleHeaders(f, detail, "A1", "F1")

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

// BuildHistoryWorkbook renders the history log as a single-sheet XLSX
// file.
func BuildHistoryWorkbook(log *HistoryLog) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "History"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create history sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Timestamp", "Action", "Details", "Rows Remaining"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	for i, e := range log.Entries() {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Timestamp.Format("2006-01-02 15:04:05"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Action)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Details)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.RowCount)
	}
	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	_ = f.SetColWidth(sheet, "C", "C", 55)
	_ = f.SetColWidth(sheet, "D", "D", 15)

	styleHeaders(f, sheet, "A1", "D1")

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func styleHeaders(f *excelize.File, sheet, from, to string) {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return
	}
	_ = f.SetCellStyle(sheet, from, to, headerStyle)
}
