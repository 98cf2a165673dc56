package core

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// MaxFileSize is the maximum allowed CSV file size (100MB).
var MaxFileSize int64 = 100 * 1024 * 1024

// LoadResult is the outcome of loading a dataset. Load failures are
// reported here as an empty Table plus a message, never as an error:
// the rest of the system treats an empty table as a normal state.
type LoadResult struct {
	Table       Table
	Message     string
	SkippedRows int
}

// Loader reads delimited files into Tables and memoizes the result by
// path, so repeated loads during page re-renders do not re-read a file
// that can be tens of megabytes.
type Loader struct {
	timestampColumn string

	mu    sync.Mutex
	cache map[string]LoadResult
}

// NewLoader returns a loader. If timestampColumn is non-empty and the
// file contains a column with that name, its cells are parsed to dates
// at load time (unparsable cells become absent).
func NewLoader(timestampColumn string) *Loader {
	return &Loader{
		timestampColumn: timestampColumn,
		cache:           make(map[string]LoadResult),
	}
}

// Load reads the file at path into a Table. Results are cached by path
// for the lifetime of the loader.
func (l *Loader) Load(path string) LoadResult {
	l.mu.Lock()
	if res, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return res
	}
	l.mu.Unlock()

	res := l.read(path)

	l.mu.Lock()
	l.cache[path] = res
	l.mu.Unlock()
	return res
}

// Invalidate drops the cached result for a path.
func (l *Loader) Invalidate(path string) {
	l.mu.Lock()
	delete(l.cache, path)
	l.mu.Unlock()
}

func (l *Loader) read(path string) LoadResult {
	info, err := os.Stat(path)
	if err != nil {
		return LoadResult{Table: NewTable(), Message: fmt.Sprintf("File not found: %s", path)}
	}
	if info.Size() > MaxFileSize {
		return LoadResult{Table: NewTable(), Message: fmt.Sprintf("File exceeds %dMB limit: %s", MaxFileSize/(1024*1024), path)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{Table: NewTable(), Message: fmt.Sprintf("Cannot read file: %v", err)}
	}

	return l.Parse(data, path)
}

// Parse builds a Table from raw delimited bytes. The name is used only
// in messages.
func (l *Loader) Parse(data []byte, name string) LoadResult {
	data = sanitizeUTF8(data)

	header, rows, skipped, err := parseDelimited(data)
	if err != nil {
		return LoadResult{Table: NewTable(), Message: fmt.Sprintf("Cannot parse %s: %v", name, err)}
	}
	if len(header) == 0 {
		return LoadResult{Table: NewTable(), Message: fmt.Sprintf("No header row in %s", name)}
	}

	cols := make([]Column, len(header))
	for j, h := range header {
		cols[j] = Column{
			Name:  CleanCell(h),
			Cells: make([]Cell, len(rows)),
		}
	}

	for i, row := range rows {
		for j := range cols {
			if j < len(row) {
				cols[j].Cells[i] = ParseCell(row[j])
			} else {
				cols[j].Cells[i] = AbsentCell()
			}
		}
	}

	t := Table{cols: cols}

	// Pre-parse the known timestamp column so timeliness checks and the
	// dashboard trend view get real dates.
	if l.timestampColumn != "" && t.HasColumn(l.timestampColumn) {
		parsed, _ := normalizeDateColumn(t, l.timestampColumn)
		t = parsed
	}

	msg := fmt.Sprintf("Loaded %d rows, %d columns from %s", t.NumRows(), t.NumCols(), name)
	if skipped > 0 {
		msg = fmt.Sprintf("%s (%d malformed rows skipped)", msg, skipped)
	}
	return LoadResult{Table: t, Message: msg, SkippedRows: skipped}
}

// parseDelimited reads the header and data rows, auto-detecting the
// delimiter and skipping rows that fail to parse.
func parseDelimited(data []byte) (header []string, rows [][]string, skipped int, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err = r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, fmt.Errorf("read header: %w", err)
	}

	for {
		rec, rerr := r.Read()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			// Malformed row: skip and keep going.
			skipped++
			continue
		}
		if isEmptyRow(rec) {
			continue
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return header, rows, skipped, nil
}

// sniffDelimiter picks between comma and semicolon by counting
// occurrences in the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences with the Unicode
// replacement character so the CSV reader never chokes on mixed
// encodings.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
