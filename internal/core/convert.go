package core

// convert.go turns raw CSV strings into Cell values.
//
// These functions handle the messy reality of user-provided CSV data:
//   - Multiple date formats (US, EU, ISO, with and without time)
//   - Currency symbols and thousand separators in numbers
//   - Excel formula prefixes (="value")
//   - Common CSV artifacts (BOM, stray quotes)
//
// All Parse* functions return an absent Cell for empty or unparsable
// input. Nothing here ever fails: a value that cannot be parsed as the
// requested kind simply comes back absent, which is how the audit and
// cleaning layers model missing data.

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would land more than this many years in the future are
// assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"1/2/2006 15:04:05 PM", "01/02/2006 03:04:05 PM",
		"1/2/2006 15:04", "1/2/2006 15:04:05",
		"2006-01-02 15:04:05", "2006-01-02T15:04:05",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// ParseDate converts a string to a datetime Cell.
// Supports multiple date formats and handles 2-digit years with a pivot.
func ParseDate(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return AbsentCell()
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return TimeCell(t)
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeCell(t)
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return TimeCell(t)
		}
	}

	return AbsentCell()
}

// ParseNumber converts a string to a numeric Cell.
// Handles currency symbols, thousands separators, and accounting format
// (parentheses for negative).
func ParseNumber(s string) Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return AbsentCell()
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return AbsentCell()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return AbsentCell()
	}
	return NumberCell(f)
}

// ParseCell converts a raw CSV string to the most specific Cell it can:
// empty becomes absent, numbers become numeric cells, everything else
// stays text.
func ParseCell(s string) Cell {
	s = CleanCell(s)
	if s == "" {
		return AbsentCell()
	}
	if n := ParseNumber(s); n.Valid {
		return n
	}
	return TextCell(s)
}

// CoerceNumber attempts a numeric reading of any cell.
// Text cells are re-parsed; datetime cells do not coerce.
func CoerceNumber(c Cell) (float64, bool) {
	if !c.Valid {
		return 0, false
	}
	switch c.Kind {
	case KindNumber:
		return c.Number, true
	case KindText:
		if n := ParseNumber(c.Text); n.Valid {
			return n.Number, true
		}
	}
	return 0, false
}

// CoerceDate attempts a datetime reading of any cell.
// Text cells are re-parsed; numeric cells do not coerce.
func CoerceDate(c Cell) (time.Time, bool) {
	if !c.Valid {
		return time.Time{}, false
	}
	switch c.Kind {
	case KindTime:
		return c.Time, true
	case KindText:
		if d := ParseDate(c.Text); d.Valid {
			return d.Time, true
		}
	}
	return time.Time{}, false
}

// CleanCell removes common CSV artifacts from a cell value:
//   - trims whitespace and a UTF-8 BOM
//   - removes Excel formula prefix (="...")
//   - removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
