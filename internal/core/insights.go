package core

// insights.go turns the working table into zero, one, or two markdown
// insight blocks for the dashboard. The output is deterministic for a
// given table: same data, same text.

import (
	"fmt"
	"strings"
)

// NoInsightsMessage is returned as the only block when the table is
// empty.
const NoInsightsMessage = "No data available to generate insights."

// InsightConfig lists candidate category columns in priority order;
// the first one present in the table drives the dominant-trend block.
type InsightConfig struct {
	CategoryPriority []string
	// PainPointPct is the missing-percentage threshold above which the
	// data-pain-point block is emitted.
	PainPointPct float64
}

// DefaultInsightConfig matches the crash-report dataset.
func DefaultInsightConfig() InsightConfig {
	return InsightConfig{
		CategoryPriority: []string{"Collision Type", "Agency Name"},
		PainPointPct:     5.0,
	}
}

// GenerateInsights produces the insight blocks for a table.
func GenerateInsights(t Table, cfg InsightConfig) []string {
	if t.IsEmpty() {
		return []string{NoInsightsMessage}
	}

	var insights []string

	if block, ok := dominantTrend(t, cfg.CategoryPriority); ok {
		insights = append(insights, block)
	}
	if block, ok := dataPainPoint(t, cfg.PainPointPct); ok {
		insights = append(insights, block)
	}

	return insights
}

// dominantTrend reports the most frequent value of the first mapped
// category column.
func dominantTrend(t Table, priority []string) (string, bool) {
	var target string
	for _, name := range priority {
		if t.HasColumn(name) {
			target = name
			break
		}
	}
	if target == "" {
		return "", false
	}

	col, _ := t.Col(target)
	top, ok := columnMode(col)
	if !ok {
		return "", false
	}
	count := 0
	for _, cell := range col.Cells {
		if cell.Valid && cell.Equal(top) {
			count++
		}
	}
	percent := float64(count) / float64(t.NumRows()) * 100

	var b strings.Builder
	b.WriteString("### Key Insight: Dominant Trend\n")
	fmt.Fprintf(&b, "* **What:** %s '%s' is the most frequent, appearing %d times.\n", target, top.String(), count)
	fmt.Fprintf(&b, "* **Why:** This category accounts for %.1f%% of all recorded events, indicating a significant pattern.\n", percent)
	fmt.Fprintf(&b, "* **So What:** A high concentration in '%s' drives the majority of incident volume.\n", top.String())
	fmt.Fprintf(&b, "* **Now What:** Focus preventive measures and resource allocation specifically on mitigating '%s'.", top.String())
	return b.String(), true
}

// dataPainPoint reports the column with the most missing values, but
// only when the rate is high enough to matter.
func dataPainPoint(t Table, thresholdPct float64) (string, bool) {
	worst := ""
	worstMissing := 0
	for _, name := range t.Columns() {
		col, _ := t.Col(name)
		if m := col.Missing(); m > worstMissing {
			worst = name
			worstMissing = m
		}
	}
	if worstMissing == 0 {
		return "", false
	}
	pct := float64(worstMissing) / float64(t.NumRows()) * 100
	if pct <= thresholdPct {
		return "", false
	}

	var b strings.Builder
	b.WriteString("### Key Insight: Data Pain Point\n")
	fmt.Fprintf(&b, "* **What:** The column '%s' has %d missing values (%.1f%%).\n", worst, worstMissing, pct)
	b.WriteString("* **Why:** Likely due to optional data entry or system integration gaps.\n")
	fmt.Fprintf(&b, "* **So What:** This high missing rate compromises analysis related to '%s'.\n", worst)
	b.WriteString("* **Now What:** Implement mandatory field checks or use the Data Cleaning tools to impute values.")
	return b.String(), true
}
