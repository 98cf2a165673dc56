package core

// quality.go is the four-dimension quality breakdown shown on the
// audit page next to the health score. Unlike the audit it assigns no
// score: it only counts problems along completeness, accuracy,
// consistency and timeliness.

import (
	"sort"
	"time"
)

// GeoBounds is the accepted coordinate box for the dataset's region.
type GeoBounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// QualityConfig maps column roles and limits for the breakdown.
type QualityConfig struct {
	LatitudeColumn  string
	LongitudeColumn string
	YearColumn      string
	TimestampColumn string
	ParkedColumn    string // "Yes" marks a parked vehicle
	MovementColumn  string

	Bounds  GeoBounds
	MinYear int
	// Timestamps before this instant count as suspiciously old.
	OldestExpected time.Time

	Now func() time.Time
}

// DefaultQualityConfig returns the breakdown rules for the
// Montgomery County crash dataset (Maryland/DC coordinate box).
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		LatitudeColumn:  "Latitude",
		LongitudeColumn: "Longitude",
		YearColumn:      "Vehicle Year",
		TimestampColumn: "Crash Date/Time",
		ParkedColumn:    "Parked Vehicle",
		MovementColumn:  "Vehicle Movement",
		Bounds:          GeoBounds{MinLat: 37, MaxLat: 40, MinLon: -79, MaxLon: -75},
		MinYear:         1900,
		OldestExpected:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (c QualityConfig) clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// MissingStat is one row of the completeness table.
type MissingStat struct {
	Column     string  `json:"column"`
	Missing    int     `json:"missing"`
	Percentage float64 `json:"percentage"`
}

// QualityReport is the non-scoring four-dimension breakdown.
type QualityReport struct {
	Completeness []MissingStat `json:"completeness"`

	InvalidGeo  int `json:"invalidGeo"`
	InvalidYear int `json:"invalidYear"`

	InconsistentParking int `json:"inconsistentParking"`

	FutureDates int `json:"futureDates"`
	OldDates    int `json:"oldDates"`
}

// parkedMovements are the movement values compatible with a parked
// vehicle.
var parkedMovements = map[string]struct{}{
	"PARKED":   {},
	"PARKING":  {},
	"STOPPED":  {},
	"STANDING": {},
}

// QualityBreakdown runs all four dimensions over a table.
func QualityBreakdown(t Table, cfg QualityConfig) QualityReport {
	var rep QualityReport
	total := t.NumRows()
	if total == 0 {
		return rep
	}
	now := cfg.clock()

	// Completeness: columns with at least one missing cell, worst first.
	for _, name := range t.Columns() {
		col, _ := t.Col(name)
		if m := col.Missing(); m > 0 {
			rep.Completeness = append(rep.Completeness, MissingStat{
				Column:     name,
				Missing:    m,
				Percentage: float64(m) / float64(total) * 100,
			})
		}
	}
	sort.SliceStable(rep.Completeness, func(i, j int) bool {
		return rep.Completeness[i].Percentage > rep.Completeness[j].Percentage
	})

	// Accuracy: coordinates outside the regional box, years out of range.
	lat, latOK := t.Col(cfg.LatitudeColumn)
	lon, lonOK := t.Col(cfg.LongitudeColumn)
	if latOK && lonOK {
		for i := 0; i < total; i++ {
			la, ok1 := CoerceNumber(lat.Cells[i])
			lo, ok2 := CoerceNumber(lon.Cells[i])
			if !ok1 || !ok2 {
				continue
			}
			if la < cfg.Bounds.MinLat || la > cfg.Bounds.MaxLat || lo < cfg.Bounds.MinLon || lo > cfg.Bounds.MaxLon {
				rep.InvalidGeo++
			}
		}
	}
	if col, ok := t.Col(cfg.YearColumn); ok {
		maxYear := float64(now.Year() + 1)
		for _, cell := range col.Cells {
			if y, ok := CoerceNumber(cell); ok && (y < float64(cfg.MinYear) || y > maxYear) {
				rep.InvalidYear++
			}
		}
	}

	// Consistency: vehicles marked parked but recorded as moving.
	parked, pOK := t.Col(cfg.ParkedColumn)
	movement, mOK := t.Col(cfg.MovementColumn)
	if pOK && mOK {
		for i := 0; i < total; i++ {
			p := parked.Cells[i]
			if !p.Valid || p.String() != "Yes" {
				continue
			}
			m := movement.Cells[i]
			if !m.Valid {
				rep.InconsistentParking++
				continue
			}
			if _, ok := parkedMovements[m.String()]; !ok {
				rep.InconsistentParking++
			}
		}
	}

	// Timeliness: future dates and implausibly old dates.
	if col, ok := t.Col(cfg.TimestampColumn); ok {
		for _, cell := range col.Cells {
			d, ok := CoerceDate(cell)
			if !ok {
				continue
			}
			if d.After(now) {
				rep.FutureDates++
			}
			if d.Before(cfg.OldestExpected) {
				rep.OldDates++
			}
		}
	}

	return rep
}
