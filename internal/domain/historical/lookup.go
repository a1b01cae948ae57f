// Package historical serves precomputed 2024 monthly PSI and hourly UV
// averages. The tables are reference data: loaded once, never mutated, and
// matched by month number so a 2025 query reuses the 2024 row.
package historical

import (
	"fmt"
	"time"
)

// Tables bundles the immutable PSI and UV average tables.
type Tables struct {
	psi map[time.Month]float64
	uv  map[time.Month][24]float64
}

// NewTables loads the full static dataset.
func NewTables() *Tables {
	return &Tables{psi: psiMonthlyAverages, uv: uvHourlyAverages}
}

// Summary carries the two historical reference lines for a query.
type Summary struct {
	PSI string
	UV  string
}

// Lookup summarizes the typical PSI for the date's month and the typical UV
// index for the date's month at the given hour. A missing table entry
// produces an explicit "not available" line, never an error.
func (t *Tables) Lookup(date time.Time, hour int) Summary {
	month := date.Month()
	name := month.String()

	var psi string
	if avg, ok := t.psi[month]; ok {
		category := "Good"
		if avg >= 51 {
			category = "Moderate"
		}
		psi = fmt.Sprintf("📊 Historical PSI for %s: Monthly average is **%.1f**, typically in the **%s** range.", name, avg, category)
	} else {
		psi = fmt.Sprintf("📊 Historical PSI for %s: Data is not available.", name)
	}

	var uv string
	if hours, ok := t.uv[month]; ok && hour >= 0 && hour < len(hours) {
		avg := hours[hour]
		uv = fmt.Sprintf("☀️ Historical UV Index for %s (%02d:00): Average is **%d** (%s).", name, hour, int(avg), uvRiskLabel(avg))
	} else {
		uv = fmt.Sprintf("☀️ Historical UV Index for %s (%02d:00): Data is not available.", name, hour)
	}

	return Summary{PSI: psi, UV: uv}
}

// uvRiskLabel applies the WHO UV index bands.
func uvRiskLabel(uv float64) string {
	switch {
	case uv < 3:
		return "Low"
	case uv < 6:
		return "Moderate"
	case uv < 8:
		return "High"
	case uv < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}
