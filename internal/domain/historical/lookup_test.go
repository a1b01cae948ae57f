package historical

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steadyday/steadyday/pkg/timeutil"
)

func TestLookupCoversEveryMonthAndHour(t *testing.T) {
	tables := NewTables()
	for month := time.January; month <= time.December; month++ {
		for hour := 0; hour < 24; hour++ {
			date := time.Date(2025, month, 10, 0, 0, 0, 0, timeutil.Singapore)
			got := tables.Lookup(date, hour)
			require.NotContains(t, got.PSI, "not available", "month %s", month)
			require.NotContains(t, got.UV, "not available", "month %s hour %d", month, hour)
		}
	}
}

func TestLookupFormatsKnownValues(t *testing.T) {
	tables := NewTables()
	date := time.Date(2025, time.November, 14, 0, 0, 0, 0, timeutil.Singapore)

	got := tables.Lookup(date, 15)
	require.Contains(t, got.PSI, "November")
	require.Contains(t, got.PSI, "**39.7**")
	require.Contains(t, got.PSI, "**Good**")
	require.Contains(t, got.UV, "(15:00)")
	require.Contains(t, got.UV, "**3**")
	require.Contains(t, got.UV, "(Moderate)")
}

func TestLookupIsYearAgnostic(t *testing.T) {
	tables := NewTables()
	a := tables.Lookup(time.Date(2024, time.July, 1, 0, 0, 0, 0, timeutil.Singapore), 12)
	b := tables.Lookup(time.Date(2031, time.July, 28, 0, 0, 0, 0, timeutil.Singapore), 12)
	require.Equal(t, a, b)
}

func TestLookupIsIdempotent(t *testing.T) {
	tables := NewTables()
	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, timeutil.Singapore)
	first := tables.Lookup(date, 11)
	second := tables.Lookup(date, 11)
	require.Equal(t, first, second)
}

func TestLookupMissingEntries(t *testing.T) {
	trimmed := &Tables{
		psi: map[time.Month]float64{time.January: 37.1},
		uv:  map[time.Month][24]float64{time.January: {}},
	}

	got := trimmed.Lookup(time.Date(2025, time.June, 1, 0, 0, 0, 0, timeutil.Singapore), 12)
	require.Contains(t, got.PSI, "Data is not available")
	require.Contains(t, got.UV, "Data is not available")

	// Out of range hour degrades the same way.
	got = trimmed.Lookup(time.Date(2025, time.January, 1, 0, 0, 0, 0, timeutil.Singapore), 42)
	require.Contains(t, got.UV, "Data is not available")
}

func TestUVRiskBands(t *testing.T) {
	cases := []struct {
		value float64
		label string
	}{
		{0, "Low"}, {2.9, "Low"}, {3, "Moderate"}, {5.9, "Moderate"},
		{6, "High"}, {7.9, "High"}, {8, "Very High"}, {10.9, "Very High"},
		{11, "Extreme"}, {14, "Extreme"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.label, uvRiskLabel(tc.value), fmt.Sprintf("uv=%v", tc.value))
	}
}
