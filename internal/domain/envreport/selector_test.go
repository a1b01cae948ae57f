package envreport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectSource(t *testing.T) {
	cases := []struct {
		name         string
		isToday      bool
		resolvedHour int
		nowHour      int
		want         Source
	}{
		{"same hour", true, 9, 9, SourceTodayImmediate},
		{"one hour ahead", true, 10, 9, SourceTodayImmediate},
		{"two hours ahead", true, 11, 9, SourceTodayImmediate},
		{"three hours ahead", true, 12, 9, SourceTodayLater},
		{"evening query in the morning", true, 21, 9, SourceTodayLater},
		{"hour already passed", true, 8, 9, SourceTodayPastOrNow},
		{"midnight after the fact", true, 0, 23, SourceTodayPastOrNow},
		{"tomorrow morning", false, 9, 9, SourceFutureDay},
		{"tomorrow regardless of hour", false, 23, 0, SourceFutureDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SelectSource(tc.isToday, tc.resolvedHour, tc.nowHour))
		})
	}
}

func TestSourceLabel(t *testing.T) {
	require.Equal(t, "2-Hour Forecast", SourceTodayImmediate.Label())
	require.Equal(t, "24-Hour Forecast", SourceTodayLater.Label())
	require.Equal(t, "Current 2-Hour Forecast", SourceTodayPastOrNow.Label())
	require.Equal(t, "4-Day Outlook", SourceFutureDay.Label())
	require.Equal(t, "N/A", Source(99).Label())
}
