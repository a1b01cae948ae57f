package envreport

// Source identifies which weather product answers the query. The choice is
// a pure function of the resolved time relative to now, so it is fully
// table-testable.
type Source int

const (
	// SourceTodayImmediate covers queries within the next two hours: the
	// 2-hour area forecast at the resolved hour, filtered to the region.
	SourceTodayImmediate Source = iota
	// SourceTodayLater covers queries more than two hours ahead today: the
	// island-wide 24-hour outlook.
	SourceTodayLater
	// SourceTodayPastOrNow covers resolved hours that already passed today:
	// the 2-hour forecast anchored at the current hour instead.
	SourceTodayPastOrNow
	// SourceFutureDay covers any non-today date: the 4-day outlook, with
	// live PSI/UV skipped entirely.
	SourceFutureDay
)

// Label is the human tag stitched into the prompt next to the summary.
func (s Source) Label() string {
	switch s {
	case SourceTodayImmediate:
		return "2-Hour Forecast"
	case SourceTodayLater:
		return "24-Hour Forecast"
	case SourceTodayPastOrNow:
		return "Current 2-Hour Forecast"
	case SourceFutureDay:
		return "4-Day Outlook"
	default:
		return "N/A"
	}
}

// SelectSource picks the weather source for a resolved query time. The
// signed hour difference distinguishes "already passed" from "later today".
func SelectSource(isToday bool, resolvedHour, nowHour int) Source {
	if !isToday {
		return SourceFutureDay
	}
	diff := resolvedHour - nowHour
	switch {
	case diff < 0:
		return SourceTodayPastOrNow
	case diff <= 2:
		return SourceTodayImmediate
	default:
		return SourceTodayLater
	}
}
