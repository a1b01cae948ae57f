// Package querytime extracts the target date and hour a question refers to.
// It is a deliberately small regex heuristic kept behind one function so a
// smarter parser can replace it without touching the pipeline.
package querytime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolved is the (date, hour) pair a query targets, in Singapore time.
type Resolved struct {
	Date time.Time // truncated to midnight in now's location
	Hour int
}

// IsToday reports whether the resolved date equals now's date.
func (r Resolved) IsToday(now time.Time) bool {
	y1, m1, d1 := r.Date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// clockPattern matches either a 12-hour token ("3pm", "10:30 am") or a
// 24-hour token ("14:00"). First match wins; group 1 is the 12-hour form.
var clockPattern = regexp.MustCompile(`(\d{1,2}(?::\d{2})?\s*(?:am|pm))|(\d{1,2}:\d{2})`)

// Resolve applies the two independent cues: a literal "tomorrow" shifts the
// date forward one day, and the first clock token overrides the hour. A
// malformed token never fails the resolution, it just keeps now's hour.
func Resolve(text string, now time.Time) Resolved {
	lowered := strings.ToLower(text)

	date := midnight(now)
	if strings.Contains(lowered, "tomorrow") {
		date = date.AddDate(0, 0, 1)
	}

	hour := now.Hour()
	if match := clockPattern.FindStringSubmatch(lowered); match != nil {
		if parsed, ok := parseHour(match[1], match[2]); ok {
			hour = parsed
		}
	}

	return Resolved{Date: date, Hour: hour}
}

func parseHour(twelveHour, twentyFourHour string) (int, bool) {
	if twelveHour != "" {
		return parse12Hour(strings.ReplaceAll(twelveHour, " ", ""))
	}
	return parse24Hour(twentyFourHour)
}

// parse12Hour handles "3pm" and "10:30am" (minutes are dropped, matching
// hour granularity everywhere downstream).
func parse12Hour(token string) (int, bool) {
	suffix := token[len(token)-2:]
	digits := token[:len(token)-2]
	if idx := strings.Index(digits, ":"); idx >= 0 {
		digits = digits[:idx]
	}
	hour, err := strconv.Atoi(digits)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	if hour == 12 {
		hour = 0
	}
	if suffix == "pm" {
		hour += 12
	}
	return hour, true
}

func parse24Hour(token string) (int, bool) {
	idx := strings.Index(token, ":")
	if idx < 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(token[:idx])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(token[idx+1:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour, true
}

func midnight(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
