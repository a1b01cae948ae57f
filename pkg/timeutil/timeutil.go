package timeutil

import "time"

// Singapore is the fixed UTC+8 zone every resolved date and hour lives in.
var Singapore = time.FixedZone("Asia/Singapore", 8*60*60)

// NowSGT exposes the current Singapore wall clock for deterministic testing.
func NowSGT() time.Time {
	return time.Now().In(Singapore)
}
