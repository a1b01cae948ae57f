package historical

import "time"

// psiMonthlyAverages holds the 2024 average 24-hour PSI per calendar month.
var psiMonthlyAverages = map[time.Month]float64{
	time.January:   37.076923,
	time.February:  34.000000,
	time.March:     36.562500,
	time.April:     40.033333,
	time.May:       39.533333,
	time.June:      39.100000,
	time.July:      39.580645,
	time.August:    40.032258,
	time.September: 42.100000,
	time.October:   45.419355,
	time.November:  39.666667,
	time.December:  34.903226,
}

// uvHourlyAverages holds the 2024 average UV index per (month, hour-of-day).
// Index 0 is midnight. Hours outside roughly 08:00-16:00 average to zero.
var uvHourlyAverages = map[time.Month][24]float64{
	time.January:   {0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 4, 6, 7, 6, 5, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.February:  {0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 8, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.March:     {0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 5, 7, 8, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.April:     {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.May:       {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 9, 7, 4, 1, 0, 0, 0, 0, 0, 0, 0},
	time.June:      {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 9, 7, 4, 1, 0, 0, 0, 0, 0, 0, 0},
	time.July:      {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.August:    {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.September: {0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 6, 8, 9, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.October:   {0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 5, 7, 8, 8, 5, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.November:  {0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 7, 6, 5, 3, 1, 0, 0, 0, 0, 0, 0, 0},
	time.December:  {0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 4, 6, 7, 6, 5, 3, 1, 0, 0, 0, 0, 0, 0, 0},
}
