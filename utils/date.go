package utils

import (
	"fmt"
	"time"
)

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

var indonesianMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// FormatBookingDate renders a timestamp the way the ticket list shows it,
// e.g. "Senin, 2 Januari 2006 15:04".
func FormatBookingDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d %02d:%02d",
		indonesianDays[t.Weekday()], t.Day(), indonesianMonths[t.Month()], t.Year(),
		t.Hour(), t.Minute())
}
