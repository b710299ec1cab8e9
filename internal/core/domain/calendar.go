package domain

import "time"

// MonthNames holds the Portuguese month names, indexed by time.Month.
var MonthNames = [13]string{
	"",
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the display name for a month.
func MonthName(month time.Month) string {
	return MonthNames[int(month)]
}

// Sundays returns every Sunday of the given year in increasing order.
// The first element is the first Sunday on or after January 1st, the last
// one is the last Sunday of December. A year always has 52 or 53 Sundays.
func Sundays(year int) []time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := (7 - int(d.Weekday())) % 7
	d = d.AddDate(0, 0, offset)

	sundays := make([]time.Time, 0, 53)
	for d.Year() == year {
		sundays = append(sundays, d)
		d = d.AddDate(0, 0, 7)
	}
	return sundays
}

// SundaysInMonth returns the Sundays of one month of the given year.
func SundaysInMonth(year int, month time.Month) []time.Time {
	var sundays []time.Time
	for _, d := range Sundays(year) {
		if d.Month() == month {
			sundays = append(sundays, d)
		}
	}
	return sundays
}

// IsSundayOf reports whether the date is a Sunday belonging to the year.
func IsSundayOf(date time.Time, year int) bool {
	return date.Year() == year && date.Weekday() == time.Sunday
}
