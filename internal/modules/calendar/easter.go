// Package calendar — easter.go contains pure computus helpers.
package calendar

import (
	"errors"
	"time"
)

// The short-form Gauss congruence below is only exact inside this window.
const (
	MinYear = 1900
	MaxYear = 2099
)

var ErrYearOutOfRange = errors.New("calendar: year outside supported range 1900-2099")

// EasterSunday returns the date of Easter Sunday (UTC midnight) for the
// given year, computed with the Gauss congruence method.
func EasterSunday(year int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, ErrYearOutOfRange
	}

	a := year % 19
	b := year % 4
	c := year % 7
	d := (19*a + 24) % 30
	e := (2*b + 4*c + 6*d + 5) % 7
	f := d + e
	// the two exceptional lunar cases land a week early
	if f == 35 || (d == 28 && e == 6) {
		f -= 7
	}

	return time.Date(year, time.March, 22, 0, 0, 0, 0, time.UTC).AddDate(0, 0, f), nil
}

// FirstSaturdayOnOrAfter walks forward from the anchor date one day at a
// time until it lands on a Saturday.
func FirstSaturdayOnOrAfter(year int, month time.Month, day int) time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
