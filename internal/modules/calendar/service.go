// README: Calendar service decides Swedish toll-free dates with a per-year cache.
package calendar

import (
	"sync"
	"time"
)

// Holiday is one named toll-free day in a year's calendar.
type Holiday struct {
	Name string
	Date time.Time
}

type Service struct {
	mu    sync.RWMutex
	years map[int][]Holiday
}

func NewService() *Service {
	return &Service{years: make(map[int][]Holiday)}
}

// IsTollFreeDate reports whether no toll is charged on the given date:
// every Saturday and Sunday, plus the Swedish public holidays. It fails
// only when a holiday lookup needs a year outside the computus range.
func (s *Service) IsTollFreeDate(date time.Time) (bool, error) {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true, nil
	}
	holidays, err := s.HolidaysForYear(date.Year())
	if err != nil {
		return false, err
	}
	for _, h := range holidays {
		if sameDate(h.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

// HolidaysForYear returns the year's toll-free public holidays. Each year
// is computed once and cached.
func (s *Service) HolidaysForYear(year int) ([]Holiday, error) {
	s.mu.RLock()
	cached, ok := s.years[year]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	holidays, err := buildYear(year)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// a concurrent caller may have filled the slot already; both computed
	// the same pure result, so last write wins
	s.years[year] = holidays
	s.mu.Unlock()
	return holidays, nil
}

func buildYear(year int) ([]Holiday, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}
	midsummerDay := FirstSaturdayOnOrAfter(year, time.June, 20)

	fixed := func(name string, month time.Month, day int) Holiday {
		return Holiday{Name: name, Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
	}
	easterRelative := func(name string, days int) Holiday {
		return Holiday{Name: name, Date: easter.AddDate(0, 0, days)}
	}

	return []Holiday{
		fixed("New Year's Day", time.January, 1),
		fixed("Epiphany", time.January, 6),
		easterRelative("Good Friday", -2),
		easterRelative("Holy Saturday", -1),
		easterRelative("Easter Sunday", 0),
		easterRelative("Easter Monday", 1),
		fixed("May Day", time.May, 1),
		easterRelative("Ascension Day", 39),
		easterRelative("Pentecost Eve", 48),
		easterRelative("Pentecost", 49),
		fixed("National Day", time.June, 6),
		{Name: "Midsummer Eve", Date: midsummerDay.AddDate(0, 0, -1)},
		{Name: "Midsummer Day", Date: midsummerDay},
		{Name: "All Hallows' Day", Date: FirstSaturdayOnOrAfter(year, time.October, 31)},
		fixed("Christmas Eve", time.December, 24),
		fixed("Christmas Day", time.December, 25),
		fixed("Boxing Day", time.December, 26),
		fixed("New Year's Eve", time.December, 31),
	}, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
