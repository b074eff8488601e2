// README: Toll-free date tests (weekends, fixed and moveable holidays, cache races).
package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsTollFreeDate_Weekends(t *testing.T) {
	svc := NewService()

	// every Saturday and Sunday of 2024
	d := date(2024, time.January, 1)
	for d.Year() == 2024 {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			free, err := svc.IsTollFreeDate(d)
			require.NoError(t, err)
			assert.True(t, free, "%s should be toll-free", d.Format("2006-01-02 Mon"))
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestIsTollFreeDate_Holidays2024(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name string
		day  time.Time
		free bool
	}{
		{"New Year's Day", date(2024, time.January, 1), true},
		{"Epiphany", date(2024, time.January, 6), true},
		{"Good Friday", date(2024, time.March, 29), true},
		{"Easter Monday", date(2024, time.April, 1), true},
		{"May Day", date(2024, time.May, 1), true},
		{"Ascension Day", date(2024, time.May, 9), true},
		{"National Day", date(2024, time.June, 6), true},
		{"Midsummer Eve", date(2024, time.June, 21), true},
		{"Midsummer Day", date(2024, time.June, 22), true},
		{"All Hallows' Day", date(2024, time.November, 2), true},
		{"Christmas Eve", date(2024, time.December, 24), true},
		{"Christmas Day", date(2024, time.December, 25), true},
		{"Boxing Day", date(2024, time.December, 26), true},
		{"New Year's Eve", date(2024, time.December, 31), true},
		{"Maundy Thursday is chargeable", date(2024, time.March, 28), false},
		{"ordinary Monday", date(2024, time.March, 4), false},
		{"ordinary Tuesday in July", date(2024, time.July, 2), false},
		{"day after Epiphany", date(2025, time.January, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := svc.IsTollFreeDate(tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.free, free)
		})
	}
}

func TestIsTollFreeDate_OutOfRangeYear(t *testing.T) {
	svc := NewService()

	// weekday lookups need the computus and must surface the range error
	_, err := svc.IsTollFreeDate(date(2150, time.January, 5)) // a Monday
	assert.ErrorIs(t, err, ErrYearOutOfRange)

	// weekends never consult the holiday table
	free, err := svc.IsTollFreeDate(date(2150, time.January, 3)) // a Saturday
	require.NoError(t, err)
	assert.True(t, free)
}

func TestHolidaysForYear(t *testing.T) {
	svc := NewService()

	holidays, err := svc.HolidaysForYear(2024)
	require.NoError(t, err)
	require.Len(t, holidays, 18)

	byName := make(map[string]time.Time, len(holidays))
	for _, h := range holidays {
		assert.Equal(t, 2024, h.Date.Year(), "%s in wrong year", h.Name)
		byName[h.Name] = h.Date
	}
	assert.True(t, byName["Easter Sunday"].Equal(date(2024, time.March, 31)))
	assert.True(t, byName["Pentecost"].Equal(date(2024, time.May, 19)))
	assert.True(t, byName["Midsummer Day"].Equal(date(2024, time.June, 22)))

	_, err = svc.HolidaysForYear(1850)
	assert.ErrorIs(t, err, ErrYearOutOfRange)
}

// TestHolidaysForYear_Concurrent hammers the per-year cache from many
// goroutines; run with -race.
func TestHolidaysForYear_Concurrent(t *testing.T) {
	svc := NewService()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		year := 2000 + i%8
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if _, err := svc.HolidaysForYear(year); err != nil {
					return err
				}
				if _, err := svc.IsTollFreeDate(date(year, time.March, 3)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
