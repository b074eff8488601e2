// README: Public surface of the vagtull daily road-toll library.
package vagtull

import (
	"context"
	"time"

	"vagtull/internal/modules/calendar"
	"vagtull/internal/modules/schedule"
	"vagtull/internal/modules/toll"
)

// Aliases so callers never need to reach into internal packages.
type (
	VehicleType = toll.VehicleType
	Charge      = toll.Charge
	Detail      = toll.Detail
	Option      = toll.Option
	Breakpoint  = schedule.Breakpoint
	Holiday     = calendar.Holiday
)

const (
	VehicleCar       = toll.VehicleCar
	VehicleMotorbike = toll.VehicleMotorbike
	VehicleTractor   = toll.VehicleTractor
	VehicleEmergency = toll.VehicleEmergency
	VehicleDiesel    = toll.VehicleDiesel
	VehicleForeign   = toll.VehicleForeign
	VehicleMilitary  = toll.VehicleMilitary

	DefaultDailyCap = toll.DefaultDailyCap
)

var (
	ErrNoPasses       = toll.ErrNoPasses
	ErrCrossDay       = toll.ErrCrossDay
	ErrUnsorted       = toll.ErrUnsorted
	ErrDuplicatePass  = toll.ErrDuplicatePass
	ErrUnknownVehicle = toll.ErrUnknownVehicle
	ErrYearOutOfRange = calendar.ErrYearOutOfRange

	WithDailyCap = toll.WithDailyCap
	WithLogger   = toll.WithLogger
)

// EasterSunday returns the date of Easter Sunday for a year in [1900, 2099].
func EasterSunday(year int) (time.Time, error) {
	return calendar.EasterSunday(year)
}

// Calculator bundles the holiday calendar, the canonical fee schedule, and
// the daily aggregation service behind one constructor.
type Calculator struct {
	cal   *calendar.Service
	sched *schedule.Schedule
	toll  *toll.Service
}

func New(opts ...Option) *Calculator {
	cal := calendar.NewService()
	sched := schedule.Default()
	return &Calculator{
		cal:   cal,
		sched: sched,
		toll:  toll.NewService(cal, sched, opts...),
	}
}

// DailyToll returns the capped total charge for one vehicle's gate passes on
// a single calendar day.
func (c *Calculator) DailyToll(ctx context.Context, vehicle VehicleType, passes []time.Time) (int, error) {
	return c.toll.DailyToll(ctx, vehicle, passes)
}

// DailyTollDetail is DailyToll plus a per-pass breakdown.
func (c *Calculator) DailyTollDetail(ctx context.Context, vehicle VehicleType, passes []time.Time) (Detail, error) {
	return c.toll.DailyTollDetail(ctx, vehicle, passes)
}

// IsTollFreeDate reports whether the date is a weekend or Swedish public
// holiday on which no toll is charged.
func (c *Calculator) IsTollFreeDate(date time.Time) (bool, error) {
	return c.cal.IsTollFreeDate(date)
}

// HolidaysForYear returns the year's toll-free public holidays.
func (c *Calculator) HolidaysForYear(year int) ([]Holiday, error) {
	return c.cal.HolidaysForYear(year)
}

// FeeFor returns the instantaneous toll at the given clock time under the
// canonical schedule.
func (c *Calculator) FeeFor(t time.Time) int {
	return c.sched.FeeFor(t)
}
