// README: Daily toll aggregation with rolling-hour grouping and cap clamping.
package toll

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"vagtull/internal/modules/calendar"
	"vagtull/internal/modules/schedule"
)

// DefaultDailyCap is the most a single vehicle pays per day.
const DefaultDailyCap = 120

var (
	ErrNoPasses       = errors.New("toll: no gate passes supplied")
	ErrCrossDay       = errors.New("toll: gate passes span more than one calendar day")
	ErrUnsorted       = errors.New("toll: gate passes must be strictly ascending")
	ErrDuplicatePass  = errors.New("toll: duplicate gate pass timestamp")
	ErrUnknownVehicle = errors.New("toll: unknown vehicle classification")
)

type Service struct {
	calendar *calendar.Service
	schedule *schedule.Schedule
	dailyCap int
	log      *zap.Logger
}

type Option func(*Service)

// WithDailyCap overrides the per-day maximum charge.
func WithDailyCap(cap int) Option {
	return func(s *Service) { s.dailyCap = cap }
}

// WithLogger attaches a logger; without one the service is silent.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(cal *calendar.Service, sched *schedule.Schedule, opts ...Option) *Service {
	s := &Service{
		calendar: cal,
		schedule: sched,
		dailyCap: DefaultDailyCap,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyToll returns the total charge for one vehicle's gate passes on a
// single calendar day.
func (s *Service) DailyToll(ctx context.Context, vehicle VehicleType, passes []time.Time) (int, error) {
	detail, err := s.DailyTollDetail(ctx, vehicle, passes)
	if err != nil {
		return 0, err
	}
	return detail.Total, nil
}

// DailyTollDetail is DailyToll plus a per-pass breakdown.
//
// Passes are grouped into rolling one-hour windows: the first chargeable
// pass opens a window and is billed in full, a strictly higher fee inside
// the window upgrades the group's charge by the difference and restarts the
// one-hour clock at its own timestamp, and equal-or-lower fees inside the
// window are free. Zero-fee passes never open or disturb a window.
func (s *Service) DailyTollDetail(ctx context.Context, vehicle VehicleType, passes []time.Time) (Detail, error) {
	if err := validatePasses(passes); err != nil {
		return Detail{}, err
	}
	if !vehicle.Known() {
		return Detail{}, ErrUnknownVehicle
	}
	if vehicle.Exempt() {
		s.log.Debug("vehicle exempt", zap.String("vehicle", string(vehicle)))
		return Detail{}, nil
	}
	free, err := s.calendar.IsTollFreeDate(passes[0])
	if err != nil {
		return Detail{}, err
	}
	if free {
		s.log.Debug("toll-free date", zap.Time("date", passes[0]))
		return Detail{}, nil
	}

	var (
		detail   Detail
		havePrev bool
		prevFee  int
		prevTime time.Time
	)
	for _, at := range passes {
		fee := s.schedule.FeeFor(at)
		charge := Charge{Time: at, Fee: fee}

		switch {
		case fee == 0:
			// free period, hourly window untouched
		case !havePrev || at.Sub(prevTime) > time.Hour:
			charge.Charged = fee
			havePrev, prevFee, prevTime = true, fee, at
		case fee > prevFee:
			// upgrade the hour's charge and restart the window here
			charge.Charged = fee - prevFee
			prevFee, prevTime = fee, at
		}

		detail.Total += charge.Charged
		detail.Charges = append(detail.Charges, charge)
		s.log.Debug("gate pass",
			zap.Time("at", at),
			zap.Int("fee", fee),
			zap.Int("charged", charge.Charged),
			zap.Int("total", detail.Total))

		if detail.Total >= s.dailyCap {
			detail.Total = s.dailyCap
			detail.Capped = true
			return detail, nil
		}
	}
	return detail, nil
}

func validatePasses(passes []time.Time) error {
	if len(passes) == 0 {
		return ErrNoPasses
	}
	first := passes[0]
	for i := 1; i < len(passes); i++ {
		prev, cur := passes[i-1], passes[i]
		if cur.Equal(prev) {
			return ErrDuplicatePass
		}
		if cur.Before(prev) {
			return ErrUnsorted
		}
		if cur.Year() != first.Year() || cur.Month() != first.Month() || cur.Day() != first.Day() {
			return ErrCrossDay
		}
	}
	return nil
}
