// README: Time-of-day toll fee table with first-breakpoint-above lookup.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Breakpoint marks the clock time at which a new fee tier begins. The fee it
// carries applies to times BEFORE it, so the {6, 0, 0} entry keeps everything
// before 06:00 free of charge.
type Breakpoint struct {
	Hour   int
	Minute int
	Fee    int
}

// Schedule is an ordered, immutable breakpoint sequence shared read-only
// across calls.
type Schedule struct {
	breakpoints []Breakpoint
}

var ErrUnordered = errors.New("schedule: breakpoints must be strictly ascending")

// New builds a schedule from a custom table, rejecting tables that are not
// strictly ascending in (hour, minute).
func New(breakpoints []Breakpoint) (*Schedule, error) {
	for i := 1; i < len(breakpoints); i++ {
		prev, cur := breakpoints[i-1], breakpoints[i]
		if cur.Hour < prev.Hour || (cur.Hour == prev.Hour && cur.Minute <= prev.Minute) {
			return nil, fmt.Errorf("%w: %02d:%02d follows %02d:%02d",
				ErrUnordered, cur.Hour, cur.Minute, prev.Hour, prev.Minute)
		}
	}
	return &Schedule{breakpoints: append([]Breakpoint(nil), breakpoints...)}, nil
}

var defaultTable = []Breakpoint{
	{Hour: 6, Minute: 0, Fee: 0},
	{Hour: 6, Minute: 30, Fee: 8},
	{Hour: 7, Minute: 0, Fee: 13},
	{Hour: 8, Minute: 0, Fee: 18},
	{Hour: 8, Minute: 30, Fee: 13},
	{Hour: 15, Minute: 0, Fee: 8},
	{Hour: 15, Minute: 30, Fee: 13},
	{Hour: 17, Minute: 0, Fee: 18},
	{Hour: 18, Minute: 0, Fee: 13},
	{Hour: 18, Minute: 30, Fee: 8},
}

// Default returns the canonical Swedish urban toll table.
func Default() *Schedule {
	return &Schedule{breakpoints: defaultTable}
}

// FeeFor returns the toll in force at the given clock time: the fee of the
// first breakpoint strictly after (hour, minute). Times at or past the last
// breakpoint are free, as are times before the first tier opens.
func (s *Schedule) FeeFor(t time.Time) int {
	h, m := t.Hour(), t.Minute()
	for _, bp := range s.breakpoints {
		if bp.Hour > h || (bp.Hour == h && bp.Minute > m) {
			return bp.Fee
		}
	}
	return 0
}
