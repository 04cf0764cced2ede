package models

import (
	"strings"
	"time"

	"github.com/ghuser/shareit/services/booking/domain"
)

// State filters booking lists relative to the current time or by status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var states = map[State]bool{
	StateAll: true, StateCurrent: true, StatePast: true,
	StateFuture: true, StateWaiting: true, StateRejected: true,
}

// ParseState reads a state filter case-insensitively. Empty means ALL.
func ParseState(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StateAll, nil
	}
	s := State(strings.ToUpper(raw))
	if !states[s] {
		return "", domain.ErrUnknownState
	}
	return s, nil
}

// Matches reports whether b belongs in the state's list at now.
// CURRENT is inclusive at both ends.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateCurrent:
		return !b.Start.After(now) && !b.End.Before(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}

// Ascending reports whether the state's list is ordered by start ascending.
// Only CURRENT is; every other list is newest start first.
func (s State) Ascending() bool {
	return s == StateCurrent
}
