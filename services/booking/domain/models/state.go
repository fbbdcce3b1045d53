package models

import (
	"strings"

	domain "github.com/ghuser/shareit/services/booking/domain"
)

// StateFilter is one of the six mutually exclusive temporal/status categories
// a booking query can select on.
type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT" // start <= now <= end
	StatePast     StateFilter = "PAST"    // end < now
	StateFuture   StateFilter = "FUTURE"  // start > now
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

// ParseStateFilter maps the state query parameter to a StateFilter.
// Empty input defaults to ALL; anything else unknown is ErrUnsupportedState.
func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return StateAll, nil
	}
	switch f := StateFilter(strings.ToUpper(s)); f {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return f, nil
	default:
		return "", domain.ErrUnsupportedState
	}
}
