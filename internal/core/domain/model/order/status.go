package order

import (
	"fmt"
	"strings"

	"retail/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed ──> Delivered
//	   │            │              │
//	   ├──> Cancelled <────────────┘ (not from Completed)
//	   └──> Voided <── Processing, Completed
//
// Delivered, Cancelled and Voided are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order, whatever its channel.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Completed indicates the order is ready for hand-over.
	Completed

	// Delivered indicates the customer received the order. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before completion. Terminal.
	Cancelled

	// Voided indicates the order was annulled after work started. Terminal.
	Voided
)

// transitions is the complete edge list of the state machine.
// Statuses missing from the map have no outgoing edges.
var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled, Voided},
	Processing: {Completed, Cancelled, Voided},
	Completed:  {Delivered, Voided},
	Delivered:  {},
	Cancelled:  {},
	Voided:     {},
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Voided:     "VOIDED",
	}
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Completed, Delivered, Cancelled, Voided}
}

// ParseStatus converts a case-insensitive status name into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether target is a direct edge from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if (s, target) is an edge of the state machine.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, *errs.InvalidTransitionError) when s is terminal or the edge is missing
//   - (Unknown, *errs.ValueIsInvalidError) when target is not a valid status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), target.String(),
			fmt.Errorf("%s is a terminal status", s),
		)
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
