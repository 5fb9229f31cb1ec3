package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Processing ──┬──> Completed
//	             │
//	             └──> Canceled
//
// Completed and Canceled are terminal: no further transitions are allowed
// from either state.
//
// Status is a value object that validates state transitions and provides
// a display name for representations and a compact code for persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status of every order. Creation always
	// forces Processing regardless of what the client supplied.
	Processing

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed

	// Canceled indicates the order was canceled before fulfillment.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their display names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Canceled:   "CANCELED",
	}
}

// getStatusCodes returns a map of valid Status values to the 4-character
// codes stored in the database. Unknown is intentionally excluded: it must
// never be persisted.
func getStatusCodes() map[Status]string {
	return map[Status]string{
		Processing: "PROC",
		Completed:  "COMP",
		Canceled:   "CAN",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Processing, Completed, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status: "PROCESSING", "COMPLETED"
// or "CANCELED". Invalid values render as "UNKNOWN". Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Code returns the 4-character persistence code for the status
// ("PROC", "COMP", "CAN"). Invalid statuses return an empty string.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// StatusFromCode resolves a persistence code back to its Status.
// Returns an error for codes that do not correspond to a valid status,
// which indicates corrupted or foreign data in the status column.
func StatusFromCode(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status code",
		fmt.Errorf("%q is not a valid status code", code))
}

// ParseStatus resolves a display name ("PROCESSING", "COMPLETED",
// "CANCELED") to its Status. Used for statuses supplied in request payloads.
func ParseStatus(name string) (Status, error) {
	for s := range getStatusCodes() {
		if s.String() == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Processing -> Canceled
//
// Invalid transitions:
//   - Completed -> Canceled (terminal state)
//   - Canceled -> Canceled (terminal state)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, *errs.StatusTransitionError) naming the current status otherwise
func (s Status) Cancel() (Status, error) {
	if s != Processing {
		return 0, errs.NewStatusTransitionError("cancel", s.String())
	}
	return Canceled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
//
// Invalid transitions:
//   - Completed -> Completed (terminal state)
//   - Canceled -> Completed (terminal state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, *errs.StatusTransitionError) naming the current status otherwise
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewStatusTransitionError("complete", s.String())
	}
	return Completed, nil
}
