package purchaseorder

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order. It implements a
// strict state machine: every transition method validates the current state and
// returns the successor status, or an InvalidStateTransition error without any
// side effect.
//
// State transitions:
//
//	Created ──> Accepted ──> Fulfilled ──> Paid
//	   │
//	   └──> Cancelled
//
// Disputed is part of the status set but has no transition in or out.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status entered only via order creation.
	// The order is waiting for the seller's acceptance or the buyer's cancellation.
	Created

	// Accepted indicates the seller has committed to the order.
	Accepted

	// Fulfilled indicates the seller has delivered; payment may now be released.
	Fulfilled

	// Paid indicates the value transfer completed. Terminal.
	Paid

	// Disputed is declared but unreachable: no operation transitions into or
	// out of it. It stays in the enumeration so the wire and storage encodings
	// remain stable for existing consumers.
	Disputed

	// Cancelled indicates the buyer withdrew the order before acceptance. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Accepted:  "Accepted",
		Fulfilled: "Fulfilled",
		Paid:      "Paid",
		Disputed:  "Disputed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Accepted:  "Accepted",
		Fulfilled: "Fulfilled",
		Paid:      "Paid",
		Disputed:  "Disputed",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is a member of the declared status set.
// Disputed is a valid member even though no transition reaches it.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on any
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Created -> Accepted
//
// Returns (0, InvalidStateTransition) from any other status.
func (s Status) Accept() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateTransitionError("accept", s.String())
	}
	return Accepted, nil
}

// Fulfill transitions the status to Fulfilled.
//
// Valid transitions:
//   - Accepted -> Fulfilled
//
// Returns (0, InvalidStateTransition) from any other status.
func (s Status) Fulfill() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateTransitionError("fulfill", s.String())
	}
	return Fulfilled, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Fulfilled -> Paid
//
// Returns (0, InvalidStateTransition) from any other status. Paid is terminal.
func (s Status) Pay() (Status, error) {
	if s != Fulfilled {
		return 0, errs.NewInvalidStateTransitionError("release payment", s.String())
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//
// An order that the seller already accepted can no longer be cancelled.
// Returns (0, InvalidStateTransition) from any other status. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidStateTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}
