package kernel

import (
	"strconv"

	"procurement/internal/pkg/errs"
)

// OrderID is the unique identifier of a purchase order. Identifiers are
// allocated from a single persisted counter, start at 1 and strictly increase;
// zero is never a valid identifier and marks an unassigned value.
type OrderID uint64

// Validate reports whether the identifier was assigned by the allocator.
func (id OrderID) Validate() error {
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	return nil
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseOrderID parses a decimal order identifier, rejecting zero.
func ParseOrderID(s string) (OrderID, error) {
	raw, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	id := OrderID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}
