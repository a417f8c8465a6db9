package kernel

import "fmt"

// amountScale is the number of implied decimal places in an Amount.
const amountScale = 10_000_000

// Amount is a signed fixed-point monetary value with 7 implied decimal places,
// matching the precision of the settlement asset. The value transferred on
// payment release is exactly the amount recorded at creation.
//
// Note: non-positive amounts are currently permitted. The workflow records and
// transfers whatever amount the buyer declared; rejecting zero or negative
// values would change the accepted input space.
type Amount int64

// NewAmount creates an Amount from its raw fixed-point representation
// (units of 10^-7).
func NewAmount(raw int64) Amount {
	return Amount(raw)
}

// Raw returns the fixed-point representation (units of 10^-7).
func (a Amount) Raw() int64 {
	return int64(a)
}

// GreaterThan reports whether a exceeds other.
func (a Amount) GreaterThan(other Amount) bool {
	return a > other
}

// String renders the amount with its 7 decimal places, e.g. "100.0000000".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = uint64(-(v + 1)) + 1
	}

	return fmt.Sprintf("%s%d.%07d", sign, u/amountScale, u%amountScale)
}
