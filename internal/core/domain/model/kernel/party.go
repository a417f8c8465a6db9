package kernel

import "procurement/internal/pkg/errs"

// Party is the proven identity of a workflow participant (buyer or seller).
// The address format is opaque to this core; the only structural requirement is
// that it is non-empty, since an empty identity could never pass an
// authorization check.
//
// The zero value is invalid; construct parties via NewParty.
type Party struct {
	address string
}

// NewParty creates a Party from its address string.
func NewParty(address string) (Party, error) {
	if address == "" {
		return Party{}, errs.NewValueIsRequiredError("party address")
	}
	return Party{address: address}, nil
}

// Validate reports whether the party was constructed via NewParty.
func (p Party) Validate() error {
	if p.address == "" {
		return errs.NewValueIsRequiredError("party address")
	}
	return nil
}

// String returns the party's address.
func (p Party) String() string {
	return p.address
}

// IsEqual compares two parties by address.
func (p Party) IsEqual(other Party) bool {
	return p.address == other.address
}
