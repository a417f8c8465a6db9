package queries

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrGetCredentialStatusQueryIsNotConstructed = errors.New(
		"GetCredentialStatusQuery must be created via NewGetCredentialStatusQuery constructor",
	)
)

// GetCredentialStatusQuery asks whether a credential reference currently
// verifies. It consults the gate directly and touches no order state.
type GetCredentialStatusQuery struct {
	credentialRef string

	guard guard.ConstructorGuard
}

// NewGetCredentialStatusQuery creates a query for a credential's status.
func NewGetCredentialStatusQuery(credentialRef string) (GetCredentialStatusQuery, error) {
	if credentialRef == "" {
		return GetCredentialStatusQuery{}, errs.NewValueIsRequiredError("credential reference")
	}

	return GetCredentialStatusQuery{
		credentialRef: credentialRef,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCredentialStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCredentialStatusQueryIsNotConstructed)
}

// CredentialRef returns the credential reference under inspection.
func (q GetCredentialStatusQuery) CredentialRef() string {
	return q.credentialRef
}
