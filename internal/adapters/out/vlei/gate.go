// Package vlei implements the credential gate. This implementation performs
// the syntactic checks the workflow depends on: the declared spending limit
// admits the amount, and the credential reference and holder identifier are
// present. Cryptographic verification of the credential chain belongs to an
// external verifier substituted behind the same port.
package vlei

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// Gate is the in-tree CredentialGate implementation.
type Gate struct{}

// NewGate creates a credential gate.
func NewGate() *Gate {
	return &Gate{}
}

// Check validates the presented credential against the requested amount.
// The limit comparison runs first: an over-limit request is reported as such
// even when the credential itself is malformed.
func (g *Gate) Check(
	_ context.Context,
	credentialRef string,
	declaredLimit, amount kernel.Amount,
	aid string,
) error {
	if amount.GreaterThan(declaredLimit) {
		return errs.NewLimitExceededError(amount.String(), declaredLimit.String())
	}

	if credentialRef == "" {
		return errs.NewInvalidCredentialError("credential SAID")
	}

	if aid == "" {
		return errs.NewInvalidCredentialError("holder AID")
	}

	return nil
}

// Status reports whether the credential reference verifies. With only
// syntactic checks available, any non-empty reference does.
func (g *Gate) Status(_ context.Context, credentialRef string) (bool, error) {
	return credentialRef != "", nil
}
