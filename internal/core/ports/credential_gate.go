package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// CredentialGate validates, at order creation only, that the buyer's presented
// spending credential admits the requested amount. The gate is a pluggable
// capability: the in-tree implementation performs only syntactic checks, and a
// production deployment substitutes a verifier that checks the credential's
// signature, issuer chain, expiry and revocation without touching callers or
// the state machine.
type CredentialGate interface {
	// Check fails with a LimitExceeded error if amount exceeds declaredLimit
	// (checked first), and with an InvalidCredential error if credentialRef or
	// aid is empty. On success it returns normally; the caller records the
	// credential_verified notification.
	Check(ctx context.Context, credentialRef string, declaredLimit, amount kernel.Amount, aid string) error

	// Status reports whether a credential reference currently verifies.
	Status(ctx context.Context, credentialRef string) (bool, error)
}
