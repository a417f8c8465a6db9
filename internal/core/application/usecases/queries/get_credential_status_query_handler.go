package queries

import (
	"context"

	"procurement/internal/core/ports"
)

// GetCredentialStatusQueryHandler answers credential status lookups by
// delegating to the configured credential gate.
type GetCredentialStatusQueryHandler struct {
	gate ports.CredentialGate
}

// NewGetCredentialStatusQueryHandler creates a handler for credential status lookups.
func NewGetCredentialStatusQueryHandler(gate ports.CredentialGate) GetCredentialStatusQueryHandler {
	return GetCredentialStatusQueryHandler{gate: gate}
}

// Handle reports whether the referenced credential currently verifies.
func (h GetCredentialStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCredentialStatusQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	return h.gate.Status(ctx, query.CredentialRef())
}
