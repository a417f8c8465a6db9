package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var (
	ErrGetPartyPurchaseOrdersQueryIsNotConstructed = errors.New(
		"GetPartyPurchaseOrdersQuery must be created via NewGetPartyPurchaseOrdersQuery constructor",
	)
)

// GetPartyPurchaseOrdersQuery lists the identifiers of every order a party
// participates in, as buyer or as seller.
type GetPartyPurchaseOrdersQuery struct {
	party kernel.Party

	guard guard.ConstructorGuard
}

// NewGetPartyPurchaseOrdersQuery creates a query for a party's order ids.
func NewGetPartyPurchaseOrdersQuery(party kernel.Party) (GetPartyPurchaseOrdersQuery, error) {
	if err := party.Validate(); err != nil {
		return GetPartyPurchaseOrdersQuery{}, err
	}

	return GetPartyPurchaseOrdersQuery{
		party: party,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartyPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartyPurchaseOrdersQueryIsNotConstructed)
}

// Party returns the party whose orders are requested.
func (q GetPartyPurchaseOrdersQuery) Party() kernel.Party {
	return q.party
}
