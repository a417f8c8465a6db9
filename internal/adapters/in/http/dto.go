package http

import "time"

// CreatePurchaseOrderRequest is the body of POST /api/v1/purchase-orders.
// Amounts are integers with seven implied decimal places.
type CreatePurchaseOrderRequest struct {
	Buyer         string `json:"buyer"`
	Seller        string `json:"seller"`
	BuyerLEI      string `json:"buyer_lei"`
	SellerLEI     string `json:"seller_lei"`
	BuyerVLEIAID  string `json:"buyer_vlei_aid"`
	SellerVLEIAID string `json:"seller_vlei_aid"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"`
	CredentialRef string `json:"credential_ref"`
	DeclaredLimit int64  `json:"declared_limit"`
}

// CreatePurchaseOrderResponse carries the identifier of the created order.
type CreatePurchaseOrderResponse struct {
	ID uint64 `json:"id"`
}

// AcceptPurchaseOrderRequest is the body of the accept operation.
type AcceptPurchaseOrderRequest struct {
	Seller string `json:"seller"`
}

// FulfillPurchaseOrderRequest is the body of the fulfill operation.
type FulfillPurchaseOrderRequest struct {
	Seller string `json:"seller"`
}

// ReleasePaymentRequest is the body of the release-payment operation.
type ReleasePaymentRequest struct {
	Buyer    string `json:"buyer"`
	AssetRef string `json:"asset_ref"`
}

// CancelPurchaseOrderRequest is the body of the cancel operation.
type CancelPurchaseOrderRequest struct {
	Buyer string `json:"buyer"`
}

// PurchaseOrderResponse is the read-side representation of an order.
type PurchaseOrderResponse struct {
	ID            uint64     `json:"id"`
	Buyer         string     `json:"buyer"`
	Seller        string     `json:"seller"`
	BuyerLEI      string     `json:"buyer_lei"`
	SellerLEI     string     `json:"seller_lei"`
	BuyerVLEIAID  string     `json:"buyer_vlei_aid"`
	SellerVLEIAID string     `json:"seller_vlei_aid"`
	Description   string     `json:"description"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	FulfilledAt   *time.Time `json:"fulfilled_at,omitempty"`
}

// PartyPurchaseOrdersResponse lists the order ids of one party.
type PartyPurchaseOrdersResponse struct {
	OrderIDs []uint64 `json:"order_ids"`
}

// CredentialStatusResponse reports whether a credential currently verifies.
type CredentialStatusResponse struct {
	CredentialRef string `json:"credential_ref"`
	Verified      bool   `json:"verified"`
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
