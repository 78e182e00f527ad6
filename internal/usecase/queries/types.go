package queries

import (
	"github.com/google/uuid"
)

// PurchaseReceiptView backs the post-checkout success page
type PurchaseReceiptView struct {
	PurchaseID     uuid.UUID `json:"purchase_id"`
	PurchaseStatus string    `json:"purchase_status"`
	PackType       string    `json:"pack_type"`
	Code           string    `json:"code"`
	Tokens         int32     `json:"tokens"`
	CodeStatus     string    `json:"code_status"`
}
