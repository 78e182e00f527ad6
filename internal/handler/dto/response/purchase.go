package response

import (
	"time"

	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	CheckoutURL string    `json:"checkoutUrl"`
	Code        string    `json:"code"`
	PurchaseID  uuid.UUID `json:"purchaseId"`
	SessionID   string    `json:"sessionId"`
}

func FromCheckoutResult(r *usecase.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL: r.CheckoutURL,
		Code:        r.Code,
		PurchaseID:  r.PurchaseID,
		SessionID:   r.SessionID,
	}
}

type ReceiptResponse struct {
	PurchaseID     uuid.UUID `json:"purchaseId"`
	PurchaseStatus string    `json:"purchaseStatus"`
	PackType       string    `json:"packType"`
	Code           string    `json:"code"`
	Tokens         int32     `json:"tokens"`
	CodeStatus     string    `json:"codeStatus"`
}

func FromReceiptView(v *queries.PurchaseReceiptView) (*ReceiptResponse, error) {
	out := &ReceiptResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	return out, nil
}

type CodeDetailsResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Code                  string     `json:"code"`
	InitialTokens         int32      `json:"initialTokens"`
	RemainingTokens       int32      `json:"remainingTokens"`
	Status                string     `json:"status"`
	Invalidated           bool       `json:"invalidated"`
	PurchaseID            *uuid.UUID `json:"purchaseId,omitempty"`
	RedeemedByFingerprint *string    `json:"redeemedByFingerprint,omitempty"`
	RedeemedAt            *time.Time `json:"redeemedAt,omitempty"`
	InvalidatedAt         *time.Time `json:"invalidatedAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

func FromCodeDetails(d *usecase.CodeDetails) (*CodeDetailsResponse, error) {
	out := &CodeDetailsResponse{}
	if err := copier.Copy(out, d); err != nil {
		return nil, err
	}
	return out, nil
}
