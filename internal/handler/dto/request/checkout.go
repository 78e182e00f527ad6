package request

import "coloring-api/internal/usecase"

type CheckoutRequest struct {
	PackType    string `json:"packType" binding:"required"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

func (r CheckoutRequest) ToUseCase(fingerprint, returnBaseURL string) usecase.CheckoutRequest {
	return usecase.CheckoutRequest{
		PackType:      r.PackType,
		Fingerprint:   fingerprint,
		ReturnBaseURL: returnBaseURL,
	}
}
