//go:build unit || e2e

package builder

import (
	reqdto "coloring-api/internal/handler/dto/request"
)

type CheckoutBuilder struct {
	PackType    string
	Fingerprint string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		PackType: "family",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		PackType:    b.PackType,
		Fingerprint: b.Fingerprint,
	}
}
