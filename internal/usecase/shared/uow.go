package shared

import (
	"context"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statements using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Devices() DeviceRepository
	Codes() RedemptionCodeRepository
	Purchases() PurchaseRepository
	Generations() GenerationRepository
	PaymentEvents() PaymentEventRepository
}
