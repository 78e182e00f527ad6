package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Redemption code errors
	ErrCodeNotFound  = errors.New("redemption code not found")
	ErrInvalidCode   = errors.New("invalid redemption code")
	ErrCodeExhausted = errors.New("redemption code has no remaining tokens")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Purchase errors
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrInvalidPackType     = errors.New("invalid pack type")
	ErrCheckoutUnavailable = errors.New("checkout unavailable")

	// Webhook errors
	ErrMissingSignature     = errors.New("missing webhook signature")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")

	// Generation errors
	ErrGenerationFailed  = errors.New("image generation failed")
	ErrGenerationTimeout = errors.New("image generation timed out")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
