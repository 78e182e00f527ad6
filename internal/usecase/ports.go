package usecase

import (
	"context"
	"time"

	"coloring-api/internal/domain/purchase"

	"github.com/google/uuid"
)

type ImageFormat string

const (
	FormatPortrait  ImageFormat = "portrait"
	FormatLandscape ImageFormat = "landscape"
)

func ParseImageFormat(s string) ImageFormat {
	if ImageFormat(s) == FormatLandscape {
		return FormatLandscape
	}
	return FormatPortrait
}

type ImageRequest struct {
	Prompt          string
	KidFriendly     bool
	Format          ImageFormat
	EditMode        bool
	SourceImageData string
	SourcePrompt    string
}

type GeneratedImage struct {
	MimeType string
	// Base64-encoded image bytes
	Data string
}

// ImageGenerator is the external text-to-image collaborator.
type ImageGenerator interface {
	Generate(ctx context.Context, req ImageRequest) (*GeneratedImage, error)
}

type CheckoutSessionRequest struct {
	PurchaseID  uuid.UUID
	Pack        purchase.Pack
	Code        string
	Fingerprint string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutGateway opens hosted checkout sessions with the payment processor.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
}

// PaymentEventVerifier authenticates a raw webhook delivery and reduces it to a PaymentEvent.
type PaymentEventVerifier interface {
	Verify(payload []byte, signature string) (*PaymentEvent, error)
}

// ErrorReporter forwards failures that are swallowed on the request path.
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error)
}

type PaymentEventType string

const (
	EventCheckoutCompleted PaymentEventType = "checkout.session.completed"
	EventCheckoutExpired   PaymentEventType = "checkout.session.expired"
	EventChargeRefunded    PaymentEventType = "charge.refunded"
)

// PaymentEvent is a verified processor event reduced to the fields the ledger needs.
type PaymentEvent struct {
	ID                  string
	Type                PaymentEventType
	SessionID           string
	PurchaseID          *uuid.UUID
	PaymentIntentID     string
	Email               string
	RefundedAmountCents int32
	CreatedAt           time.Time
}
