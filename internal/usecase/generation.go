package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPromptLength = 200

var (
	ErrPromptRequired     = errs.Mark(errs.New("prompt is required"), errs.ErrDomainValidation)
	ErrPromptTooLong      = errs.Mark(errs.New("prompt must be 200 characters or less"), errs.ErrDomainValidation)
	ErrSourceImageMissing = errs.Mark(errs.New("source image is required in edit mode"), errs.ErrDomainValidation)
)

type GenerateRequest struct {
	Fingerprint     string
	Codes           []string
	Prompt          string
	KidFriendly     bool
	Format          ImageFormat
	EditMode        bool
	SourceImageData string
	SourcePrompt    string
}

type GeneratedPage struct {
	ID        uuid.UUID
	Prompt    string
	// Base64 image bytes without a data URL prefix
	ImageData string
	CreatedAt time.Time
	Format    ImageFormat
}

type GenerateResult struct {
	Image GeneratedPage
	Usage *Balance
}

type GenerationUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type generationUseCaseImpl struct {
	ledger    LedgerUseCase
	generator ImageGenerator
	reporter  ErrorReporter
	clock     clock.Clock
	timeout   time.Duration
}

func NewGenerationUseCase(ledger LedgerUseCase, generator ImageGenerator, reporter ErrorReporter, clk clock.Clock, timeout time.Duration) GenerationUseCase {
	return &generationUseCaseImpl{
		ledger:    ledger,
		generator: generator,
		reporter:  reporter,
		clock:     clk,
		timeout:   timeout,
	}
}

// Generate checks the balance, calls the generator without holding any reservation,
// then consumes one unit. Consumption failures after a successful generation are
// reported but never surfaced to the caller.
func (uc *generationUseCaseImpl) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	prompt, err := ValidatePrompt(req.Prompt)
	if err != nil {
		return nil, err
	}
	if req.EditMode && strings.TrimSpace(req.SourceImageData) == "" {
		return nil, ErrSourceImageMissing
	}

	balance, err := uc.ledger.GetBalance(ctx, req.Fingerprint, req.Codes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !balance.CanGenerate() {
		return nil, errs.ErrInsufficientBalance
	}

	format := req.Format
	if format == "" {
		format = FormatPortrait
	}

	image, err := uc.generate(ctx, ImageRequest{
		Prompt:          prompt,
		KidFriendly:     req.KidFriendly,
		Format:          format,
		EditMode:        req.EditMode,
		SourceImageData: req.SourceImageData,
		SourcePrompt:    req.SourcePrompt,
	})
	if err != nil {
		return nil, err
	}

	uc.consume(ctx, req.Fingerprint, req.Codes, prompt)

	usage, err := uc.ledger.GetBalance(ctx, req.Fingerprint, req.Codes)
	if err != nil {
		slog.WarnContext(ctx, "failed to refresh balance after generation", "error", err.Error())
		usage = balance
	}

	display := prompt
	if req.EditMode && strings.TrimSpace(req.SourcePrompt) != "" {
		display = strings.TrimSpace(req.SourcePrompt) + " (edited: " + prompt + ")"
	}

	return &GenerateResult{
		Image: GeneratedPage{
			ID:        uuid.New(),
			Prompt:    display,
			ImageData: image.Data,
			CreatedAt: uc.clock.Now(),
			Format:    format,
		},
		Usage: usage,
	}, nil
}

func (uc *generationUseCaseImpl) generate(ctx context.Context, req ImageRequest) (*GeneratedImage, error) {
	genCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	image, err := uc.generator.Generate(genCtx, req)
	if err == nil {
		return image, nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(genCtx.Err(), context.DeadlineExceeded) {
		slog.WarnContext(ctx, "image generation timed out", "timeout", uc.timeout.String())
		return nil, errs.Mark(err, errs.ErrGenerationTimeout)
	}
	slog.ErrorContext(ctx, "image generation failed", "error", err.Error())
	return nil, errs.Mark(err, errs.ErrGenerationFailed)
}

func (uc *generationUseCaseImpl) consume(ctx context.Context, fingerprint string, codes []string, prompt string) {
	// The image is already produced; a cancelled request must not skip the bookkeeping.
	ctx = context.WithoutCancel(ctx)

	result, err := uc.ledger.Consume(ctx, fingerprint, codes, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "usage consumption failed after successful generation",
			"fingerprint", fingerprint,
			"error", err.Error())
		uc.reporter.CaptureException(ctx, errs.Wrap(err, "consume after generation"))
		return
	}
	if !result.Success {
		slog.WarnContext(ctx, "balance exhausted between check and consume",
			"fingerprint", fingerprint)
		uc.reporter.CaptureException(ctx, errs.New("generation delivered without consumable balance"))
	}
}

// ValidatePrompt trims and bounds the prompt by character count.
func ValidatePrompt(raw string) (string, error) {
	prompt := strings.TrimSpace(raw)
	if prompt == "" {
		return "", ErrPromptRequired
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return "", ErrPromptTooLong
	}
	return prompt, nil
}
