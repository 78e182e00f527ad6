package response

import (
	"time"

	"coloring-api/internal/usecase"

	"github.com/google/uuid"
)

type GeneratedImageResponse struct {
	ID        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	ImageData string    `json:"imageData"`
	CreatedAt time.Time `json:"createdAt"`
	Format    string    `json:"format"`
}

type GenerateResponse struct {
	Success bool                   `json:"success"`
	Image   GeneratedImageResponse `json:"image"`
	Usage   *UsageResponse         `json:"usage"`
}

func FromGenerateResult(r *usecase.GenerateResult) (*GenerateResponse, error) {
	usage, err := FromBalance(r.Usage)
	if err != nil {
		return nil, err
	}
	return &GenerateResponse{
		Success: true,
		Image: GeneratedImageResponse{
			ID:        r.Image.ID,
			Prompt:    r.Image.Prompt,
			ImageData: r.Image.ImageData,
			CreatedAt: r.Image.CreatedAt,
			Format:    string(r.Image.Format),
		},
		Usage: usage,
	}, nil
}

type RedeemResponse struct {
	Success         bool           `json:"success"`
	Code            string         `json:"code"`
	RemainingTokens int32          `json:"remainingTokens"`
	Usage           *UsageResponse `json:"usage"`
}

func FromRedeemResult(r *usecase.RedeemResult) (*RedeemResponse, error) {
	usage, err := FromBalance(r.Usage)
	if err != nil {
		return nil, err
	}
	return &RedeemResponse{
		Success:         true,
		Code:            r.Code,
		RemainingTokens: r.RemainingTokens,
		Usage:           usage,
	}, nil
}
