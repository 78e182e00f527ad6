package response

import (
	"time"

	"coloring-api/internal/usecase"

	"github.com/jinzhu/copier"
)

type CodeBalanceResponse struct {
	Code            string `json:"code"`
	RemainingTokens int32  `json:"remainingTokens"`
}

type UsageResponse struct {
	FreeRemaining int32                 `json:"freeRemaining"`
	TokenBalance  int32                 `json:"tokenBalance"`
	WeekResetDate *time.Time            `json:"weekResetDate"`
	ActiveCode    *string               `json:"activeCode"`
	ActiveCodes   []CodeBalanceResponse `json:"activeCodes"`
}

func FromBalance(b *usecase.Balance) (*UsageResponse, error) {
	out := &UsageResponse{}
	if err := copier.Copy(out, b); err != nil {
		return nil, err
	}
	if out.ActiveCodes == nil {
		out.ActiveCodes = []CodeBalanceResponse{}
	}
	return out, nil
}

// FromFreeUsage renders the free-tier-only view with an empty token section.
func FromFreeUsage(u *usecase.FreeUsage) *UsageResponse {
	reset := u.WeekResetDate
	return &UsageResponse{
		FreeRemaining: u.FreeRemaining,
		WeekResetDate: &reset,
		ActiveCodes:   []CodeBalanceResponse{},
	}
}
