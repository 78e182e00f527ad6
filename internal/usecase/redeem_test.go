//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"

	"coloring-api/internal/domain/purchase"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("binds an unbound code to the redeeming device", func(t *testing.T) {
		f := newLedgerFixture()
		rc := f.seedCode(t, 10, "")
		uc := usecase.NewRedeemUseCase(f.store, f.ledger, f.clock)

		res, err := uc.Redeem(ctx, strings.ToLower(rc.Code.String()), "fp")
		require.NoError(t, err)

		assert.Equal(t, rc.Code.String(), res.Code)
		assert.Equal(t, int32(10), res.RemainingTokens)
		assert.Equal(t, int32(10), res.Usage.TokenBalance)

		stored := f.findCode(t, rc.Code)
		require.NotNil(t, stored.RedeemedByFingerprint)
		assert.Equal(t, "fp", *stored.RedeemedByFingerprint)

		// Bound codes count without the client presenting them.
		balance, err := f.ledger.GetBalance(ctx, "fp", nil)
		require.NoError(t, err)
		assert.Equal(t, int32(10), balance.TokenBalance)
	})

	t.Run("accepts the short spelling", func(t *testing.T) {
		f := newLedgerFixture()
		rc := f.seedCode(t, 3, "")
		uc := usecase.NewRedeemUseCase(f.store, f.ledger, f.clock)

		short := strings.ReplaceAll(strings.TrimPrefix(rc.Code.String(), redemption.Prefix+"-"), "-", "")
		res, err := uc.Redeem(ctx, short, "fp")
		require.NoError(t, err)
		assert.Equal(t, rc.Code.String(), res.Code)
	})

	t.Run("existing binding is kept", func(t *testing.T) {
		f := newLedgerFixture()
		rc := f.seedCode(t, 4, "fp-owner")
		uc := usecase.NewRedeemUseCase(f.store, f.ledger, f.clock)

		res, err := uc.Redeem(ctx, rc.Code.String(), "fp-other")
		require.NoError(t, err)
		assert.Equal(t, int32(4), res.Usage.TokenBalance)

		stored := f.findCode(t, rc.Code)
		assert.Equal(t, "fp-owner", *stored.RedeemedByFingerprint)
	})

	t.Run("errors", func(t *testing.T) {
		f := newLedgerFixture()
		uc := usecase.NewRedeemUseCase(f.store, f.ledger, f.clock)

		exhausted := f.seedCode(t, 1, "fp-spent")
		f.consumeN(t, "fp-spent", nil, 1)

		unknown, err := redemption.Generate()
		require.NoError(t, err)

		invalidated := seedInvalidatedCode(t, f)

		tests := []struct {
			name    string
			code    string
			wantErr error
		}{
			{name: "malformed", code: "COLOR-12", wantErr: errs.ErrInvalidCode},
			{name: "checksum typo", code: mistype(unknown), wantErr: errs.ErrInvalidCode},
			{name: "unknown code", code: unknown.String(), wantErr: errs.ErrCodeNotFound},
			{name: "exhausted code", code: exhausted.Code.String(), wantErr: errs.ErrCodeExhausted},
			{name: "invalidated code", code: invalidated.String(), wantErr: errs.ErrCodeNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Redeem(ctx, tt.code, "fp")
				assert.True(t, errs.Is(err, tt.wantErr))
			})
		}
	})
}

// seedInvalidatedCode stores a paid-for code whose purchase was fully refunded.
func seedInvalidatedCode(t *testing.T, f *ledgerFixture) redemption.Code {
	t.Helper()
	pack, err := purchase.NewCatalog(nil).Lookup("starter")
	require.NoError(t, err)
	code, err := redemption.Generate()
	require.NoError(t, err)

	now := f.clock.Now()
	p := purchase.NewPending(pack, now)
	rc, err := redemption.NewPending(code, pack.Tokens, p.ID, "", now)
	require.NoError(t, err)

	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Purchases().Create(ctx, p); err != nil {
			return err
		}
		if err := tx.Codes().Create(ctx, rc); err != nil {
			return err
		}
		if _, err := tx.Codes().ActivateForPurchase(ctx, p.ID, nil, now); err != nil {
			return err
		}
		_, err := tx.Codes().InvalidateForPurchase(ctx, p.ID, now)
		return err
	}))
	return code
}
