//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"coloring-api/internal/domain/device"
	"coloring-api/internal/domain/redemption"
	"coloring-api/internal/infra/memory"
	"coloring-api/internal/pkg/clock"
	"coloring-api/internal/usecase"
	"coloring-api/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

type ledgerFixture struct {
	store  *memory.Store
	clock  *clock.MockClock
	policy device.Policy
	ledger usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	store := memory.New()
	clk := clock.NewMockClock(baseTime)
	policy := device.DefaultPolicy()
	return &ledgerFixture{
		store:  store,
		clock:  clk,
		policy: policy,
		ledger: usecase.NewLedgerUseCase(store, clk, policy),
	}
}

// seedCode stores an active complimentary code, bound to fingerprint when it is non-empty.
func (f *ledgerFixture) seedCode(t *testing.T, tokens int32, fingerprint string) *redemption.RedemptionCode {
	t.Helper()
	code, err := redemption.Generate()
	require.NoError(t, err)
	rc, err := redemption.NewComplimentary(code, tokens, fingerprint, f.clock.Now())
	require.NoError(t, err)
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Codes().Create(ctx, rc)
	}))
	return rc
}

func (f *ledgerFixture) findCode(t *testing.T, code redemption.Code) *redemption.RedemptionCode {
	t.Helper()
	var rc *redemption.RedemptionCode
	require.NoError(t, f.store.WithDB(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		rc, err = tx.Codes().FindByCode(ctx, code)
		return err
	}))
	return rc
}

func (f *ledgerFixture) consumeN(t *testing.T, fingerprint string, codes []string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		res, err := f.ledger.Consume(context.Background(), fingerprint, codes, "a cat")
		require.NoError(t, err)
		require.True(t, res.Success)
	}
}

// mistype swaps the last symbol for a different alphabet symbol.
func mistype(code redemption.Code) string {
	s := code.String()
	last := s[len(s)-1]
	for i := 0; i < len(redemption.Alphabet); i++ {
		if redemption.Alphabet[i] != last {
			return s[:len(s)-1] + string(redemption.Alphabet[i])
		}
	}
	return s
}
