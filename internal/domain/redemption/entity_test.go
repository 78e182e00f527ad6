//go:build unit

package redemption_test

import (
	"testing"
	"time"

	"coloring-api/internal/domain/redemption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionCode(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending code is pre-bound but not usable", func(t *testing.T) {
		rc, err := redemption.NewPending("COLOR-ABCD-2345", 50, uuid.New(), "fp-1", now)
		require.NoError(t, err)

		assert.Equal(t, redemption.StatusPending, rc.Status)
		assert.True(t, rc.IsBound())
		assert.Nil(t, rc.RedeemedAt)
		assert.False(t, rc.IsUsable())
	})

	t.Run("complimentary code is active", func(t *testing.T) {
		rc, err := redemption.NewComplimentary("COLOR-ABCD-2345", 5, "", now)
		require.NoError(t, err)

		assert.True(t, rc.IsUsable())
		assert.False(t, rc.IsBound())
		assert.Nil(t, rc.PurchaseID)
	})

	t.Run("invalidated active code is not usable", func(t *testing.T) {
		rc, err := redemption.NewComplimentary("COLOR-ABCD-2345", 5, "", now)
		require.NoError(t, err)
		rc.InvalidatedAt = &now

		assert.Equal(t, redemption.StatusActive, rc.Status)
		assert.False(t, rc.IsRedeemable())
		assert.False(t, rc.IsUsable())
	})

	t.Run("non-positive token count", func(t *testing.T) {
		_, err := redemption.NewPending("COLOR-ABCD-2345", 0, uuid.New(), "", now)
		assert.ErrorIs(t, err, redemption.ErrInvalidTokenCount)
	})
}
