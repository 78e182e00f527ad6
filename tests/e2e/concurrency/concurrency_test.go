//go:build e2e

package concurrency_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"coloring-api/internal/handler/middleware"
	"coloring-api/tests/common/builder"
	"coloring-api/tests/common/dbtest"
	"coloring-api/tests/common/httptest"
	"coloring-api/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const generateURL = "/api/generate"

type ConcurrencySuite struct {
	e2e.SharedSuite
}

func TestConcurrencySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ConcurrencySuite))
}

// burst fires n generate requests at once and returns their status codes.
func (s *ConcurrencySuite) burst(n int, fp string, codes ...string) []int {
	t := s.T()
	dto := builder.NewGenerateBuilder().WithCodes(codes...).BuildDTO()
	headers := map[string]string{middleware.FingerprintHeader: fp}

	statuses := make([]int, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, generateURL, dto, headers)
			statuses[i] = w.Code
		}(i)
	}
	close(start)
	wg.Wait()
	return statuses
}

func assertOnly(t *testing.T, statuses []int, allowed ...int) {
	t.Helper()
	for _, code := range statuses {
		assert.Contains(t, allowed, code)
	}
}

// =============================================================================
// TestParallelConsumption - the ledger never goes below zero under contention
// =============================================================================

func (s *ConcurrencySuite) TestParallelConsumption() {
	s.Run("Token balance is spent exactly once per unit", func() {
		t := s.T()
		fp := "fp-race-tokens"
		dbtest.SetDeviceUsage(t, s.DB, fp, 3, time.Now().UTC())
		code := dbtest.CreateActiveCode(t, s.DB, 5, &fp)

		statuses := s.burst(20, fp, code.Code)

		assertOnly(t, statuses, http.StatusOK, http.StatusPaymentRequired)
		require.Equal(t, int32(0), dbtest.RemainingTokens(t, s.DB, code.Code))
		require.Equal(t, 5, dbtest.CountGenerations(t, s.DB, fp))
		require.Equal(t, int32(3), dbtest.DeviceUsage(t, s.DB, fp))
	})

	s.Run("Free allotment is capped at three per week", func() {
		t := s.T()
		fp := "fp-race-free"

		statuses := s.burst(10, fp)

		assertOnly(t, statuses, http.StatusOK, http.StatusPaymentRequired)
		require.Equal(t, int32(3), dbtest.DeviceUsage(t, s.DB, fp))
		require.Equal(t, 3, dbtest.CountGenerations(t, s.DB, fp))
	})
}
