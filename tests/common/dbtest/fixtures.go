//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"coloring-api/internal/domain/redemption"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type CodeFixture struct {
	ID   uuid.UUID
	Code string
}

// CreateActiveCode inserts an active code with a fresh checksum-valid value.
// A nil fingerprint leaves the code unbound.
func CreateActiveCode(t *testing.T, db DBLike, tokens int32, fingerprint *string) CodeFixture {
	t.Helper()

	code, err := redemption.Generate()
	require.NoError(t, err)

	id := uuid.New()
	var redeemedAt *time.Time
	if fingerprint != nil {
		now := time.Now().UTC()
		redeemedAt = &now
	}

	_, err = db.Exec(context.Background(), `
		INSERT INTO redemption_codes (id, code, initial_tokens, remaining_tokens, status, redeemed_by_fingerprint, redeemed_at)
		VALUES ($1, $2, $3, $3, 'active', $4, $5)`,
		id, code.String(), tokens, fingerprint, redeemedAt)
	require.NoError(t, err)

	return CodeFixture{ID: id, Code: code.String()}
}

// SetDeviceUsage upserts a device row with the given counter and window start.
func SetDeviceUsage(t *testing.T, db DBLike, fingerprint string, usageCount int32, weekStartedAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO devices (fingerprint, usage_count, week_started_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (fingerprint) DO UPDATE
		SET usage_count = EXCLUDED.usage_count, week_started_at = EXCLUDED.week_started_at`,
		fingerprint, usageCount, weekStartedAt)
	require.NoError(t, err)
}

func RemainingTokens(t *testing.T, db DBLike, code string) int32 {
	t.Helper()

	var remaining int32
	err := db.QueryRow(context.Background(), "SELECT remaining_tokens FROM redemption_codes WHERE code = $1", code).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

func DeviceUsage(t *testing.T, db DBLike, fingerprint string) int32 {
	t.Helper()

	var usage int32
	err := db.QueryRow(context.Background(), "SELECT usage_count FROM devices WHERE fingerprint = $1", fingerprint).Scan(&usage)
	require.NoError(t, err)
	return usage
}

func CountGenerations(t *testing.T, db DBLike, fingerprint string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM generations WHERE fingerprint = $1", fingerprint).Scan(&n)
	require.NoError(t, err)
	return n
}

func PurchaseStatus(t *testing.T, db DBLike, purchaseID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM purchases WHERE id = $1", purchaseID).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
