package cache

import (
	"context"
	"testing"
	"time"

	"fraudlens/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	value := map[string]int{"a": 1, "b": 2}
	require.NoError(t, c.Set(ctx, "key", value))

	var got map[string]int
	hit, err := c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, value, got)
}

func TestMemoryCache_MissOnAbsentKey(t *testing.T) {
	c := NewMemoryCache(time.Minute)

	var got map[string]int
	hit, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCache_ExpiresEntries(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value"))

	// Move the clock past the TTL.
	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	var got string
	hit, err := c.Get(ctx, "key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestReportKey_Deterministic(t *testing.T) {
	req := models.AnalysisRequest{
		Company: "Acme",
		Year:    2024,
		FinancialInputs: models.FinancialInputs{
			RevenueGrowthPct:        25,
			CashflowGrowthPct:       8,
			AccrualsPctOfAssets:     12,
			DebtToEquity:            0.9,
			WorkingCapitalChangePct: 15,
		},
	}

	assert.Equal(t, ReportKey(req), ReportKey(req))

	other := req
	other.DebtToEquity = 1.0
	assert.NotEqual(t, ReportKey(req), ReportKey(other))
}
