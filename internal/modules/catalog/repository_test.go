package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungdo-lee/etf-optimizer/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "catalog.db"),
		Profile: database.ProfileStandard,
		Name:    "catalog-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundtrip(t *testing.T) {
	repo := newTestRepo(t)

	assets := NewGenerator(42).Generate(SeedUniverse)
	refreshedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.ReplaceAll(assets, refreshedAt))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, len(assets))

	// List orders by ticker; the generator already emits ticker order.
	for i := range assets {
		assert.Equal(t, assets[i].Ticker, got[i].Ticker)
		assert.Equal(t, assets[i].Category, got[i].Category)
		assert.InDelta(t, assets[i].Volatility, got[i].Volatility, 1e-12)
		assert.InDelta(t, assets[i].CAGR1Y, got[i].CAGR1Y, 1e-12)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, len(assets), count)

	last, err := repo.LastRefreshed()
	require.NoError(t, err)
	assert.True(t, last.Equal(refreshedAt))
}

func TestRepositoryReplaceAllSwapsUniverse(t *testing.T) {
	repo := newTestRepo(t)

	first := NewGenerator(1).Generate(SeedUniverse[:5])
	require.NoError(t, repo.ReplaceAll(first, time.Now()))

	second := NewGenerator(2).Generate(SeedUniverse[5:8])
	require.NoError(t, repo.ReplaceAll(second, time.Now()))

	got, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRepositoryEmpty(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	last, err := repo.LastRefreshed()
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	got, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryAppliesDefaultsOnRead(t *testing.T) {
	repo := newTestRepo(t)

	sparse := []Asset{{
		Ticker:    "SPARSE",
		Name:      "Sparse Fund",
		Category:  CategoryLargeCap,
		RiskLevel: 3,
		CAGR1Y:    0.10,
	}}
	require.NoError(t, repo.ReplaceAll(sparse, time.Now()))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, DefaultStats.Volatility, got[0].Volatility)
	assert.Equal(t, DefaultStats.Beta, got[0].Beta)
	assert.InDelta(t, 0.09, got[0].CAGR3Y, 1e-12)
}
