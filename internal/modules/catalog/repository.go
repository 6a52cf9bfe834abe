package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	ticker TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	risk_level INTEGER NOT NULL,
	dividend_yield REAL NOT NULL DEFAULT 0,
	expected_dividend_yield REAL NOT NULL DEFAULT 0,
	cagr_1y REAL NOT NULL DEFAULT 0,
	cagr_3y REAL NOT NULL DEFAULT 0,
	cagr_5y REAL NOT NULL DEFAULT 0,
	volatility REAL NOT NULL DEFAULT 0,
	beta REAL NOT NULL DEFAULT 0,
	max_drawdown REAL NOT NULL DEFAULT 0,
	dividend_quality REAL NOT NULL DEFAULT 0,
	dividend_growth REAL NOT NULL DEFAULT 0,
	dividend_consistency REAL NOT NULL DEFAULT 0,
	refreshed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assets_category ON assets(category);
`

// Repository provides access to the persisted asset universe.
type Repository struct {
	db *database.DB
}

// NewRepository creates a catalog repository and ensures the schema exists.
func NewRepository(db *database.DB) (*Repository, error) {
	if _, err := db.Conn().Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize catalog schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// List returns every asset, ordered by ticker, with defaults applied to
// any missing statistics.
func (r *Repository) List() ([]Asset, error) {
	rows, err := r.db.Conn().Query(`
		SELECT ticker, name, category, risk_level,
		       dividend_yield, expected_dividend_yield,
		       cagr_1y, cagr_3y, cagr_5y,
		       volatility, beta, max_drawdown,
		       dividend_quality, dividend_growth, dividend_consistency
		FROM assets ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []Asset
	for rows.Next() {
		var a Asset
		var category string
		if err := rows.Scan(
			&a.Ticker, &a.Name, &category, &a.RiskLevel,
			&a.DividendYield, &a.ExpectedDividendYield,
			&a.CAGR1Y, &a.CAGR3Y, &a.CAGR5Y,
			&a.Volatility, &a.Beta, &a.MaxDrawdown,
			&a.DividendQuality, &a.DividendGrowth, &a.DividendConsistency,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		cat, err := ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", a.Ticker, err)
		}
		a.Category = cat
		assets = append(assets, DefaultStats.Apply(a))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}
	return assets, nil
}

// ReplaceAll swaps the stored universe for the given asset list in one
// transaction, stamping every row with the refresh time.
func (r *Repository) ReplaceAll(assets []Asset, refreshedAt time.Time) error {
	tx, err := r.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin catalog transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM assets`); err != nil {
		return fmt.Errorf("failed to clear assets: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO assets (
			ticker, name, category, risk_level,
			dividend_yield, expected_dividend_yield,
			cagr_1y, cagr_3y, cagr_5y,
			volatility, beta, max_drawdown,
			dividend_quality, dividend_growth, dividend_consistency,
			refreshed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare asset insert: %w", err)
	}
	defer stmt.Close()

	ts := refreshedAt.UTC().Format(time.RFC3339)
	for _, a := range assets {
		if _, err := stmt.Exec(
			a.Ticker, a.Name, string(a.Category), a.RiskLevel,
			a.DividendYield, a.ExpectedDividendYield,
			a.CAGR1Y, a.CAGR3Y, a.CAGR5Y,
			a.Volatility, a.Beta, a.MaxDrawdown,
			a.DividendQuality, a.DividendGrowth, a.DividendConsistency,
			ts,
		); err != nil {
			return fmt.Errorf("failed to insert asset %s: %w", a.Ticker, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored assets.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.Conn().QueryRow(`SELECT COUNT(*) FROM assets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

// LastRefreshed returns the most recent refresh timestamp, or the zero
// time when the catalog is empty.
func (r *Repository) LastRefreshed() (time.Time, error) {
	var ts sql.NullString
	err := r.db.Conn().QueryRow(`SELECT MAX(refreshed_at) FROM assets`).Scan(&ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query refresh timestamp: %w", err)
	}
	if !ts.Valid || ts.String == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, ts.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse refresh timestamp %q: %w", ts.String, err)
	}
	return t, nil
}
