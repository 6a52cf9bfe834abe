// Package catalog manages the investable ETF universe: asset metadata,
// synthetic return/risk statistics, and the persistence layer behind them.
package catalog

import "fmt"

// Category identifies the asset class bucket an ETF belongs to.
// The enumeration is fixed; selection, backtesting and stress testing
// all key their lookup tables on these codes.
type Category string

const (
	CategoryDividend      Category = "DIV" // Dividend-focused equity
	CategoryCoveredCall   Category = "CC"  // Covered-call income strategies
	CategoryBond          Category = "BND" // Fixed income
	CategoryLargeCap      Category = "LC"  // Broad large-cap equity
	CategoryMidCap        Category = "MC"  // Mid-cap equity
	CategorySmallCap      Category = "SC"  // Small-cap equity
	CategorySector        Category = "SEC" // Single-sector equity
	CategoryRealEstate    Category = "RE"  // REITs and real estate
	CategoryInternational Category = "INT" // Ex-US developed/emerging equity
	CategoryCommodity     Category = "COM" // Commodities
	CategoryLowVolatility Category = "LV"  // Minimum-volatility factor
	CategoryGrowth        Category = "GRO" // High-growth equity
)

// AllCategories lists every valid category code.
var AllCategories = []Category{
	CategoryDividend,
	CategoryCoveredCall,
	CategoryBond,
	CategoryLargeCap,
	CategoryMidCap,
	CategorySmallCap,
	CategorySector,
	CategoryRealEstate,
	CategoryInternational,
	CategoryCommodity,
	CategoryLowVolatility,
	CategoryGrowth,
}

// ParseCategory validates a category code.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown asset category %q", s)
}

// Asset holds one ETF's metadata and statistics. Assets are immutable for
// the duration of an optimization run; the catalog hands out copies.
type Asset struct {
	Ticker                string   `json:"ticker"`
	Name                  string   `json:"name"`
	Category              Category `json:"category"`
	RiskLevel             int      `json:"risk_level"` // Ordinal 1 (T-bills) to 9 (leveraged equity)
	DividendYield         float64  `json:"dividend_yield"`
	ExpectedDividendYield float64  `json:"expected_dividend_yield"`
	CAGR1Y                float64  `json:"cagr_1y"`
	CAGR3Y                float64  `json:"cagr_3y"`
	CAGR5Y                float64  `json:"cagr_5y"`
	Volatility            float64  `json:"volatility"`
	Beta                  float64  `json:"beta"`
	MaxDrawdown           float64  `json:"max_drawdown"`
	DividendQuality       float64  `json:"dividend_quality"`
	DividendGrowth        float64  `json:"dividend_growth"`
	DividendConsistency   float64  `json:"dividend_consistency"`
}

// Defaults holds the fallback statistics applied when an asset record is
// missing a field. Centralized here so no consumer re-invents its own
// defaults at the call site.
type Defaults struct {
	Volatility          float64
	Beta                float64
	MaxDrawdown         float64
	DividendQuality     float64
	DividendGrowth      float64
	DividendConsistency float64
}

// DefaultStats is the single source of asset fallback values.
var DefaultStats = Defaults{
	Volatility:          0.15,
	Beta:                1.0,
	MaxDrawdown:         -0.20,
	DividendQuality:     0.5,
	DividendGrowth:      0.02,
	DividendConsistency: 0.5,
}

// Apply fills missing (zero) statistics on an asset with the defaults.
// CAGR3Y/CAGR5Y fall back to scaled CAGR1Y the way the data feed estimates
// them when a fund is too young to have a full history.
func (d Defaults) Apply(a Asset) Asset {
	if a.Volatility == 0 {
		a.Volatility = d.Volatility
	}
	if a.Beta == 0 {
		a.Beta = d.Beta
	}
	if a.MaxDrawdown == 0 {
		a.MaxDrawdown = d.MaxDrawdown
	}
	if a.DividendQuality == 0 {
		a.DividendQuality = d.DividendQuality
	}
	if a.DividendGrowth == 0 {
		a.DividendGrowth = d.DividendGrowth
	}
	if a.DividendConsistency == 0 {
		a.DividendConsistency = d.DividendConsistency
	}
	if a.CAGR3Y == 0 {
		a.CAGR3Y = a.CAGR1Y * 0.9
	}
	if a.CAGR5Y == 0 {
		a.CAGR5Y = a.CAGR1Y * 0.8
	}
	return a
}
