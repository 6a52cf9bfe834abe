// Package backtest builds month-by-month synthetic performance paths for a
// portfolio and reports the standard performance statistics over them.
package backtest

import (
	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
)

// Fallbacks for categories missing from the monthly baseline tables.
const (
	defaultMonthlyReturn = 0.007
	defaultMonthlyVol    = 0.04
)

// Monthly baseline return and volatility per category. The synthetic path
// draws each month as baseline + Gaussian(0, vol).
var (
	baseMonthlyReturns = map[catalog.Category]float64{
		catalog.CategoryDividend:      0.006,
		catalog.CategoryCoveredCall:   0.005,
		catalog.CategoryBond:          0.003,
		catalog.CategoryLargeCap:      0.007,
		catalog.CategoryMidCap:        0.007,
		catalog.CategorySmallCap:      0.008,
		catalog.CategorySector:        0.007,
		catalog.CategoryGrowth:        0.01,
		catalog.CategoryRealEstate:    0.006,
		catalog.CategoryInternational: 0.006,
		catalog.CategoryCommodity:     0.003,
		catalog.CategoryLowVolatility: 0.005,
	}

	baseMonthlyVols = map[catalog.Category]float64{
		catalog.CategoryDividend:      0.03,
		catalog.CategoryCoveredCall:   0.025,
		catalog.CategoryBond:          0.01,
		catalog.CategoryLargeCap:      0.04,
		catalog.CategoryMidCap:        0.045,
		catalog.CategorySmallCap:      0.05,
		catalog.CategorySector:        0.045,
		catalog.CategoryGrowth:        0.06,
		catalog.CategoryRealEstate:    0.05,
		catalog.CategoryInternational: 0.045,
		catalog.CategoryCommodity:     0.04,
		catalog.CategoryLowVolatility: 0.025,
	}
)

// marketEvents is the fixed calendar of market-wide shocks, keyed by
// YYYY-MM. Deterministic, applied additively on top of the random draw.
var marketEvents = map[string]float64{
	"2018-02": -0.04, // volatility spike
	"2018-10": -0.07, // rate-hike selloff
	"2020-03": -0.20, // pandemic crash
	"2020-04": 0.10,  // recovery begins
	"2020-05": 0.05,
	"2021-01": 0.05, // vaccine rollout
	"2022-01": -0.05, // inflation worries
	"2022-06": -0.08, // rate hikes accelerate
	"2023-03": -0.03, // banking stress
	"2023-07": 0.05,  // AI rally
}

// categoryEvents overlays category-specific shocks for the same calendar
// months. Unlisted (category, month) pairs contribute nothing.
var categoryEvents = map[catalog.Category]map[string]float64{
	catalog.CategoryDividend:      {"2020-03": -0.15, "2022-01": 0.02},
	catalog.CategoryCoveredCall:   {"2020-03": -0.10, "2022-01": 0.03},
	catalog.CategoryBond:          {"2020-03": -0.05, "2022-01": -0.10},
	catalog.CategoryLargeCap:      {"2020-03": -0.20, "2022-01": -0.08},
	catalog.CategoryMidCap:        {"2020-03": -0.22, "2022-01": -0.08},
	catalog.CategorySmallCap:      {"2020-03": -0.25, "2022-01": -0.08},
	catalog.CategorySector:        {"2020-03": -0.20, "2022-01": -0.06},
	catalog.CategoryGrowth:        {"2020-03": -0.25, "2022-01": -0.15, "2023-07": 0.10},
	catalog.CategoryRealEstate:    {"2020-03": -0.30, "2022-01": -0.10},
	catalog.CategoryInternational: {"2020-03": -0.25, "2022-01": -0.05},
	catalog.CategoryCommodity:     {"2020-03": -0.10, "2022-01": 0.10},
	catalog.CategoryLowVolatility: {"2020-03": -0.12, "2022-01": -0.03},
}

func baselineFor(cat catalog.Category) (ret, vol float64) {
	ret, ok := baseMonthlyReturns[cat]
	if !ok {
		ret = defaultMonthlyReturn
	}
	vol, ok = baseMonthlyVols[cat]
	if !ok {
		vol = defaultMonthlyVol
	}
	return ret, vol
}

func eventShock(cat catalog.Category, month string) float64 {
	shock := marketEvents[month]
	if overlay, ok := categoryEvents[cat]; ok {
		shock += overlay[month]
	}
	return shock
}
