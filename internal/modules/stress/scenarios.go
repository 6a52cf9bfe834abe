// Package stress evaluates a portfolio under fixed adverse (and one
// favorable) market scenarios. Purely deterministic.
package stress

import (
	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
)

// Scenario describes one stress scenario: a market-wide return, a
// volatility multiplier, and per-category shocks layered on top.
type Scenario struct {
	Key                  string                       `json:"key"`
	Name                 string                       `json:"name"`
	Description          string                       `json:"description"`
	MarketReturn         float64                      `json:"market_return"`
	VolatilityMultiplier float64                      `json:"volatility_multiplier"`
	CategoryShocks       map[catalog.Category]float64 `json:"category_shocks"`
}

// Scenarios is the fixed scenario catalog. Categories not listed in a
// scenario's shock map take a zero additional shock.
var Scenarios = map[string]Scenario{
	"bear_market": {
		Key:                  "bear_market",
		Name:                 "Severe bear market",
		Description:          "Sharp equity selloff across the board (e.g. a pandemic-style crisis)",
		MarketReturn:         -0.30,
		VolatilityMultiplier: 2.0,
		CategoryShocks: map[catalog.Category]float64{
			catalog.CategoryDividend:    -0.05,
			catalog.CategoryGrowth:      -0.25,
			catalog.CategoryBond:        0.05,
			catalog.CategoryCoveredCall: -0.10,
			catalog.CategoryRealEstate:  -0.20,
			catalog.CategoryCommodity:   0.10,
		},
	},
	"inflation": {
		Key:                  "inflation",
		Name:                 "Persistent high inflation",
		Description:          "Sustained rate hikes against runaway inflation",
		MarketReturn:         -0.15,
		VolatilityMultiplier: 1.5,
		CategoryShocks: map[catalog.Category]float64{
			catalog.CategoryDividend:    -0.05,
			catalog.CategoryGrowth:      -0.20,
			catalog.CategoryBond:        -0.10,
			catalog.CategoryCoveredCall: -0.05,
			catalog.CategoryRealEstate:  -0.15,
			catalog.CategoryCommodity:   0.20,
		},
	},
	"tech_crash": {
		Key:                  "tech_crash",
		Name:                 "Tech-led crash",
		Description:          "Growth stocks collapse while defensives hold up",
		MarketReturn:         -0.20,
		VolatilityMultiplier: 1.8,
		CategoryShocks: map[catalog.Category]float64{
			catalog.CategoryDividend:    0.05,
			catalog.CategoryGrowth:      -0.30,
			catalog.CategoryBond:        0.10,
			catalog.CategoryCoveredCall: -0.05,
			catalog.CategoryRealEstate:  0.0,
			catalog.CategoryCommodity:   0.05,
		},
	},
	"fed_pivot": {
		Key:                  "fed_pivot",
		Name:                 "Fed rate-cut pivot",
		Description:          "Aggressive rate cuts lift asset prices broadly",
		MarketReturn:         0.15,
		VolatilityMultiplier: 0.7,
		CategoryShocks: map[catalog.Category]float64{
			catalog.CategoryDividend:    0.05,
			catalog.CategoryGrowth:      0.25,
			catalog.CategoryBond:        0.10,
			catalog.CategoryCoveredCall: 0.05,
			catalog.CategoryRealEstate:  0.15,
			catalog.CategoryCommodity:   -0.05,
		},
	},
}

// ScenarioNames lists the available scenario keys in a stable order.
func ScenarioNames() []string {
	return []string{"bear_market", "inflation", "tech_crash", "fed_pivot"}
}
