// Package portfolio turns a candidate set and a weight vector into the
// canonical portfolio object consumed by backtesting, stress testing and
// simulation. It also hosts the recommend orchestration.
package portfolio

import (
	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
)

// Holding is one position in a constructed portfolio.
type Holding struct {
	catalog.Asset
	EffectiveYield    float64 `json:"effective_yield"`
	Weight            float64 `json:"weight"`
	Invested          float64 `json:"invest_amount"`
	MonthlyIncome     float64 `json:"expected_monthly_income"`
	AnnualReturnValue float64 `json:"expected_annual_return_value"`
}

// Portfolio is an immutable constructed portfolio, holdings sorted by
// descending weight.
type Portfolio struct {
	Holdings           []Holding `json:"holdings"`
	Capital            float64   `json:"capital"`
	TotalMonthlyIncome float64   `json:"total_monthly_income"`
	TotalAnnualReturn  float64   `json:"total_annual_return_value"`
}

// TotalInvested sums the invested amount across holdings.
func (p Portfolio) TotalInvested() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.Invested
	}
	return total
}

// Weights returns the holding weights in portfolio order.
func (p Portfolio) Weights() []float64 {
	weights := make([]float64, len(p.Holdings))
	for i, h := range p.Holdings {
		weights[i] = h.Weight
	}
	return weights
}

// Tickers returns the held tickers in portfolio order.
func (p Portfolio) Tickers() []string {
	tickers := make([]string, len(p.Holdings))
	for i, h := range p.Holdings {
		tickers[i] = h.Ticker
	}
	return tickers
}
