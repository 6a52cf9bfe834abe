// Package selection filters and scores the asset universe against an
// investment objective and optional investor profile, producing the bounded
// candidate set the optimizer works from.
package selection

import (
	"errors"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
)

// ErrInsufficientCandidates is returned when fewer than three assets pass
// the validity filter. Surfaced to the caller; never retried.
var ErrInsufficientCandidates = errors.New("fewer than 3 valid candidate assets")

// Focus identifies the investment objective.
type Focus string

const (
	FocusDividend Focus = "dividend"
	FocusGrowth   Focus = "growth"
	FocusBalanced Focus = "balanced"
)

// RiskTolerance buckets map to a maximum acceptable asset risk level.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Horizon is the investor's holding period bucket.
type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// IncomeNeed is the investor's current income requirement.
type IncomeNeed string

const (
	IncomeLow    IncomeNeed = "low"
	IncomeMedium IncomeNeed = "medium"
	IncomeHigh   IncomeNeed = "high"
)

// InvestorProfile biases selection scoring. It is read-only input; no
// component mutates it.
type InvestorProfile struct {
	RiskTolerance     RiskTolerance `json:"risk_tolerance"`
	InvestmentHorizon Horizon       `json:"investment_horizon"`
	IncomeNeed        IncomeNeed    `json:"income_needs"`
	Focus             Focus         `json:"investment_focus"`
}

// MaxRisk returns the maximum acceptable asset risk level for the profile's
// risk tolerance. Unknown tolerance values get the moderate ceiling.
func (p InvestorProfile) MaxRisk() int {
	switch p.RiskTolerance {
	case RiskConservative:
		return 4
	case RiskAggressive:
		return 10
	default:
		return 6
	}
}

// Candidate is one selected asset plus its selection-derived fields.
type Candidate struct {
	catalog.Asset
	EffectiveYield float64 `json:"effective_yield"`
	ProfileScore   float64 `json:"profile_score,omitempty"`
}

// CandidateSet is an ordered set of at most eight candidates spanning at
// least three categories whenever the source pool permits it.
type CandidateSet []Candidate

// Tickers returns the candidate tickers in set order.
func (cs CandidateSet) Tickers() []string {
	tickers := make([]string, len(cs))
	for i, c := range cs {
		tickers[i] = c.Ticker
	}
	return tickers
}

// Categories returns the distinct categories present in the set.
func (cs CandidateSet) Categories() map[catalog.Category]bool {
	out := make(map[catalog.Category]bool, len(cs))
	for _, c := range cs {
		out[c.Category] = true
	}
	return out
}
