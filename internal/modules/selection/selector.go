package selection

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
)

const (
	maxCandidates = 8
	minCandidates = 3
)

// Category multiplier tables for profile scoring. Combinations not listed
// multiply by 1.0.
var (
	horizonWeights = map[Horizon]map[catalog.Category]float64{
		HorizonShort:  {catalog.CategoryBond: 2.0, catalog.CategoryDividend: 1.5, catalog.CategoryLowVolatility: 1.2},
		HorizonMedium: {catalog.CategoryDividend: 1.5, catalog.CategoryLowVolatility: 1.2, catalog.CategoryLargeCap: 1.2},
		HorizonLong:   {catalog.CategoryGrowth: 1.5, catalog.CategoryLargeCap: 1.2, catalog.CategorySmallCap: 1.2},
	}

	incomeWeights = map[IncomeNeed]map[catalog.Category]float64{
		IncomeLow:    {catalog.CategoryGrowth: 1.5, catalog.CategoryLargeCap: 1.2},
		IncomeMedium: {catalog.CategoryDividend: 1.2, catalog.CategoryCoveredCall: 1.2},
		IncomeHigh:   {catalog.CategoryDividend: 2.0, catalog.CategoryCoveredCall: 1.8, catalog.CategoryBond: 1.5},
	}

	focusWeights = map[Focus]map[catalog.Category]float64{
		FocusDividend: {catalog.CategoryDividend: 2.0, catalog.CategoryCoveredCall: 1.8, catalog.CategoryRealEstate: 1.3},
		FocusGrowth:   {catalog.CategoryGrowth: 2.0, catalog.CategoryLargeCap: 1.5},
		FocusBalanced: {catalog.CategoryDividend: 1.3, catalog.CategoryLargeCap: 1.3, catalog.CategoryBond: 1.3},
	}
)

// Selector picks the candidate set an optimization run works from.
type Selector struct {
	log zerolog.Logger
}

// NewSelector creates a new asset selector.
func NewSelector(log zerolog.Logger) *Selector {
	return &Selector{log: log.With().Str("component", "selection").Logger()}
}

// Select filters the universe and returns at most eight candidates for the
// given objective. A nil profile falls back to pure focus-distance ranking.
// Returns ErrInsufficientCandidates when fewer than three assets are valid.
func (s *Selector) Select(assets []catalog.Asset, focus Focus, targetValue, seedMoney float64, profile *InvestorProfile) (CandidateSet, error) {
	valid := filterValid(assets)
	if len(valid) < minCandidates {
		s.log.Warn().
			Int("valid", len(valid)).
			Int("universe", len(assets)).
			Msg("Not enough valid candidates")
		return nil, ErrInsufficientCandidates
	}

	var selected CandidateSet
	if profile != nil {
		selected = s.selectByProfile(valid, *profile, targetValue, seedMoney)
	} else {
		selected = s.selectByFocus(valid, focus, targetValue, seedMoney)
	}

	s.log.Info().
		Int("candidates", len(selected)).
		Int("categories", len(selected.Categories())).
		Str("focus", string(focus)).
		Bool("profiled", profile != nil).
		Msg("Selected candidate set")
	return selected, nil
}

// filterValid drops assets without a positive 1-year return and resolves
// each survivor's effective dividend yield. The expected yield replaces the
// trailing yield only when the trailing figure looks like a stale spike
// (more than 1.5x the expected yield).
func filterValid(assets []catalog.Asset) []Candidate {
	valid := make([]Candidate, 0, len(assets))
	for _, a := range assets {
		if a.CAGR1Y <= 0 {
			continue
		}
		effective := a.DividendYield
		if a.ExpectedDividendYield > 0 && a.DividendYield > a.ExpectedDividendYield*1.5 {
			effective = a.ExpectedDividendYield
		}
		valid = append(valid, Candidate{Asset: a, EffectiveYield: effective})
	}

	// Ticker order before ranking keeps ties deterministic.
	sort.Slice(valid, func(i, j int) bool { return valid[i].Ticker < valid[j].Ticker })
	return valid
}

// targetMonthlyYield converts a monthly income target into an annual yield.
func targetMonthlyYield(targetValue, seedMoney float64) float64 {
	if seedMoney <= 0 {
		return 0
	}
	return targetValue * 12 / seedMoney
}

func (s *Selector) selectByFocus(valid []Candidate, focus Focus, targetValue, seedMoney float64) CandidateSet {
	if focus == FocusDividend {
		return selectDividendFocus(valid, targetMonthlyYield(targetValue, seedMoney))
	}
	return selectReturnFocus(valid, targetValue)
}

// selectDividendFocus ranks by distance to the target yield with a cap of
// three picks per category.
func selectDividendFocus(valid []Candidate, targetYield float64) CandidateSet {
	ranked := make([]Candidate, len(valid))
	copy(ranked, valid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].EffectiveYield-targetYield) < math.Abs(ranked[j].EffectiveYield-targetYield)
	})

	selected := make(CandidateSet, 0, maxCandidates)
	perCategory := make(map[catalog.Category]int)
	for _, c := range ranked {
		if len(selected) >= maxCandidates {
			break
		}
		if perCategory[c.Category] >= 3 {
			continue
		}
		selected = append(selected, c)
		perCategory[c.Category]++
	}
	return selected
}

// selectReturnFocus ranks growth/balanced objectives by distance to the
// target annual return. An initial pass takes up to five assets with at
// most two per category; a fallback pass tops the set up to at least three.
func selectReturnFocus(valid []Candidate, targetReturn float64) CandidateSet {
	ranked := make([]Candidate, len(valid))
	copy(ranked, valid)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].CAGR1Y-targetReturn) < math.Abs(ranked[j].CAGR1Y-targetReturn)
	})

	selected := make(CandidateSet, 0, maxCandidates)
	perCategory := make(map[catalog.Category]int)
	picked := make(map[string]bool)
	for _, c := range ranked {
		if len(selected) >= 5 {
			break
		}
		if perCategory[c.Category] >= 2 {
			continue
		}
		selected = append(selected, c)
		perCategory[c.Category]++
		picked[c.Ticker] = true
	}

	if len(selected) < minCandidates {
		for _, c := range ranked {
			if picked[c.Ticker] || perCategory[c.Category] >= 2 {
				continue
			}
			selected = append(selected, c)
			perCategory[c.Category]++
			picked[c.Ticker] = true
			if len(selected) >= minCandidates {
				break
			}
		}
	}
	return selected
}

// selectByProfile scores every valid asset against the investor profile and
// picks the top eight, then repairs category diversity up to three
// categories when the pool allows.
func (s *Selector) selectByProfile(valid []Candidate, profile InvestorProfile, targetValue, seedMoney float64) CandidateSet {
	maxRisk := profile.MaxRisk()

	scored := make([]Candidate, len(valid))
	copy(scored, valid)
	for i := range scored {
		scored[i].ProfileScore = profileScore(scored[i], profile, maxRisk, targetValue, seedMoney)
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].ProfileScore > scored[j].ProfileScore })

	n := maxCandidates
	if len(scored) < n {
		n = len(scored)
	}
	selected := make(CandidateSet, n)
	copy(selected, scored[:n])

	// Diversity repair: pull in the best-scoring asset from categories the
	// top picks missed.
	categories := selected.Categories()
	if len(categories) < minCandidates && len(scored) > len(selected) {
		for _, c := range scored[n:] {
			if len(categories) >= minCandidates || len(selected) >= maxCandidates {
				break
			}
			if categories[c.Category] {
				continue
			}
			selected = append(selected, c)
			categories[c.Category] = true
		}
	}
	return selected
}

func profileScore(c Candidate, profile InvestorProfile, maxRisk int, targetValue, seedMoney float64) float64 {
	riskScore := 1.0 - float64(c.RiskLevel)/10
	if c.RiskLevel > maxRisk {
		riskScore = math.Max(riskScore-float64(c.RiskLevel-maxRisk)*0.2, 0)
	}

	horizonMult := tableLookup(horizonWeights[profile.InvestmentHorizon], c.Category)
	incomeMult := tableLookup(incomeWeights[profile.IncomeNeed], c.Category)
	focusMult := tableLookup(focusWeights[profile.Focus], c.Category)

	var targetScore float64
	if profile.Focus == FocusDividend {
		targetScore = 1.0 / (1.0 + math.Abs(c.EffectiveYield-targetMonthlyYield(targetValue, seedMoney))*10)
	} else {
		targetScore = 1.0 / (1.0 + math.Abs(c.CAGR1Y-targetValue)*5)
	}

	dividendFactor := 1.0
	if profile.Focus == FocusDividend || profile.IncomeNeed == IncomeHigh {
		dividendFactor = 0.5 + 0.5*c.DividendQuality
	}

	return riskScore * horizonMult * incomeMult * focusMult * targetScore * dividendFactor
}

func tableLookup(table map[catalog.Category]float64, cat catalog.Category) float64 {
	if m, ok := table[cat]; ok {
		return m
	}
	return 1.0
}
