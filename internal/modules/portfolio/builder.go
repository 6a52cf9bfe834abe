package portfolio

import (
	"sort"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
)

// Build constructs a portfolio from candidates and their optimized weights.
// Weights are renormalized to sum exactly 1 if they drifted; holdings come
// back sorted by descending weight. Pure function, no side effects.
func Build(candidates selection.CandidateSet, weights []float64, capital float64) Portfolio {
	n := len(candidates)
	if n == 0 || len(weights) != n {
		return Portfolio{Capital: capital}
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	normalized := make([]float64, n)
	for i, w := range weights {
		if sum > 0 {
			normalized[i] = w / sum
		} else {
			normalized[i] = 1.0 / float64(n)
		}
	}

	p := Portfolio{
		Holdings: make([]Holding, n),
		Capital:  capital,
	}
	for i, c := range candidates {
		invested := capital * normalized[i]
		h := Holding{
			Asset:             c.Asset,
			EffectiveYield:    c.EffectiveYield,
			Weight:            normalized[i],
			Invested:          invested,
			MonthlyIncome:     invested * c.EffectiveYield / 12,
			AnnualReturnValue: invested * c.CAGR1Y,
		}
		p.Holdings[i] = h
		p.TotalMonthlyIncome += h.MonthlyIncome
		p.TotalAnnualReturn += h.AnnualReturnValue
	}

	sort.SliceStable(p.Holdings, func(i, j int) bool {
		return p.Holdings[i].Weight > p.Holdings[j].Weight
	})
	return p
}
