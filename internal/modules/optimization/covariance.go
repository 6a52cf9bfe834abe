// Package optimization assigns capital weights to a candidate set under
// four alternative objectives, and samples the efficient frontier.
package optimization

import (
	"gonum.org/v1/gonum/mat"
)

// pairwiseCorrelation is the constant correlation of the synthetic
// covariance model. A deliberate simplification standing in for an
// empirical covariance estimate: we have per-asset volatilities but no
// return history to correlate.
const pairwiseCorrelation = 0.5

// BuildSyntheticCovariance builds a covariance matrix from per-asset
// volatilities with constant pairwise correlation and a unit-correlation
// diagonal.
func BuildSyntheticCovariance(volatilities []float64) *mat.Dense {
	n := len(volatilities)
	sigma := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			corr := pairwiseCorrelation
			if i == j {
				corr = 1.0
			}
			sigma.Set(i, j, volatilities[i]*volatilities[j]*corr)
		}
	}
	return sigma
}

// portfolioVariance computes w'Σw.
func portfolioVariance(w []float64, sigma *mat.Dense) float64 {
	var variance float64
	n := len(w)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			variance += w[i] * w[j] * sigma.At(i, j)
		}
	}
	return variance
}

// weightedSum computes v'w.
func weightedSum(values, w []float64) float64 {
	var sum float64
	for i := range w {
		sum += values[i] * w[i]
	}
	return sum
}
