package tuning

import "math"

// winRateConfidence is the complement of the one-sided binomial tail
// p-value for observing at least wins successes in n decisive games
// under the null hypothesis that the candidate and opponent are evenly
// matched (p=0.5). A confidence near 1 means the win count is very
// unlikely to be explained by an even match; the promotion gate
// requires confidence >= 0.75 alongside the raw win-rate threshold.
func winRateConfidence(wins, n int) float64 {
	if n == 0 {
		return 0
	}
	return 1 - binomialUpperTail(wins, n, 0.5)
}

// binomialUpperTail returns P(X >= k) for X ~ Binomial(n, p), computed
// term-by-term in log space to stay numerically stable for n in the
// hundreds.
func binomialUpperTail(k, n int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if k > n {
		return 0
	}
	logP := math.Log(p)
	logQ := math.Log(1 - p)
	total := 0.0
	for i := k; i <= n; i++ {
		total += math.Exp(logBinomialCoefficient(n, i) + float64(i)*logP + float64(n-i)*logQ)
	}
	if total > 1 {
		return 1
	}
	return total
}

func logBinomialCoefficient(n, k int) float64 {
	a, _ := math.Lgamma(float64(n) + 1)
	b, _ := math.Lgamma(float64(k) + 1)
	c, _ := math.Lgamma(float64(n-k) + 1)
	return a - b - c
}
