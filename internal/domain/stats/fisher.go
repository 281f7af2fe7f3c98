package stats

import "math"

// FisherResult holds the outcome of the two-sided Fisher exact test.
type FisherResult struct {
	// OddsRatio is the sample odds ratio (a·d)/(b·c). +Inf whenever b·c is
	// zero, as scipy's fisher_exact reports it; 0 when a·d is zero with a
	// nonzero denominator.
	OddsRatio float64

	// P is the two-sided p-value.
	P float64
}

// relEps guards the tail sum against float rounding when comparing table
// probabilities to the observed one.
const relEps = 1e-7

// FisherExact runs the two-sided Fisher exact test on a 2×2 table. The
// p-value sums the hypergeometric probabilities of every table with the
// observed margins whose probability does not exceed the observed table's.
func FisherExact(c Crosstab) FisherResult {
	a, b := c[0][0], c[0][1]
	cc, d := c[1][0], c[1][1]

	var odds float64
	if b*cc != 0 {
		odds = float64(a*d) / float64(b*cc)
	} else {
		odds = math.Inf(1)
	}

	row1 := a + b
	row2 := cc + d
	col1 := a + cc
	n := row1 + row2
	if n == 0 {
		return FisherResult{OddsRatio: odds, P: 1}
	}

	// Range of the top-left cell given fixed margins.
	lo := max(0, col1-row2)
	hi := min(row1, col1)

	pObs := hypergeomPMF(a, row1, col1, n)
	cutoff := pObs * (1 + relEps)

	var p float64
	for x := lo; x <= hi; x++ {
		if px := hypergeomPMF(x, row1, col1, n); px <= cutoff {
			p += px
		}
	}
	return FisherResult{OddsRatio: odds, P: math.Min(p, 1)}
}

// hypergeomPMF is P(X = x) for a hypergeometric draw: x successes in the
// first row of row1, with col1 total successes among n.
func hypergeomPMF(x, row1, col1, n int) float64 {
	return math.Exp(logChoose(col1, x) + logChoose(n-col1, row1-x) - logChoose(n, row1))
}

// logChoose is ln C(n, k) via log-gamma.
func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	ln, _ := math.Lgamma(float64(n + 1))
	lk, _ := math.Lgamma(float64(k + 1))
	lnk, _ := math.Lgamma(float64(n - k + 1))
	return ln - lk - lnk
}
