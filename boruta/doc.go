// Package boruta implements the Boruta all-relevant feature-selection
// wrapper: each iteration subsets the working frame down to the
// columns still in play, appends permuted shadow copies, scores every
// column (real and shadow alike) with forest z-scores, and uses a
// binomial hit-test against the iteration count to move columns
// between the tentative, confirmed, and rejected sets (spec.md §4.9).
//
// The binomial decision rule is evaluated through the regularized
// incomplete beta function (betainc.go), following the reference
// identity BinCDF(k; n, p) = I_{1-p}(n-k, k+1).
package boruta
