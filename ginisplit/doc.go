// Package ginisplit computes the partition-Gini impurity used to score
// candidate splits of a three-valued categorical column against a
// boolean response. It operates on raw value/label slices plus an
// explicit row index set rather than on the column and response types
// directly, so that the column package can depend on it without a
// cycle.
package ginisplit
