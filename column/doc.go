// Package column implements ThreeValColumn, a categorical predictor of
// cardinality three (plus an unused Absent carrier, see spec.md Open
// Question Q3), its Pivot-based partitioning, and the search for the
// Gini-optimal pivot of a column against a boolean response.
package column
