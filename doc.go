// Package rforest is a feature-importance engine: a Random Forest of
// classification trees over three-valued categorical predictors and a
// boolean response, exposing permutation importance (mean and
// z-score) plus a Boruta all-relevant feature-selection wrapper.
//
// Package layout, leaves first:
//
//	rng/       — counter-style PRNG and its per-purpose stream factory
//	mask/      — sorted row-index sets
//	column/    — three-valued categorical columns and split pivots
//	ginisplit/ — partition-Gini impurity scoring
//	response/  — boolean response vector
//	frame/     — DataFrame: columns plus stable split-id bookkeeping
//	tree/      — tree build, cached prediction, permutation importance
//	forest/    — parallel tree construction and importance aggregation
//	boruta/    — shadow-variable feature selection on top of forest
//
// This package is a thin facade over forest and boruta for callers who
// want the top-level API surface without importing each subpackage
// directly.
//
//	go get github.com/katalvlaran/rforest
package rforest
