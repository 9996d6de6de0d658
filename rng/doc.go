// Package rng provides a deterministic, stream-capable pseudo-random
// generator used throughout the forest and boruta packages.
//
// PRNG is a 64-bit linear-congruential generator with a PCG-style
// permuted output (XSH-RR, rotate-xorshift down to 32 bits). Two PRNGs
// constructed with the same (seed, increment) pair always produce the
// same output sequence, independent of goroutine scheduling. Factory
// derives independent streams for shadow columns, per-tree bagging,
// per-tree construction, and per-(tree, column) permutation from a
// single top-level seed, so a forest's output is reproducible
// regardless of how trees are scheduled across worker goroutines.
//
// Complexity: all PRNG operations are O(1) except Shuffle (O(n)) and
// Sample (O(n) via Algorithm L reservoir sampling).
package rng
