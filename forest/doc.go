// Package forest is the parallel Random Forest driver: it builds
// Ntree classification trees (package tree) over a shared frame.XDf
// and response.YBool, dispatches tree construction across a bounded
// pool of worker goroutines pulling from a mutex-protected counter
// (spec.md §5), and aggregates each tree's permutation importance into
// a per-column mean (Importance) or z-score (ZScore).
//
// Every tree's randomness is keyed on its index via rng.Factory, not
// on which worker goroutine happens to build it, so the aggregate
// output is reproducible for a given seed regardless of thread count
// or scheduling order (spec.md §9, "Deterministic parallelism").
package forest
