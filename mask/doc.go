// Package mask implements Mask, a sorted set of row indices into the
// module's fixed row space [0, nrow). Masks are immutable once
// constructed: splitting a mask produces two fresh masks rather than
// mutating the original, mirroring the teacher's Clone-over-mutate
// convention for shared read state (core.Graph.Clone).
package mask
