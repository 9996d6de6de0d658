// Package tree implements a single classification tree over a
// frame.XDf and a response.YBool: recursive construction with random
// feature subsampling, and a cached-prediction mechanism that makes
// permutation importance cheap to compute.
//
// A Tree is a flat arena of nodes addressed by index (spec.md §9,
// "Arena + indices, not pointers"): children are always appended
// before their parent, so for any Split node left < self and
// right < self, and the last appended node is the root.
//
// Each call to PredictFirstPass rebuilds the caches (mask_cache,
// preds_cache, the post-order split-index ranges, and split_mask_map)
// that subsequent PredictPermuted calls read. Importance uses those
// caches so that permuting column c re-evaluates only the subtrees whose
// cached split-index range contains a split on c, or that lie below one;
// every other subtree replays its cached leaf predictions verbatim.
package tree
