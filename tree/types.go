package tree

import (
	"github.com/katalvlaran/rforest/mask"

	"github.com/katalvlaran/rforest/column"
)

type nodeKind int8

const (
	leafKind nodeKind = iota
	splitKind
)

// node is the tagged-variant arena entry: {Leaf(class), Split(split_id,
// pivot, left, right)}.
type node struct {
	kind    nodeKind
	class   bool
	splitID int
	pivot   column.Pivot
	left    int
	right   int
}

// predEntry is one (class, original_row_index) pair as recorded by
// PredictFirstPass into preds_cache.
type predEntry struct {
	class bool
	row   int
}

// Tree is a flat, index-addressed classification tree plus its
// write-once prediction caches (spec.md §3 "Tree caches").
type Tree struct {
	nodes     []node
	splitCols []int // every split-id used by this tree, in build order

	cachesPopulated    bool
	maskCache          []mask.Mask
	predsCache         []predEntry
	predsCacheRange    [][2]int
	splitIdxCacheRange [][2]int
	splitMaskMap       map[int][]int
}

// NodeCount returns the number of nodes in the arena.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Root returns the index of the tree's root node -- always the last
// appended node, a direct consequence of post-order construction.
func (t *Tree) Root() int { return len(t.nodes) - 1 }

// Node reports whether node i is a leaf, and if not, its children.
func (t *Tree) Node(i int) (isLeaf bool, left, right int) {
	n := t.nodes[i]
	return n.kind == leafKind, n.left, n.right
}

// SplitCols returns the split-ids this tree actually used, in the
// order their Split nodes were emitted. Duplicates are possible (the
// same column may be split on more than once).
func (t *Tree) SplitCols() []int {
	return append([]int(nil), t.splitCols...)
}

func (t *Tree) appendLeaf(class bool) int {
	t.nodes = append(t.nodes, node{kind: leafKind, class: class})
	return len(t.nodes) - 1
}

func (t *Tree) appendSplit(splitID int, pivot column.Pivot, left, right int) int {
	t.nodes = append(t.nodes, node{kind: splitKind, splitID: splitID, pivot: pivot, left: left, right: right})
	t.splitCols = append(t.splitCols, splitID)
	return len(t.nodes) - 1
}
