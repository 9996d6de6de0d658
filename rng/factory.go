package rng

// Factory derives independent PRNG streams from a single top-level
// seed plus the forest's shape (ncol, ntree), per the increment
// formulas below. For column indices in [0, ncol) and tree indices in
// [0, ntree), all increments are distinct for distinct (stream kind,
// index) pairs, so every such stream is statistically independent of
// every other — this is what lets a forest's aggregate output stay
// reproducible no matter which worker goroutine ends up building which
// tree.
//
// Increment formulas (1-based, matching the reference implementation):
//
//	shadow of column c                    -> c + 1
//	tree i (internal construction RNG)    -> ncol + i + 1
//	tree i mask (bagging)                 -> ncol + ntree + i + 1
//	permutation for tree i, column c      -> ncol + 2*ntree + i*ncol + c + 1
type Factory struct {
	seed  uint64
	ncol  int
	ntree int
}

// NewFactory constructs a Factory for a forest of the given shape.
func NewFactory(seed uint64, ncol, ntree int) *Factory {
	return &Factory{seed: seed, ncol: ncol, ntree: ntree}
}

func (f *Factory) stream(increment uint64) *PRNG {
	p, err := New(f.seed, increment)
	if err != nil {
		// increment is always >= 1 by construction of the formulas
		// above; this would indicate a bug in this package.
		panic(err)
	}
	return p
}

// Shadow returns the permutation stream used to build a shadow copy of
// physical column c.
func (f *Factory) Shadow(c int) *PRNG {
	return f.stream(uint64(c + 1))
}

// Tree returns the internal construction stream (tie-breaks, majority
// votes) for tree i.
func (f *Factory) Tree(i int) *PRNG {
	return f.stream(uint64(f.ncol + i + 1))
}

// TreeMask returns the bagging stream used to draw tree i's in-sample
// row mask.
func (f *Factory) TreeMask(i int) *PRNG {
	return f.stream(uint64(f.ncol + f.ntree + i + 1))
}

// Permutation returns the stream used to permute column c's OOB values
// when computing tree i's importance for that column.
func (f *Factory) Permutation(treeIdx, splitCol int) *PRNG {
	return f.stream(uint64(f.ncol+2*f.ntree+treeIdx*f.ncol+splitCol) + 1)
}
