package forest

// bagFraction is the in-sample row fraction drawn for each tree; the
// remaining rows are that tree's out-of-bag set.
const bagFraction = 0.66

// ColumnID names a column by its frame split-id, plus whether the
// caller considers it a shadow (Boruta-injected) column. Forest itself
// never sets Shadow -- it has no notion of which split-ids are
// shadows, only the caller assembling the DataFrame does (frame.XDf
// assigns shadow split-ids strictly above every original one). No code
// in this module sets it: boruta works on Forest's raw map[int]float64
// results and tells shadows apart by comparing split-ids.
type ColumnID struct {
	SplitID int
	Shadow  bool
}

// Params configures a forest run, following the teacher's plain
// doc-commented struct convention (tsp.Options) rather than functional
// options: these fields are set once per Importance/ZScore call and
// rarely partially overridden.
type Params struct {
	// Ntree is the number of trees to build. Must be positive.
	Ntree int
	// Mtry is the number of candidate columns drawn at each split.
	Mtry int
	// ShadowVars enables on-the-fly shadow-probe candidates during
	// split search (frame.FindMinIdx's shadowVars flag).
	ShadowVars bool
	// MaxDepth bounds tree depth; nil means unbounded.
	MaxDepth *int
	// Threads bounds worker-goroutine concurrency. nil or a value <= 1
	// builds trees sequentially on the calling goroutine.
	Threads *int
}

// Forest drives parallel tree construction from a single top-level
// seed. It holds no per-run state -- every call derives its own
// rng.Factory so a Forest value can be reused and shared freely.
type Forest struct {
	Seed uint64
}

// New constructs a Forest keyed on seed.
func New(seed uint64) *Forest {
	return &Forest{Seed: seed}
}
