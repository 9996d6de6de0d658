package forest

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/rforest/frame"
	"github.com/katalvlaran/rforest/mask"
	"github.com/katalvlaran/rforest/response"
	"github.com/katalvlaran/rforest/rng"
	"github.com/katalvlaran/rforest/tree"
)

// ImportancePerTree builds p.Ntree trees over df/y and returns each
// tree's raw permutation-importance map (split-id -> signed
// error-count delta), indexed by tree number. Every tree's randomness
// is drawn from streams keyed on its index by rng.Factory, so the
// returned slice is identical for a given (f.Seed, df, y, p) regardless
// of how many worker goroutines p.Threads requests or how the
// scheduler interleaves them.
//
// When p.Threads is nil or <= 1, trees are built sequentially on the
// calling goroutine. Otherwise trees are dispatched across that many
// worker goroutines pulling tree indices from a mutex-protected
// monotonic counter (spec.md §5): this is a pull-based assignment, not
// a pre-sliced work queue, so a slow tree cannot starve idle workers of
// the remaining fast ones. A single buffered aggregation channel
// collects one outcome per tree (successes, errors, and recovered
// panics alike). On success the caller drains all p.Ntree outcomes; at
// the first failed outcome it returns at once, discarding partial
// results, while the remaining workers finish into the buffered channel.
func (f *Forest) ImportancePerTree(df *frame.XDf, y response.YBool, p Params) ([]map[int]int, error) {
	if p.Ntree <= 0 {
		return nil, ErrInvalidNtree
	}

	factory := rng.NewFactory(f.Seed, df.Ncol(), p.Ntree)
	buildOne := func(i int) (map[int]int, error) {
		return buildAndScoreTree(df, y, factory, i, p)
	}

	if p.Threads == nil || *p.Threads <= 1 {
		results := make([]map[int]int, p.Ntree)
		for i := 0; i < p.Ntree; i++ {
			imp, err := buildOne(i)
			if err != nil {
				return nil, err
			}
			results[i] = imp
		}
		return results, nil
	}

	return dispatchParallel(p.Ntree, *p.Threads, buildOne)
}

// buildAndScoreTree draws tree i's bagging mask, builds it, and scores
// its permutation importance against the complementary OOB mask.
func buildAndScoreTree(df *frame.XDf, y response.YBool, factory *rng.Factory, i int, p Params) (map[int]int, error) {
	bag, err := mask.Random(df.Nrow(), bagFraction, factory.TreeMask(i))
	if err != nil {
		return nil, err
	}
	oob := bag.Complement(df.Nrow())

	opts := tree.BuildOptions{Mtry: p.Mtry, MaxDepth: p.MaxDepth, ShadowVars: p.ShadowVars}
	tr, err := tree.Build(df, y, bag, opts, factory.Tree(i), factory)
	if err != nil {
		return nil, err
	}

	if oob.Len() == 0 {
		return map[int]int{}, nil
	}
	return tr.Importance(df, y, oob, factory, i)
}

type treeOutcome struct {
	idx      int
	imp      map[int]int
	err      error
	panicVal interface{}
}

// dispatchParallel runs buildOne(i) for i in [0, ntree) across nworkers
// goroutines pulling from a shared mutex-protected counter, collecting
// every outcome on one buffered channel (spec.md §5).
func dispatchParallel(ntree, nworkers int, buildOne func(int) (map[int]int, error)) ([]map[int]int, error) {
	if nworkers > ntree {
		nworkers = ntree
	}

	var mu sync.Mutex
	next := 0
	take := func() (int, bool) {
		mu.Lock()
		defer mu.Unlock()
		if next >= ntree {
			return 0, false
		}
		i := next
		next++
		return i, true
	}

	out := make(chan treeOutcome, ntree)
	var wg sync.WaitGroup
	wg.Add(nworkers)
	for w := 0; w < nworkers; w++ {
		go func() {
			defer wg.Done()
			for {
				i, ok := take()
				if !ok {
					return
				}
				out <- runWorker(i, buildOne)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]map[int]int, ntree)
	for outcome := range out {
		if outcome.panicVal != nil {
			return nil, fmt.Errorf("forest: worker panic building tree %d: %v", outcome.idx, outcome.panicVal)
		}
		if outcome.err != nil {
			return nil, outcome.err
		}
		results[outcome.idx] = outcome.imp
	}
	return results, nil
}

// runWorker recovers a build panic at the top of the worker loop and
// folds it into the same outcome channel as ordinary errors, so a
// panicking tree propagates to the caller instead of crashing the
// process (spec.md §5).
func runWorker(i int, buildOne func(int) (map[int]int, error)) (outcome treeOutcome) {
	outcome.idx = i
	defer func() {
		if r := recover(); r != nil {
			outcome.panicVal = r
		}
	}()
	outcome.imp, outcome.err = buildOne(i)
	return outcome
}
