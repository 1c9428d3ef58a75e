package hierarchy

import "golang.org/x/sync/errgroup"

// The concurrent forms below evaluate the tree level by level. Grouping
// internal nodes by height gives bottom-up levels whose nodes only read
// outputs of strictly lower levels; grouping nodes by depth does the same
// top-down. Within a level, nodes are split into contiguous ranges and
// handed to workers, so no two workers write the same output cell. Every
// node is computed exactly as in the sequential form, hence results are
// bitwise identical.

// groupLevels buckets nodes [from, to) by key[v], for keys in 1..maxKey,
// keeping increasing node order inside each bucket. Level k-1 holds
// key k.
func groupLevels(key []int, from, to int) [][]int {
	maxKey := 0
	for v := from; v < to; v++ {
		maxKey = max(maxKey, key[v])
	}
	sizes := make([]int, maxKey)
	for v := from; v < to; v++ {
		sizes[key[v]-1]++
	}
	levels := make([][]int, maxKey)
	for i := range levels {
		levels[i] = make([]int, 0, sizes[i])
	}
	for v := from; v < to; v++ {
		levels[key[v]-1] = append(levels[key[v]-1], v)
	}
	return levels
}

// bottomUpLevels groups internal nodes by height.
func bottomUpLevels(t *Tree) [][]int {
	levels := groupLevels(t.Heights(), t.NumLeaves(), t.NumNodes())
	tracer().Debugf("parallel: %d bottom-up levels over %d internal nodes", len(levels), t.NumNodes()-t.NumLeaves())
	return levels
}

// topDownLevels groups non-root nodes by depth.
func topDownLevels(t *Tree) [][]int {
	levels := groupLevels(t.Depths(), 0, t.Root())
	tracer().Debugf("parallel: %d top-down levels over %d nodes", len(levels), t.NumNodes()-1)
	return levels
}

// forEachRange calls fn on contiguous ranges covering [0, n). The ranges
// are spread over cfg.Workers goroutines when n reaches cfg.MinLevelSize;
// otherwise fn runs once on the calling goroutine.
func forEachRange(cfg Config, n int, fn func(start, end int)) {
	if cfg.Workers <= 1 || n < cfg.MinLevelSize {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	perWorker := (n + cfg.Workers - 1) / cfg.Workers
	for start := 0; start < n; start += perWorker {
		start := start
		end := min(start+perWorker, n)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

func prepareConfig(cfg Config) (Config, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// AccumulateParallelConcurrent is AccumulateParallel with the nodes split
// across cfg.Workers goroutines.
func AccumulateParallelConcurrent[R, T Number](t *Tree, input []T, acc Accumulator, cfg Config) ([]R, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkTypes[R, T](acc); err != nil {
		return nil, err
	}
	if err := checkLen("input", len(input), t.NumNodes()); err != nil {
		return nil, err
	}
	seed, _ := NewFold[T](acc)
	out := make([]R, t.NumNodes())
	forEachRange(cfg, t.NumNodes(), func(start, end int) {
		accumulateParallelRange(t, input, seed, out, start, end)
	})
	return out, nil
}

// AccumulateSequentialConcurrent is AccumulateSequential evaluated one
// height level at a time, each level split across cfg.Workers goroutines.
func AccumulateSequentialConcurrent[R, T Number](t *Tree, leafData []T, acc Accumulator, cfg Config) ([]R, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkTypes[R, T](acc); err != nil {
		return nil, err
	}
	if err := checkLen("leaf data", len(leafData), t.NumLeaves()); err != nil {
		return nil, err
	}
	seed, _ := NewFold[R](acc)
	out := make([]R, t.NumNodes())
	for i, v := range leafData {
		out[i] = R(v)
	}
	for _, level := range bottomUpLevels(t) {
		forEachRange(cfg, len(level), func(start, end int) {
			for _, v := range level[start:end] {
				out[v] = reduceChildren(t, out, seed, v)
			}
		})
	}
	return out, nil
}

// PropagateSequentialConcurrent is PropagateSequential evaluated one depth
// level at a time, each level split across cfg.Workers goroutines.
func PropagateSequentialConcurrent[T any](t *Tree, input []T, condition []bool, cfg Config) ([]T, error) {
	cfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkLen("input", len(input), t.NumNodes()); err != nil {
		return nil, err
	}
	if err := checkLen("condition", len(condition), t.NumNodes()); err != nil {
		return nil, err
	}
	out := make([]T, t.NumNodes())
	out[t.Root()] = input[t.Root()]
	for _, level := range topDownLevels(t) {
		forEachRange(cfg, len(level), func(start, end int) {
			for _, v := range level[start:end] {
				out[v] = propagateNode(t, input, condition, out, v)
			}
		})
	}
	return out, nil
}
