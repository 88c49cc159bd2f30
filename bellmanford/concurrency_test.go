// Package bellmanford_test verifies that ShortestPaths can share a graph
// across goroutines.
package bellmanford_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/pathgraph/bellmanford"
)

// TestConcurrentShortestPaths runs many readers against one graph and
// expects every goroutine to see the same result.
func TestConcurrentShortestPaths(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := mixedGraph(-2)
	want, err := bellmanford.ShortestPaths(g, 0)
	require.NoError(t, err)

	const readers = 64 // number of concurrent runs
	results := make([]error, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			got, err := bellmanford.ShortestPaths(g, 0)
			if err != nil {
				results[id] = err
				return
			}
			if diff := cmp.Diff(want, got, recordOpts); diff != "" {
				results[id] = errors.New(diff)
			}
		}(i)
	}
	wg.Wait()

	for i, err := range results {
		require.NoErrorf(t, err, "reader %d", i)
	}
}

// TestConcurrentNegativeCycle checks that cycle reports are identical too.
func TestConcurrentNegativeCycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := mixedGraph(-4)
	const readers = 32
	cycles := make([][]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := bellmanford.ShortestPaths(g, id%5)
			var nc *bellmanford.NegativeCycleError[int]
			if errors.As(err, &nc) {
				cycles[id] = nc.Cycle
			}
		}(i)
	}
	wg.Wait()

	for i := range cycles {
		require.NotNilf(t, cycles[i], "reader %d saw no cycle", i)
		require.Equal(t, cycles[i%5], cycles[i])
	}
}

// TestConcurrentCancellation cancels a shared context while runs are in
// flight; every run either finishes or reports the cancellation.
func TestConcurrentCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := chainGraph(2000)
	ctx, cancel := context.WithCancel(context.Background())

	const runners = 16
	errs := make([]error, runners)
	var wg sync.WaitGroup
	wg.Add(runners)
	for i := 0; i < runners; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = bellmanford.ShortestPaths(g, 1999, bellmanford.WithContext(ctx))
		}(i)
	}
	cancel()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, context.Canceled)
		}
	}
}
