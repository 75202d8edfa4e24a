package harness_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/harness"
)

func TestWarmupPopulatesCacheForEveryProgramAndInput(t *testing.T) {
	g := core.NewGraph()
	b := backend.StackBackend{}
	a, err := g.AddProgram(backend.GenomeA(), nil)
	require.NoError(t, err)
	c, err := g.AddProgram(backend.GenomeC(), nil)
	require.NoError(t, err)

	batch := [][]float64{{1, 2, 3}, {4, 5, 6}}
	ca := cache.New(cache.PerInput, 0)

	require.NoError(t, harness.Warmup(context.Background(), g, b, ca, batch, 4))

	for _, pid := range []core.ProgramID{a.ID, c.ID} {
		for _, input := range batch {
			key := b.Hash(input)
			_, ok := ca.Get(pid, key)
			require.True(t, ok, "warmup must populate every (program, input) pair")
		}
	}
}

func TestWarmupNoopWhenCacheOff(t *testing.T) {
	g := core.NewGraph()
	b := backend.StackBackend{}
	_, err := g.AddProgram(backend.GenomeA(), nil)
	require.NoError(t, err)

	err = harness.Warmup(context.Background(), g, b, cache.New(cache.Off, 0), [][]float64{{1, 2, 3}}, 2)
	require.NoError(t, err)
}
