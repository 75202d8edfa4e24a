package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

func TestOffModeNeverStores(t *testing.T) {
	c := cache.New(cache.Off, 0)
	c.Put(core.ProgramID(1), 42, 3.14)
	_, ok := c.Get(core.ProgramID(1), 42)
	require.False(t, ok)
}

func TestPerInputStoresUnbounded(t *testing.T) {
	c := cache.New(cache.PerInput, 0)
	for i := uint64(0); i < 2000; i++ {
		c.Put(core.ProgramID(1), i, float64(i))
	}
	for i := uint64(0); i < 2000; i++ {
		v, ok := c.Get(core.ProgramID(1), i)
		require.True(t, ok)
		require.Equal(t, float64(i), v)
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.New(cache.LRU, 2)
	c.Put(core.ProgramID(1), 1, 1)
	c.Put(core.ProgramID(1), 2, 2)
	c.Put(core.ProgramID(1), 3, 3) // evicts key 1

	_, ok := c.Get(core.ProgramID(1), 1)
	require.False(t, ok)
	v, ok := c.Get(core.ProgramID(1), 2)
	require.True(t, ok)
	require.Equal(t, float64(2), v)
}

func TestDropRemovesAllEntriesForProgram(t *testing.T) {
	c := cache.New(cache.PerInput, 0)
	c.Put(core.ProgramID(1), 1, 9)
	c.Drop(core.ProgramID(1))
	_, ok := c.Get(core.ProgramID(1), 1)
	require.False(t, ok)
}

func TestCopyCacheDuplicatesEntriesIndependently(t *testing.T) {
	c := cache.New(cache.PerInput, 0)
	c.Put(core.ProgramID(1), 5, 2.5)

	c.CopyCache(core.ProgramID(1), core.ProgramID(2))

	v, ok := c.Get(core.ProgramID(2), 5)
	require.True(t, ok)
	require.Equal(t, 2.5, v)

	c.Put(core.ProgramID(2), 5, 99)
	v1, _ := c.Get(core.ProgramID(1), 5)
	require.Equal(t, 2.5, v1, "copy must not alias the original program's inner map")
}

func TestStatsCountsHitsAndMisses(t *testing.T) {
	c := cache.New(cache.PerInput, 0)
	c.Put(core.ProgramID(1), 1, 1)
	c.Get(core.ProgramID(1), 1) // hit
	c.Get(core.ProgramID(1), 2) // miss
	c.Get(core.ProgramID(2), 1) // miss (unknown program)

	s := c.Stats()
	require.Equal(t, int64(1), s.Hits)
	require.Equal(t, int64(2), s.Misses)
}

func TestConcurrentLoadOrCreateIsSafe(t *testing.T) {
	c := cache.New(cache.LRU, 100)
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := uint64(0); i < 50; i++ {
				c.Put(core.ProgramID(1), i, float64(worker))
				c.Get(core.ProgramID(1), i)
			}
		}(g)
	}
	wg.Wait()
}
