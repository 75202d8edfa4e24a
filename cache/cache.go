package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arborix-labs/tpg/core"
)

// Mode selects a Cache's storage strategy.
type Mode int

const (
	// Off disables storage entirely; every Get misses and every Put is a
	// no-op.
	Off Mode = iota
	// PerInput keeps an unbounded per-program map; entries persist until
	// the owning program is dropped.
	PerInput
	// LRU keeps a bounded per-program map, evicting least-recently-used
	// entries on insert once MaxSize is reached. This is the only mode
	// guaranteed safe for concurrent warmup.
	LRU
)

// DefaultMaxSize is used by New when mode is LRU and maxSize <= 0.
const DefaultMaxSize = 1000

// innerStore is the per-program cache, whichever mode backs it.
type innerStore interface {
	get(key uint64) (float64, bool)
	put(key uint64, value float64)
	clone() innerStore
}

// Cache is a ProgramID -> (inputHash -> bid) memoization table.
type Cache struct {
	mode    Mode
	maxSize int
	outer   sync.Map // core.ProgramID -> innerStore

	hits   atomic.Int64
	misses atomic.Int64
}

// New constructs a Cache in the given mode. maxSize is only meaningful for
// LRU mode; a non-positive value there is replaced with DefaultMaxSize.
func New(mode Mode, maxSize int) *Cache {
	if mode == LRU && maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache{mode: mode, maxSize: maxSize}
}

// Mode reports the cache's configured mode.
func (c *Cache) Mode() Mode { return c.mode }

func (c *Cache) newInner() innerStore {
	switch c.mode {
	case PerInput:
		return &perInputStore{m: make(map[uint64]float64)}
	case LRU:
		l, _ := lru.New[uint64, float64](c.maxSize)
		return &lruStore{l: l, maxSize: c.maxSize}
	default:
		return nil
	}
}

// loadOrCreate atomically fetches id's inner store, creating one on first
// use. Safe for concurrent use by multiple warmup goroutines across
// distinct program IDs and the same one.
func (c *Cache) loadOrCreate(id core.ProgramID) innerStore {
	if v, ok := c.outer.Load(id); ok {
		return v.(innerStore)
	}
	fresh := c.newInner()
	actual, _ := c.outer.LoadOrStore(id, fresh)
	return actual.(innerStore)
}

// Get looks up the cached bid for (id, inputHash). The bool is false on a
// miss or when the cache is in Off mode.
func (c *Cache) Get(id core.ProgramID, inputHash uint64) (float64, bool) {
	if c.mode == Off {
		return 0, false
	}
	v, ok := c.outer.Load(id)
	if !ok {
		c.misses.Add(1)
		return 0, false
	}
	val, found := v.(innerStore).get(inputHash)
	if found {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return val, found
}

// Put records bid under (id, inputHash). A no-op in Off mode.
func (c *Cache) Put(id core.ProgramID, inputHash uint64, bid float64) {
	if c.mode == Off {
		return
	}
	c.loadOrCreate(id).put(inputHash, bid)
}

// Drop discards every cached entry for id. Satisfies verify.CacheEvictor so
// the GC sweep can evict a deleted program's entries without this package
// depending on verify, or vice versa.
func (c *Cache) Drop(id core.ProgramID) {
	c.outer.Delete(id)
}

// CopyCache duplicates from's inner cache onto to: used when a program's
// assigned action is mutated in place of a fresh clone — the bids are
// unchanged by an action edit, only the cache ownership moves to the new
// program ID.
func (c *Cache) CopyCache(from, to core.ProgramID) {
	if c.mode == Off {
		return
	}
	v, ok := c.outer.Load(from)
	if !ok {
		return
	}
	c.outer.Store(to, v.(innerStore).clone())
}

// Stats is a point-in-time hit/miss snapshot.
type Stats struct {
	Hits   int64
	Misses int64
}

// Stats returns the cache's cumulative hit/miss counts.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// perInputStore is the unbounded PerInput mode backing store. A private
// mutex (rather than sync.Map) is used because golang-lru's bounded
// counterpart already needs one of its own for eviction bookkeeping, and a
// plain map+mutex is the simplest correct thing for the unbounded case.
type perInputStore struct {
	mu sync.RWMutex
	m  map[uint64]float64
}

func (s *perInputStore) get(key uint64) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *perInputStore) put(key uint64, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *perInputStore) clone() innerStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := make(map[uint64]float64, len(s.m))
	for k, v := range s.m {
		clone[k] = v
	}
	return &perInputStore{m: clone}
}

// lruStore wraps golang-lru/v2, which is already safe for concurrent use.
type lruStore struct {
	l       *lru.Cache[uint64, float64]
	maxSize int
}

func (s *lruStore) get(key uint64) (float64, bool) {
	return s.l.Get(key)
}

func (s *lruStore) put(key uint64, value float64) {
	s.l.Add(key, value)
}

func (s *lruStore) clone() innerStore {
	fresh, _ := lru.New[uint64, float64](s.maxSize)
	for _, k := range s.l.Keys() {
		if v, ok := s.l.Peek(k); ok {
			fresh.Add(k, v)
		}
	}
	return &lruStore{l: fresh, maxSize: s.maxSize}
}
