package eval

import (
	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// Program evaluates p on input, decoding its genome on first use (cached
// lazily on p.Decoded) and consulting c if non-nil and not in cache.Off
// mode.
func Program(p *core.Program, b backend.ProgramBackend, c *cache.Cache, input []float64) (float64, error) {
	var key uint64
	useCache := c != nil && c.Mode() != cache.Off
	if useCache {
		key = b.Hash(input)
		if v, ok := c.Get(p.ID, key); ok {
			return v, nil
		}
	}

	if p.Decoded == nil {
		exec, err := b.Decode(p.Genome)
		if err != nil {
			return 0, err
		}
		p.Decoded = exec
	}
	exec := p.Decoded.(backend.Executable)

	bid, err := b.Evaluate(exec, input)
	b.Reset(exec)
	if err != nil {
		return 0, err
	}

	if useCache {
		c.Put(p.ID, key, bid)
	}
	return bid, nil
}
