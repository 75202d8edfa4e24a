package harness

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
)

// workUnit is one (program, batch-item) pair to evaluate during warmup.
type workUnit struct {
	programID core.ProgramID
	input     []float64
}

// Warmup populates c with every (program, input) bid in batch, fanning the
// work out across bounded goroutines the way ahrav/go-gavel's
// ScoreJudgeUnit.Execute bounds its concurrent LLM calls with
// errgroup.SetLimit. Work is partitioned by (program, batch-item); units
// complete in no particular order and each is independently idempotent, so
// a caller may call Warmup more than once (e.g. after a mutation round) with
// no correctness cost beyond redundant evaluation of what's already cached.
//
// Each goroutine decodes its own Executable rather than sharing the
// program's lazily-cached Decoded field: no hidden per-evaluation scratch
// state may leak between concurrent workers, and eval.Program's
// cache-on-Program.Decoded path is only safe when calls for a given program
// are serialized. Warmup trades a little duplicated decode work for that
// safety.
func Warmup(ctx context.Context, g *core.Graph, b backend.ProgramBackend, c *cache.Cache, batch [][]float64, parallelism int) error {
	if c == nil || c.Mode() == cache.Off || len(batch) == 0 {
		return nil
	}
	if parallelism <= 0 {
		parallelism = 1
	}

	var units []workUnit
	for _, pid := range g.ProgramIDs() {
		for _, input := range batch {
			units = append(units, workUnit{programID: pid, input: input})
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)

	for _, u := range units {
		u := u
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			key := b.Hash(u.input)
			if _, ok := c.Get(u.programID, key); ok {
				return nil
			}

			p, err := g.Program(u.programID)
			if err != nil {
				return nil // program was GC'd concurrently with warmup; nothing to do
			}

			exec, err := b.Decode(p.Genome)
			if err != nil {
				return err
			}
			bid, err := b.Evaluate(exec, u.input)
			b.Reset(exec)
			if err != nil {
				return err
			}

			c.Put(u.programID, key, bid)
			return nil
		})
	}

	return eg.Wait()
}
