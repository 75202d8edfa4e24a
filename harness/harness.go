package harness

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/arborix-labs/tpg/backend"
	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/core"
	"github.com/arborix-labs/tpg/eval"
	"github.com/arborix-labs/tpg/mutate"
	"github.com/arborix-labs/tpg/verify"
)

// FitnessFunc scores a single root's evaluation over one input. The
// generational loop sums a root's score across every input in Dataset to
// rank it against its peers. Fitness calculation is deliberately outside
// the engine's own scope; this is the pluggable hook a caller supplies to
// define it for their own domain.
type FitnessFunc func(result *eval.GraphResult) float64

// defaultFitness scores a root by the bid its evaluation path terminated
// on — a reasonable domain-agnostic default when a caller has no bespoke
// scoring function: higher winning bids rank higher.
func defaultFitness(result *eval.GraphResult) float64 {
	if len(result.Path) == 0 {
		return 0
	}
	return result.Path[len(result.Path)-1].Bid
}

// EpochCallback runs after each completed generation. generation is
// 1-indexed.
type EpochCallback func(generation int, report *verify.Report)

// Harness owns the graph and drives the generational loop: parent
// selection, mutation, evaluation of every root, demotion of non-elite
// roots, a GC/verify pass, and the callbacks around each step.
type Harness struct {
	Graph   *core.Graph
	Backend backend.ProgramBackend
	Cache   *cache.Cache
	Config  Config
	Metrics *Metrics
	RNG     *rand.Rand

	// Dataset is the set of input vectors every root is evaluated against
	// each generation to produce its fitness score.
	Dataset [][]float64

	// Fitness scores one root's evaluation result. If nil, defaultFitness
	// is used.
	Fitness FitnessFunc

	EpochCallbacks    []EpochCallback
	EarlyStopCallback func() bool
}

// NewHarness constructs a Harness around an existing graph. metrics may be
// nil to disable instrumentation (e.g. in tests that don't care to scrape
// Prometheus output).
func NewHarness(g *core.Graph, b backend.ProgramBackend, cfg Config, metrics *Metrics, rng *rand.Rand) *Harness {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Harness{
		Graph:   g,
		Backend: b,
		Cache:   cache.New(cfg.cacheMode(), cfg.CacheMaxSize),
		Config:  cfg,
		Metrics: metrics,
		RNG:     rng,
	}
}

// Bootstrap creates Config.PopulationSize initial root teams, each with
// ProgramsPerInitialTeam freshly-random programs. genomeConfig is passed
// through to Backend.MakeRandomGenome verbatim; its shape is
// backend-specific.
func (h *Harness) Bootstrap(programsPerInitialTeam int, genomeConfig any) error {
	for i := 0; i < h.Config.PopulationSize; i++ {
		programIDs := make([]core.ProgramID, 0, programsPerInitialTeam)
		for j := 0; j < programsPerInitialTeam; j++ {
			genome := h.Backend.MakeRandomGenome(genomeConfig, h.RNG)
			p, err := h.Graph.AddProgram(genome, nil)
			if err != nil {
				return fmt.Errorf("harness: bootstrapping program: %w", err)
			}
			programIDs = append(programIDs, p.ID)
		}
		team, err := h.Graph.AddTeam(programIDs, nil)
		if err != nil {
			return fmt.Errorf("harness: bootstrapping team: %w", err)
		}
		if err := h.Graph.AddRoot(team.ID); err != nil {
			return fmt.Errorf("harness: marking bootstrap team as root: %w", err)
		}
	}
	return nil
}

// rootFitness is one root's aggregate fitness score across Dataset.
type rootFitness struct {
	id    core.TeamID
	score float64
}

// scoreRoots evaluates every current root against every input in Dataset
// and sums the configured FitnessFunc's per-input score.
func (h *Harness) scoreRoots() ([]rootFitness, error) {
	fitnessFn := h.Fitness
	if fitnessFn == nil {
		fitnessFn = defaultFitness
	}

	roots := h.Graph.Roots()
	scores := make([]rootFitness, 0, len(roots))
	for _, r := range roots {
		var total float64
		for _, input := range h.Dataset {
			start := time.Now()
			result, err := eval.Graph(h.Graph, r, h.Backend, h.Cache, input)
			if h.Metrics != nil {
				h.Metrics.observeEvalDuration(time.Since(start))
			}
			if err != nil {
				return nil, fmt.Errorf("harness: evaluating root %s: %w", r, err)
			}
			total += fitnessFn(result)
		}
		scores = append(scores, rootFitness{id: r, score: total})
	}

	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	return scores, nil
}

// RunGeneration executes one full generational-loop iteration: produce
// numOffspring offspring via mutate.RootClone from randomly-chosen current
// parents, evaluate every root (parents and offspring) against Dataset,
// demote every root outside the top K by fitness, run a GC/verify pass, and
// return the resulting report. A non-OK report after cleanup is terminal —
// residual mismatches after repair indicate a bug rather than ordinary
// garbage, so the caller is expected to stop the loop on a non-nil error.
func (h *Harness) RunGeneration(numOffspring, k int) (*verify.Report, error) {
	parents := h.Graph.Roots()
	if len(parents) == 0 {
		return nil, fmt.Errorf("harness: no roots to select parents from")
	}

	for i := 0; i < numOffspring; i++ {
		parent := parents[h.RNG.Intn(len(parents))]
		if _, err := mutate.RootClone(h.Graph, parent, h.Config.Mutation, h.RNG, h.Backend, h.Cache); err != nil {
			return nil, fmt.Errorf("harness: root-clone mutation: %w", err)
		}
		if h.Metrics != nil {
			h.Metrics.observeMutation("root_clone")
		}
	}

	scores, err := h.scoreRoots()
	if err != nil {
		return nil, err
	}

	if k > 0 && k < len(scores) {
		for _, s := range scores[k:] {
			if err := h.Graph.RemoveRoot(s.id); err != nil {
				return nil, fmt.Errorf("harness: demoting non-elite root %s: %w", s.id, err)
			}
		}
	}

	beforeGC := h.Graph.Stats()
	report, err := verify.Verify(h.Graph, true, h.Cache)
	if err != nil {
		return report, fmt.Errorf("harness: gc/verify pass could not repair the graph: %w", err)
	}
	if !report.OK() {
		return report, fmt.Errorf("harness: verifier found %d residual invariant violation(s) after cleanup", len(report.Issues))
	}

	if h.Metrics != nil {
		afterGC := h.Graph.Stats()
		h.Metrics.observeGeneration()
		h.Metrics.observeOrphansRemoved("team", beforeGC.TeamCount-afterGC.TeamCount)
		h.Metrics.observeOrphansRemoved("program", beforeGC.ProgramCount-afterGC.ProgramCount)
		h.Metrics.observeVerifyIssues(len(report.Issues))
		stats := h.Cache.Stats()
		h.Metrics.observeCacheStats(stats.Hits, stats.Misses)
	}

	return report, nil
}

// Run drives the generational loop for Config.Generations iterations (or
// until EarlyStopCallback returns true between generations), invoking every
// registered EpochCallback after each completed generation. It stops and
// returns an error immediately if a generation's verifier report is
// terminal.
func (h *Harness) Run(ctx context.Context, numOffspringPerGen, k int) error {
	for gen := 1; gen <= h.Config.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		report, err := h.RunGeneration(numOffspringPerGen, k)
		if err != nil {
			return err
		}

		for _, cb := range h.EpochCallbacks {
			cb(gen, report)
		}

		if h.EarlyStopCallback != nil && h.EarlyStopCallback() {
			return nil
		}
	}
	return nil
}
