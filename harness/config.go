package harness

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/arborix-labs/tpg/cache"
	"github.com/arborix-labs/tpg/mutate"
)

var validate = validator.New()

// Config is the evolutionary harness's full configuration: population
// shape, cache strategy, and the embedded mutation-operator probabilities,
// loaded from a single YAML document the way ahrav/go-gavel loads its
// GraphConfig.
type Config struct {
	// PopulationSize is the number of initial root teams Bootstrap creates.
	// The number of roots kept after each generation's demotion step is the
	// k argument of RunGeneration/Run, not this field.
	PopulationSize int `yaml:"population_size" validate:"required,min=1"`

	// Generations is the number of generational-loop iterations Run
	// executes before returning.
	Generations int `yaml:"generations" validate:"required,min=1"`

	// CacheMode selects the evaluation cache's storage strategy: "off",
	// "per_input", or "lru".
	CacheMode string `yaml:"cache_mode" validate:"required,oneof=off per_input lru"`

	// CacheMaxSize bounds per-program entries when CacheMode is "lru"; the
	// zero value falls back to cache.DefaultMaxSize.
	CacheMaxSize int `yaml:"cache_max_size" validate:"min=0"`

	// WarmupParallelism bounds the number of concurrent goroutines the
	// warmup phase runs.
	WarmupParallelism int `yaml:"warmup_parallelism" validate:"required,min=1"`

	// Mutation holds the five mutation-operator probabilities applied to
	// each generation's offspring. An all-zero value is legitimate (a
	// generation that only clones, never edits), so it carries no
	// "required" tag of its own; Validate still recurses into it below.
	Mutation mutate.Config `yaml:"mutation"`
}

// Validate reports whether every field satisfies its struct tag, and
// recurses into Mutation via its own Validate so both layers of the
// reference corpus's config-validation pattern are enforced.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Mutation.Validate()
}

// cacheMode resolves the configured string into a cache.Mode.
func (c Config) cacheMode() cache.Mode {
	switch c.CacheMode {
	case "per_input":
		return cache.PerInput
	case "lru":
		return cache.LRU
	default:
		return cache.Off
	}
}

// LoadConfig decodes a YAML document from r into a Config and validates it,
// mirroring ahrav/go-gavel's load-then-validate config layering.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("harness: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("harness: invalid config: %w", err)
	}
	return &cfg, nil
}
