package mutate

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Config holds the five mutation-operator probabilities. Each must be in
// [0,1]; Validate enforces that via struct tags the same
// way the reference corpus validates unit configuration.
type Config struct {
	// RemoveProgramRate: probability of dropping a random program from the
	// cloned root (only applied when it would leave at least one program).
	RemoveProgramRate float64 `yaml:"remove_program_rate" validate:"min=0,max=1"`

	// AddProgramRate: probability of inserting a program that exists
	// elsewhere in the graph but not in the cloned root.
	AddProgramRate float64 `yaml:"add_program_rate" validate:"min=0,max=1"`

	// ProgramMutationRate: per-program probability of replacing it with a
	// genome-mutated clone.
	ProgramMutationRate float64 `yaml:"program_mutation_rate" validate:"min=0,max=1"`

	// ProgramActionRate: per-program probability of replacing it with a
	// clone carrying a different assigned action.
	ProgramActionRate float64 `yaml:"program_action_rate" validate:"min=0,max=1"`

	// ActionMapRate: probability of applying one add/change/remove
	// action-map edit to the cloned root.
	ActionMapRate float64 `yaml:"action_map_rate" validate:"min=0,max=1"`
}

// Validate reports whether every probability is within [0,1].
func (c Config) Validate() error {
	return validate.Struct(c)
}
