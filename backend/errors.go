package backend

import "errors"

// Sentinel errors returned by StackBackend. Checked via errors.Is; never
// %w-wrapped at the definition site.
var (
	// ErrEmptyGenome indicates Decode was given a genome with no instructions.
	ErrEmptyGenome = errors.New("backend: genome has no instructions")

	// ErrStackUnderflow indicates a binary operator ran with fewer than two
	// values on the stack.
	ErrStackUnderflow = errors.New("backend: stack underflow")

	// ErrInputIndexOutOfRange indicates a PushInput instruction referenced
	// an index beyond the evaluated input vector's length.
	ErrInputIndexOutOfRange = errors.New("backend: input index out of range")

	// ErrNotSingleResult indicates the genome did not leave exactly one
	// value on the stack when it finished running.
	ErrNotSingleResult = errors.New("backend: genome did not reduce to a single value")

	// ErrUnknownOpcode indicates an Instruction carries an Opcode this
	// backend does not know how to execute.
	ErrUnknownOpcode = errors.New("backend: unknown opcode")
)
