package backend

import "fmt"

// Opcode names one instruction in a Genome.
type Opcode int

const (
	// OpPushInput pushes input[Operand] onto the stack.
	OpPushInput Opcode = iota
	// OpPushConst pushes Const onto the stack.
	OpPushConst
	// OpAdd pops b, a (in that push order) and pushes a+b.
	OpAdd
	// OpSub pops b, a and pushes a-b.
	OpSub
	// OpMul pops b, a and pushes a*b.
	OpMul
	// OpDiv pops b, a and pushes a/b. Division by zero pushes +Inf/-Inf/NaN
	// per normal float64 semantics rather than erroring — bidders are
	// expected to tolerate degenerate bids, not crash on them.
	OpDiv
)

// Instruction is one step of a Genome's stack program.
type Instruction struct {
	Op      Opcode
	Operand int     // input index, meaningful only for OpPushInput
	Const   float64 // constant value, meaningful only for OpPushConst
}

// Genome is the opaque payload StackBackend operates on: a flat sequence of
// stack-machine instructions evaluated left to right, expected to leave
// exactly one value on the stack.
type Genome []Instruction

// stackExecutable is the decoded, evaluable form of a Genome. Decoding is
// cheap here (a validity scan) but kept distinct from Genome so cloning a
// program only touches the Genome — the executable is rebuilt on first
// evaluation of the clone.
type stackExecutable struct {
	program Genome
	stack   []float64 // reused scratch space across evaluations until Reset
}

// Reset clears scratch state between evaluations: an executable's hidden
// state must not leak across calls or be shared between concurrent warmup
// workers.
func (e *stackExecutable) Reset() {
	e.stack = e.stack[:0]
}

// StackBackend is the reference ProgramBackend implementation used by this
// module's scenario tests: genomes are small arithmetic stack programs,
// capable of expressing every reference bidder the scenario tests exercise
// (A = x1*x2/x3, B = x1/x2*x3, C = x1*x2).
type StackBackend struct{}

// Decode validates program and wraps it as a stackExecutable. It fails
// fast on structural problems (empty genome, unknown opcode, stack
// imbalance) rather than deferring them to Evaluate, since a malformed
// genome can never evaluate correctly regardless of input. Input indices
// depend on the input's length and are checked by Evaluate instead.
func (StackBackend) Decode(genome any) (Executable, error) {
	program, ok := genome.(Genome)
	if !ok {
		return nil, fmt.Errorf("backend: genome is %T, not backend.Genome", genome)
	}
	if len(program) == 0 {
		return nil, ErrEmptyGenome
	}

	depth := 0
	for _, ins := range program {
		switch ins.Op {
		case OpPushInput, OpPushConst:
			depth++
		case OpAdd, OpSub, OpMul, OpDiv:
			if depth < 2 {
				return nil, ErrStackUnderflow
			}
			depth--
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownOpcode, ins.Op)
		}
	}
	if depth != 1 {
		return nil, ErrNotSingleResult
	}

	return &stackExecutable{program: program, stack: make([]float64, 0, len(program))}, nil
}

// Evaluate runs exec's program against input, returning the single value
// left on the stack.
func (StackBackend) Evaluate(exec Executable, input []float64) (float64, error) {
	e, ok := exec.(*stackExecutable)
	if !ok {
		return 0, fmt.Errorf("backend: executable is %T, not a stack executable", exec)
	}
	e.stack = e.stack[:0]

	for _, ins := range e.program {
		switch ins.Op {
		case OpPushInput:
			if ins.Operand < 0 || ins.Operand >= len(input) {
				return 0, ErrInputIndexOutOfRange
			}
			e.stack = append(e.stack, input[ins.Operand])
		case OpPushConst:
			e.stack = append(e.stack, ins.Const)
		default:
			if len(e.stack) < 2 {
				return 0, ErrStackUnderflow
			}
			b := e.stack[len(e.stack)-1]
			a := e.stack[len(e.stack)-2]
			e.stack = e.stack[:len(e.stack)-2]
			var r float64
			switch ins.Op {
			case OpAdd:
				r = a + b
			case OpSub:
				r = a - b
			case OpMul:
				r = a * b
			case OpDiv:
				r = a / b
			default:
				return 0, fmt.Errorf("%w: %d", ErrUnknownOpcode, ins.Op)
			}
			e.stack = append(e.stack, r)
		}
	}

	if len(e.stack) != 1 {
		return 0, ErrNotSingleResult
	}
	return e.stack[0], nil
}

// Reset clears exec's scratch state.
func (StackBackend) Reset(exec Executable) {
	if e, ok := exec.(*stackExecutable); ok {
		e.Reset()
	}
}

// DeepCopy clones a Genome by value; Instruction has no reference fields,
// so a fresh slice copy is a true deep copy.
func (StackBackend) DeepCopy(genome any) any {
	program, ok := genome.(Genome)
	if !ok {
		return genome
	}
	clone := make(Genome, len(program))
	copy(clone, program)
	return clone
}
