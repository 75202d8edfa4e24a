package backend

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// RandomGenomeConfig parameterizes StackBackend.MakeRandomGenome.
// StackBackend.Mutate does not take it, so its edits are not bounded by it.
type RandomGenomeConfig struct {
	// NumInputs bounds which input indices OpPushInput may reference.
	NumInputs int
	// MaxLen bounds the number of operands pushed; a generated genome has
	// at most 2*MaxLen-1 instructions.
	MaxLen int
}

var binaryOps = []Opcode{OpAdd, OpSub, OpMul, OpDiv}

// MakeRandomGenome builds a random, well-formed stack program: it always
// ends with exactly enough binary operators to reduce every pushed operand
// down to a single value, so the result is immediately Decode-able.
func (StackBackend) MakeRandomGenome(config any, rng *rand.Rand) any {
	cfg, ok := config.(RandomGenomeConfig)
	if !ok || cfg.NumInputs <= 0 {
		cfg = RandomGenomeConfig{NumInputs: 1, MaxLen: 3}
	}
	if cfg.MaxLen < 1 {
		cfg.MaxLen = 3
	}

	numOperands := 1 + rng.Intn(cfg.MaxLen)
	program := make(Genome, 0, 2*numOperands-1)
	for i := 0; i < numOperands; i++ {
		if cfg.NumInputs > 0 && rng.Intn(4) != 0 {
			program = append(program, Instruction{Op: OpPushInput, Operand: rng.Intn(cfg.NumInputs)})
		} else {
			program = append(program, Instruction{Op: OpPushConst, Const: rng.Float64()*2 - 1})
		}
		if i > 0 {
			program = append(program, Instruction{Op: binaryOps[rng.Intn(len(binaryOps))]})
		}
	}
	return program
}

// Mutate returns a structurally-valid variant of genome: it picks one
// instruction uniformly at random and, if it is an operand, shifts its input
// index by one or nudges its constant, otherwise replaces the binary operator
// with a randomly drawn one (possibly the same). It never changes the
// instruction count, so the result stays balanced without needing to
// re-derive it. A shifted input index is not checked against the input
// length; Evaluate reports ErrInputIndexOutOfRange if it overshoots.
func (StackBackend) Mutate(genome any, rng *rand.Rand) any {
	program, ok := genome.(Genome)
	if !ok || len(program) == 0 {
		return genome
	}
	clone := make(Genome, len(program))
	copy(clone, program)

	i := rng.Intn(len(clone))
	switch clone[i].Op {
	case OpPushInput:
		if clone[i].Operand > 0 && rng.Intn(2) == 0 {
			clone[i].Operand--
		} else {
			clone[i].Operand++
		}
	case OpPushConst:
		clone[i].Const += rng.NormFloat64() * 0.1
	default:
		clone[i].Op = binaryOps[rng.Intn(len(binaryOps))]
	}
	return clone
}

// Hash derives a 64-bit cache key from an input vector via FNV-1a over the
// vector's bit pattern. No domain-specific hashing library appears anywhere
// in the reference corpus, and this has no collision-resistance or
// adversarial-input requirement, so the standard library's hash/fnv covers
// it without reaching for a third-party hasher.
func (StackBackend) Hash(input []float64) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range input {
		bits := math.Float64bits(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
