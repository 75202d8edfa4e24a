package backend_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix-labs/tpg/backend"
)

func TestDecodeAndEvaluateReferenceGenomes(t *testing.T) {
	b := backend.StackBackend{}

	cases := []struct {
		name  string
		g     backend.Genome
		input []float64
		want  float64
	}{
		{"A(1,2,3)", backend.GenomeA(), []float64{1, 2, 3}, 2.0 / 3.0},
		{"A(1,2,1)", backend.GenomeA(), []float64{1, 2, 1}, 2.0},
		{"B(1,2,3)", backend.GenomeB(), []float64{1, 2, 3}, 1.5},
		{"C(1,2,3)", backend.GenomeC(), []float64{1, 2, 3}, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exec, err := b.Decode(tc.g)
			require.NoError(t, err)
			got, err := b.Evaluate(exec, tc.input)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestDecodeRejectsEmptyGenome(t *testing.T) {
	b := backend.StackBackend{}
	_, err := b.Decode(backend.Genome{})
	require.ErrorIs(t, err, backend.ErrEmptyGenome)
}

func TestDecodeRejectsUnbalancedGenome(t *testing.T) {
	b := backend.StackBackend{}
	_, err := b.Decode(backend.Genome{{Op: backend.OpMul}})
	require.ErrorIs(t, err, backend.ErrStackUnderflow)

	_, err = b.Decode(backend.Genome{
		{Op: backend.OpPushInput, Operand: 0},
		{Op: backend.OpPushInput, Operand: 1},
	})
	require.ErrorIs(t, err, backend.ErrNotSingleResult)
}

func TestEvaluateRejectsOutOfRangeInput(t *testing.T) {
	b := backend.StackBackend{}
	exec, err := b.Decode(backend.GenomeC())
	require.NoError(t, err)
	_, err = b.Evaluate(exec, []float64{1})
	require.ErrorIs(t, err, backend.ErrInputIndexOutOfRange)
}

func TestDeepCopyIsIndependentSlice(t *testing.T) {
	b := backend.StackBackend{}
	orig := backend.GenomeA()
	cloneAny := b.DeepCopy(orig)
	clone := cloneAny.(backend.Genome)
	require.Equal(t, orig, clone)

	clone[0].Const = 99
	require.NotEqual(t, orig[0].Const, clone[0].Const)
}

func TestMakeRandomGenomeIsDecodable(t *testing.T) {
	b := backend.StackBackend{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		g := b.MakeRandomGenome(backend.RandomGenomeConfig{NumInputs: 3, MaxLen: 5}, rng)
		_, err := b.Decode(g)
		require.NoError(t, err)
	}
}

func TestMutateStaysDecodable(t *testing.T) {
	b := backend.StackBackend{}
	rng := rand.New(rand.NewSource(2))
	g := backend.GenomeA()
	for i := 0; i < 20; i++ {
		mutatedAny := b.Mutate(g, rng)
		mutated := mutatedAny.(backend.Genome)
		_, err := b.Decode(mutated)
		require.NoError(t, err)
		g = mutated
	}
}

func TestHashIsDeterministicAndSensitiveToInput(t *testing.T) {
	b := backend.StackBackend{}
	h1 := b.Hash([]float64{1, 2, 3})
	h2 := b.Hash([]float64{1, 2, 3})
	h3 := b.Hash([]float64{1, 2, 4})
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}
