package vocab

import (
	"math/rand/v2"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.GreaterOrEqual(t, len(Terms), 20)
	require.NotEmpty(t, Connectors)
	require.Len(t, Chars, 21)
	for _, c := range Chars {
		require.Equal(t, 1, utf8.RuneCountInString(c), "char %q", c)
	}
}

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 50; i++ {
		got := Terms.Sample(rng, 15)
		require.Len(t, got, 15)
		seen := make(map[string]struct{}, len(got))
		for _, s := range got {
			_, dup := seen[s]
			require.False(t, dup, "duplicate %q", s)
			seen[s] = struct{}{}
		}
	}
}

func TestSampleClamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	l := List{"a", "b", "c"}

	require.Len(t, l.Sample(rng, 10), 3)
	require.Empty(t, l.Sample(rng, -1))
	require.Equal(t, List{"a", "b", "c"}, l)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	l := List{"x", "y"}
	for i := 0; i < 20; i++ {
		require.Contains(t, l, l.Pick(rng))
	}
}
