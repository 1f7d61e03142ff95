package randomx_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge/kitforge/randomx"
)

const seed int64 = 1234

func TestNew_SeedPolicy(t *testing.T) {
	t.Parallel()

	// seed==0 and the explicit default must produce identical streams.
	a, err := randomx.Token(randomx.New(0), 12)
	require.NoError(t, err)
	b, err := randomx.Token(randomx.New(1), 12)
	require.NoError(t, err)
	assert.Equal(t, a, b, "seed 0 resolves to the fixed default seed")

	c, err := randomx.Token(randomx.New(99), 12)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "distinct seeds produce distinct streams")
}

func TestDeterminism_SameSeedSameStream(t *testing.T) {
	t.Parallel()

	s1, s2 := randomx.New(seed), randomx.New(seed)
	for i := 0; i < 10; i++ {
		a, err := randomx.IntN(s1, 0, 1000)
		require.NoError(t, err)
		b, err := randomx.IntN(s2, 0, 1000)
		require.NoError(t, err)
		assert.Equal(t, a, b, "draw %d", i)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	seq := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		got, err := randomx.Pick(src, seq)
		require.NoError(t, err)
		assert.Contains(t, seq, got)
	}

	_, err := randomx.Pick(src, []string{})
	assert.ErrorIs(t, err, randomx.ErrEmpty)
}

func TestShuffle_IsCopyAndPermutation(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]int(nil), in...)

	out := randomx.Shuffle(src, in)
	assert.Equal(t, orig, in, "input must stay untouched")
	require.Len(t, out, len(in))

	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	assert.Equal(t, orig, sorted, "output is a permutation of the input")
}

func TestIntN_BoundsAndErrors(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	for i := 0; i < 50; i++ {
		v, err := randomx.IntN(src, -3, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
	}

	v, err := randomx.IntN(src, 7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v, "degenerate interval is allowed")

	_, err = randomx.IntN(src, 5, 4)
	assert.ErrorIs(t, err, randomx.ErrBadRange)
}

func TestFloat_BoundsAndErrors(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	for i := 0; i < 50; i++ {
		v, err := randomx.Float(src, 2.5, 3.5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 2.5)
		assert.Less(t, v, 3.5)
	}

	_, err := randomx.Float(src, 1.0, 0.0)
	assert.ErrorIs(t, err, randomx.ErrBadRange)
}

func TestSample(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	seq := []int{1, 2, 3, 4, 5, 6}

	got, err := randomx.Sample(src, seq, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Uniqueness: all sampled values are distinct members of seq.
	seen := map[int]bool{}
	for _, v := range got {
		assert.Contains(t, seq, v)
		assert.False(t, seen[v], "duplicate %d in sample", v)
		seen[v] = true
	}

	whole, err := randomx.Sample(src, seq, len(seq))
	require.NoError(t, err)
	assert.Len(t, whole, len(seq))

	empty, err := randomx.Sample(src, seq, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = randomx.Sample(src, seq, -1)
	assert.ErrorIs(t, err, randomx.ErrBadSample)
	_, err = randomx.Sample(src, seq, len(seq)+1)
	assert.ErrorIs(t, err, randomx.ErrBadSample)
}

func TestWeightedChoice(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)
	items := []string{"rare", "common"}

	// A zero weight can never be drawn.
	for i := 0; i < 30; i++ {
		got, err := randomx.WeightedChoice(src, items, []float64{0, 1})
		require.NoError(t, err)
		assert.Equal(t, "common", got)
	}

	// Heavily skewed weights favor the heavy item.
	heavy := 0
	for i := 0; i < 200; i++ {
		got, err := randomx.WeightedChoice(src, items, []float64{1, 99})
		require.NoError(t, err)
		if got == "common" {
			heavy++
		}
	}
	assert.Greater(t, heavy, 150, "99:1 weighting must dominate")
}

func TestWeightedChoice_Errors(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)

	_, err := randomx.WeightedChoice(src, []string{}, []float64{})
	assert.ErrorIs(t, err, randomx.ErrEmpty)

	_, err = randomx.WeightedChoice(src, []string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, randomx.ErrLengthMismatch)

	_, err = randomx.WeightedChoice(src, []string{"a", "b"}, []float64{1, -1})
	assert.ErrorIs(t, err, randomx.ErrBadWeights)

	_, err = randomx.WeightedChoice(src, []string{"a", "b"}, []float64{0, 0})
	assert.ErrorIs(t, err, randomx.ErrBadWeights)
}

func TestNameAndToken(t *testing.T) {
	t.Parallel()

	src := randomx.New(seed)

	name, err := randomx.Name(src, 8)
	require.NoError(t, err)
	require.Len(t, name, 8)
	for _, r := range name {
		assert.True(t, r >= 'a' && r <= 'z', "name must be lowercase, got %q", r)
	}

	token, err := randomx.Token(src, 16)
	require.NoError(t, err)
	require.Len(t, token, 16)
	for _, r := range token {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, ok, "token must be alphanumeric, got %q", r)
	}

	_, err = randomx.Name(src, 0)
	assert.ErrorIs(t, err, randomx.ErrNonPositive)
	_, err = randomx.Token(src, -5)
	assert.ErrorIs(t, err, randomx.ErrNonPositive)
}

func TestNilSourceFallsBackToDefault(t *testing.T) {
	// Not parallel: the nil fallback advances the shared default stream.
	v, err := randomx.IntN(nil, 0, 10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, 10)
}
