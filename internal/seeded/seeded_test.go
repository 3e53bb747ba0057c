package seeded_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csdsc-cmd/Retail-Agents-Portal/internal/seeded"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := seeded.New(42)
	b := seeded.New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}
	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, a.Float64Between(0, 1), b.Float64Between(0, 1))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := seeded.New(1)
	b := seeded.New(2)
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestIntBetweenBounds(t *testing.T) {
	s := seeded.New(7)
	for i := 0; i < 1000; i++ {
		v := s.IntBetween(25, 35)
		require.GreaterOrEqual(t, v, 25)
		require.LessOrEqual(t, v, 35)
	}
	// Degenerate range collapses to min.
	assert.Equal(t, 5, s.IntBetween(5, 5))
}

func TestFloatBetweenRounds(t *testing.T) {
	s := seeded.New(7)
	for i := 0; i < 100; i++ {
		v := s.FloatBetween(0.88, 0.99, 2)
		assert.Equal(t, v, seeded.Round(v, 2))
		assert.GreaterOrEqual(t, v, 0.88)
		assert.LessOrEqual(t, v, 0.99)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1971.0, seeded.Round((4.50-0.12)*450, 2))
	assert.Equal(t, 0.1235, seeded.Round(0.12345, 4))
	assert.Equal(t, 1.0, seeded.Round(0.995, 2)) // half away from zero
}

func TestBetweenWithinWindow(t *testing.T) {
	s := seeded.New(11)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(72 * time.Hour)
	for i := 0; i < 100; i++ {
		ts := s.Between(from, to)
		require.False(t, ts.Before(from))
		require.False(t, ts.After(to))
	}
	assert.Equal(t, from, s.Between(from, from))
}

func TestPickNDistinct(t *testing.T) {
	s := seeded.New(3)
	items := []string{"a", "b", "c", "d", "e"}

	got := seeded.PickN(s, items, 3)
	require.Len(t, got, 3)
	seen := map[string]bool{}
	for _, v := range got {
		require.False(t, seen[v], "duplicate %q", v)
		seen[v] = true
	}

	// Requesting more than available returns everything.
	all := seeded.PickN(s, items, 10)
	assert.Len(t, all, len(items))
	// Source list is untouched.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestWeightedRespectsWeights(t *testing.T) {
	s := seeded.New(9)
	choices := []seeded.Choice[string]{
		{Value: "common", Weight: 9},
		{Value: "rare", Weight: 1},
	}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[seeded.Weighted(s, choices)]++
	}
	require.Greater(t, counts["common"], counts["rare"])
	// Rare should land near 10%.
	assert.InDelta(t, 1000, counts["rare"], 200)
}

func TestWeightedZeroWeightNeverChosen(t *testing.T) {
	s := seeded.New(13)
	choices := []seeded.Choice[string]{
		{Value: "always", Weight: 5},
		{Value: "never", Weight: 0},
	}
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "always", seeded.Weighted(s, choices))
	}
}

func TestAlphaNumAndDigits(t *testing.T) {
	s := seeded.New(17)
	sku := s.AlphaNum(8)
	require.Len(t, sku, 8)
	for _, c := range sku {
		assert.True(t, (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'), "unexpected char %q", c)
	}
	num := s.Digits(8)
	require.Len(t, num, 8)
	for _, c := range num {
		assert.True(t, c >= '0' && c <= '9')
	}
}
