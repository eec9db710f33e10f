package loot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
)

func entries(weights ...int) []domain.LootEntry {
	out := make([]domain.LootEntry, len(weights))
	for i, w := range weights {
		out[i] = domain.LootEntry{SeedID: 1, PlantID: i + 1, Weight: w}
	}
	return out
}

func TestNewTable_EmptyFails(t *testing.T) {
	_, err := NewTable(nil)
	require.ErrorIs(t, err, domain.ErrEmptyLootTable)

	_, err = NewTable([]domain.LootEntry{})
	require.ErrorIs(t, err, domain.ErrEmptyLootTable)
}

func TestNewTable_NonPositiveWeightFails(t *testing.T) {
	_, err := NewTable(entries(10, 0))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewTable(entries(10, -5))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSample_SingleEntryAlwaysWins(t *testing.T) {
	table, err := NewTable(entries(7))
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(1)).Float64
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, table.Sample(rnd))
	}
}

func TestSample_BoundaryRolls(t *testing.T) {
	table, err := NewTable(entries(1, 1))
	require.NoError(t, err)

	// Lowest possible roll lands on the first entry,
	// highest possible roll on the last.
	assert.Equal(t, 1, table.Sample(func() float64 { return 0.0 }))
	assert.Equal(t, 2, table.Sample(func() float64 { return 0.999999 }))
}

// TestSample_FrequencyConvergence verifies the sampler is statistically
// unbiased: each outcome's empirical frequency over many draws converges to
// weight / total weight.
func TestSample_FrequencyConvergence(t *testing.T) {
	weights := []int{10, 30, 60}
	table, err := NewTable(entries(weights...))
	require.NoError(t, err)
	require.Equal(t, 100, table.TotalWeight())

	const draws = 50000
	rnd := rand.New(rand.NewSource(42)).Float64

	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		counts[table.Sample(rnd)]++
	}

	for i, w := range weights {
		expected := float64(w) / 100.0
		actual := float64(counts[i+1]) / draws
		assert.InDelta(t, expected, actual, 0.01,
			"plant %d: expected frequency %.2f, got %.4f", i+1, expected, actual)
	}
}

func TestSample_OneShotHelper(t *testing.T) {
	rnd := rand.New(rand.NewSource(3)).Float64

	id, err := Sample(entries(5, 5), rnd)
	require.NoError(t, err)
	assert.Contains(t, []int{1, 2}, id)

	_, err = Sample(nil, rnd)
	require.ErrorIs(t, err, domain.ErrEmptyLootTable)
}

func BenchmarkSample(b *testing.B) {
	table, err := NewTable(entries(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(9)).Float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Sample(rnd)
	}
}
