// Package loot implements the weighted loot-table sampler.
//
// Sampling is a pure operation: given a table and a uniform random source
// it draws one outcome with probability proportional to its weight. Tables
// are flattened once into a cumulative-weight prefix array so each draw is
// a single uniform roll plus a binary search, which keeps the draw unbiased
// for any entry count.
package loot

import (
	"fmt"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// tableEntry is one resolved outcome with its cumulative weight.
type tableEntry struct {
	plantID     int
	cumulWeight int // cumulative weight up to and including this entry
}

// Table is the flattened runtime representation of a seed's loot table.
type Table struct {
	entries     []tableEntry
	totalWeight int
}

// NewTable flattens loot entries into a sampling table.
// Returns ErrEmptyLootTable when no entries are supplied and ErrInvalidInput
// when any weight is not positive; both indicate a broken seed definition.
func NewTable(entries []domain.LootEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyLootTable
	}

	t := &Table{entries: make([]tableEntry, 0, len(entries))}
	for _, e := range entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("loot entry for plant %d has weight %d: %w", e.PlantID, e.Weight, domain.ErrInvalidInput)
		}
		t.totalWeight += e.Weight
		t.entries = append(t.entries, tableEntry{
			plantID:     e.PlantID,
			cumulWeight: t.totalWeight,
		})
	}

	return t, nil
}

// TotalWeight returns the sum of all entry weights.
func (t *Table) TotalWeight() int {
	return t.totalWeight
}

// Sample draws one plant ID. rnd must return a uniform float64 in [0, 1).
func (t *Table) Sample(rnd func() float64) int {
	roll := int(rnd() * float64(t.totalWeight))
	lo, hi := 0, len(t.entries)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t.entries[mid].cumulWeight <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return t.entries[lo].plantID
}

// Sample flattens and draws in one call, for callers that sample a table
// only once.
func Sample(entries []domain.LootEntry, rnd func() float64) (int, error) {
	t, err := NewTable(entries)
	if err != nil {
		return 0, err
	}
	return t.Sample(rnd), nil
}
