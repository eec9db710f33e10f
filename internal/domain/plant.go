package domain

// Rarity represents the rarity tier of a plant
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// Valid reports whether the rarity is one of the known tiers.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Plant is a harvestable plant definition. Immutable at runtime;
// rows are owned by the catalog and only change through content authoring.
type Plant struct {
	ID       int    `json:"plant_id" db:"plant_id"`
	Name     string `json:"name" db:"plant_name"`
	Rarity   Rarity `json:"rarity" db:"rarity"`
	MinValue int    `json:"min_value" db:"min_value"` // Sell value range, inclusive
	MaxValue int    `json:"max_value" db:"max_value"`
}

// PlantSource describes one seed a plant can be harvested from,
// with the normalized drop chance for that seed's loot table.
type PlantSource struct {
	SeedName string  `json:"seed"`
	Chance   float64 `json:"chance"` // percentage, weight / sum(weights) * 100
}
