package domain

// Seed is a purchasable seed definition. Owns its loot entries.
type Seed struct {
	ID          int    `json:"seed_id" db:"seed_id"`
	Name        string `json:"name" db:"seed_name"`
	Description string `json:"description" db:"seed_description"`
	Cost        int    `json:"cost" db:"cost"`
	MinTime     int    `json:"min_time" db:"min_time"` // Growth duration range in seconds, inclusive
	MaxTime     int    `json:"max_time" db:"max_time"`

	// LootEntries is the seed's loot table. Every seed used in gameplay
	// must have at least one entry with weight > 0.
	LootEntries []LootEntry `json:"loot_entries,omitempty"`
}

// LootEntry maps a seed to one possible harvested plant with an
// unnormalized positive weight. Probability = weight / sum of weights.
type LootEntry struct {
	SeedID  int `json:"seed_id" db:"seed_id"`
	PlantID int `json:"plant_id" db:"plant_id"`
	Weight  int `json:"weight" db:"weight"`
}
