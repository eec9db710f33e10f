package domain

// SeedStock is one player's holding of one seed. The row is deleted when
// quantity reaches zero; quantity is never negative.
type SeedStock struct {
	PlayerID string `json:"player_id" db:"player_id"`
	SeedID   int    `json:"seed_id" db:"seed_id"`
	SeedName string `json:"seed_name"`
	Quantity int    `json:"quantity" db:"quantity"`
}

// PlantRecord is one harvested plant in a player's inventory. Value is
// rolled at harvest time and frozen; selling credits exactly this value
// regardless of the plant's current value range.
type PlantRecord struct {
	ID        int    `json:"id" db:"plant_inventory_id"`
	PlayerID  string `json:"player_id" db:"player_id"`
	PlantID   int    `json:"plant_id" db:"plant_id"`
	PlantName string `json:"plant_name"`
	Rarity    Rarity `json:"rarity"`
	Value     int    `json:"value" db:"value"`
}

// Inventory is the combined view returned to the player.
type Inventory struct {
	Seeds  []SeedStock   `json:"seeds"`
	Plants []PlantRecord `json:"plants"`
}
