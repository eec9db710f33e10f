package domain

import "time"

// GrowingPlant is one planted seed instance. The growth duration is drawn
// once at planting from the seed's [MinTime, MaxTime] and never re-rolled.
type GrowingPlant struct {
	ID         int       `json:"id" db:"growing_plant_id"`
	PlayerID   string    `json:"player_id" db:"player_id"`
	SeedID     int       `json:"seed_id" db:"seed_id"`
	PlantedAt  time.Time `json:"planted_at" db:"planted_at"` // always UTC
	GrowthTime int       `json:"growth_time" db:"growth_time"` // seconds
	IsReady    bool      `json:"is_ready" db:"is_ready"`
}

// ReadyAt returns the instant the plant matures.
func (g *GrowingPlant) ReadyAt() time.Time {
	return g.PlantedAt.Add(time.Duration(g.GrowthTime) * time.Second)
}

// IsHarvestable evaluates readiness lazily at the given instant.
// Once the latch has been observed true it stays true regardless of the
// clock, so an already-ready plant can never appear un-ready again.
func (g *GrowingPlant) IsHarvestable(now time.Time) bool {
	if g.IsReady {
		return true
	}
	return !now.UTC().Before(g.ReadyAt())
}

// TimeRemaining returns whole seconds until maturity, never negative.
// Ready plants report zero.
func (g *GrowingPlant) TimeRemaining(now time.Time) int {
	if g.IsReady {
		return 0
	}
	remaining := g.ReadyAt().Sub(now.UTC())
	if remaining <= 0 {
		return 0
	}
	// Round up so a plant with any time left never reports 0,
	// keeping time_remaining() == 0 equivalent to harvestable.
	secs := int((remaining + time.Second - 1) / time.Second)
	return secs
}

// GrowingPlantView is the listing shape returned to the player:
// identity plus progress data for rendering a growth bar.
type GrowingPlantView struct {
	ID             int    `json:"id"`
	SeedName       string `json:"seed_name"`
	GrowthTime     int    `json:"growth_time"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
}

// HarvestResult is the outcome of a successful harvest: the plant drawn
// from the seed's loot table and the sell value rolled for it.
type HarvestResult struct {
	Plant Plant `json:"plant"`
	Value int   `json:"value"`
}

// CodexEntry is one player's discovery stats for a plant: how many times
// they have grown it and when it was first and most recently obtained.
// Entries exist only for plants the player has harvested at least once.
type CodexEntry struct {
	PlantID         int       `json:"plant_id" db:"plant_id"`
	PlantName       string    `json:"plant_name" db:"plant_name"`
	Rarity          Rarity    `json:"rarity" db:"rarity"`
	TimesGrown      int       `json:"times_grown" db:"times_grown"`
	FirstDiscovered time.Time `json:"first_discovered" db:"first_discovered"`
	LastGrown       time.Time `json:"last_grown" db:"last_grown"`
}
