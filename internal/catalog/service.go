package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// DefaultCacheTTL bounds how long authored content changes take to become
// visible to running servers.
const DefaultCacheTTL = 5 * time.Minute

// DropChance is one normalized outcome of a seed's loot table.
type DropChance struct {
	PlantName string        `json:"plant"`
	Rarity    domain.Rarity `json:"rarity"`
	Chance    float64       `json:"chance"` // percentage
}

// SeedListing is the shop view of a seed: the definition plus the
// normalized drop chances of its loot table.
type SeedListing struct {
	Seed  domain.Seed  `json:"seed"`
	Drops []DropChance `json:"drops"`
}

// PlantListing is the encyclopedia view of a plant: the definition plus
// every seed it can be harvested from.
type PlantListing struct {
	Plant   domain.Plant         `json:"plant"`
	Sources []domain.PlantSource `json:"sources"`
}

// Service exposes read access to the seed and plant catalog.
type Service interface {
	GetSeed(ctx context.Context, seedID int) (*domain.Seed, error)
	GetSeedByName(ctx context.Context, name string) (*domain.Seed, error)
	GetPlant(ctx context.Context, plantID int) (*domain.Plant, error)
	GetPlantByName(ctx context.Context, name string) (*domain.Plant, error)
	ListSeeds(ctx context.Context) ([]SeedListing, error)
	ListPlants(ctx context.Context) ([]PlantListing, error)
	InvalidateCache()
}

type service struct {
	repo  repository.Catalog
	cache *contentCache
}

// NewService creates a catalog service backed by repo, caching the content
// snapshot for ttl. A non-positive ttl falls back to DefaultCacheTTL.
func NewService(repo repository.Catalog, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newContentCache(ttl),
	}
}

func (s *service) load(ctx context.Context) (*snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	log := logger.FromContext(ctx)

	seeds, err := s.repo.ListSeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	plants, err := s.repo.ListPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	snap := newSnapshot(seeds, plants)
	s.cache.Set(snap)
	log.Debug("Content snapshot refreshed", "seeds", len(seeds), "plants", len(plants))
	return snap, nil
}

func (s *service) GetSeed(ctx context.Context, seedID int) (*domain.Seed, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	seed, ok := snap.seedsByID[seedID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrSeedNotFound, seedID)
	}
	return seed, nil
}

func (s *service) GetSeedByName(ctx context.Context, name string) (*domain.Seed, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	seed, ok := snap.seedsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSeedNotFound, name)
	}
	return seed, nil
}

func (s *service) GetPlant(ctx context.Context, plantID int) (*domain.Plant, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	plant, ok := snap.plantsByID[plantID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPlantNotFound, plantID)
	}
	return plant, nil
}

func (s *service) GetPlantByName(ctx context.Context, name string) (*domain.Plant, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	plant, ok := snap.plantsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, name)
	}
	return plant, nil
}

// ListSeeds returns every seed with its drop chances, ordered by cost then
// name so the shop renders deterministically.
func (s *service) ListSeeds(ctx context.Context) ([]SeedListing, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]SeedListing, 0, len(snap.seeds))
	for i := range snap.seeds {
		seed := snap.seeds[i]
		listings = append(listings, SeedListing{
			Seed:  seed,
			Drops: dropChances(&seed, snap),
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].Seed.Cost != listings[j].Seed.Cost {
			return listings[i].Seed.Cost < listings[j].Seed.Cost
		}
		return listings[i].Seed.Name < listings[j].Seed.Name
	})
	return listings, nil
}

// ListPlants returns every plant with the seeds it can be obtained from.
func (s *service) ListPlants(ctx context.Context) ([]PlantListing, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sources := make(map[int][]domain.PlantSource)
	for i := range snap.seeds {
		seed := snap.seeds[i]
		total := 0
		for _, entry := range seed.LootEntries {
			total += entry.Weight
		}
		if total <= 0 {
			continue
		}
		for _, entry := range seed.LootEntries {
			sources[entry.PlantID] = append(sources[entry.PlantID], domain.PlantSource{
				SeedName: seed.Name,
				Chance:   float64(entry.Weight) / float64(total) * 100,
			})
		}
	}

	listings := make([]PlantListing, 0, len(snap.plants))
	for i := range snap.plants {
		plant := snap.plants[i]
		listings = append(listings, PlantListing{
			Plant:   plant,
			Sources: sources[plant.ID],
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Plant.Name < listings[j].Plant.Name
	})
	return listings, nil
}

// InvalidateCache drops the cached snapshot, forcing the next read to hit
// the database. Used after content is reseeded.
func (s *service) InvalidateCache() {
	s.cache.Clear()
}

// dropChances normalizes a seed's loot table into percentage chances,
// resolving plant names through the snapshot.
func dropChances(seed *domain.Seed, snap *snapshot) []DropChance {
	total := 0
	for _, entry := range seed.LootEntries {
		total += entry.Weight
	}
	if total <= 0 {
		return nil
	}

	drops := make([]DropChance, 0, len(seed.LootEntries))
	for _, entry := range seed.LootEntries {
		drop := DropChance{
			PlantName: fmt.Sprintf("plant #%d", entry.PlantID),
			Chance:    float64(entry.Weight) / float64(total) * 100,
		}
		if plant, ok := snap.plantsByID[entry.PlantID]; ok {
			drop.PlantName = plant.Name
			drop.Rarity = plant.Rarity
		}
		drops = append(drops, drop)
	}
	return drops
}
