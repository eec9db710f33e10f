package garden

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/repository"
)

// Service defines the interface for plant lifecycle operations.
type Service interface {
	PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error)
	GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error)
	Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error)
	TimeRemaining(ctx context.Context, playerID string, growingPlantID int) (int, error)
	// GetCodex returns the player's plant discovery stats, oldest first.
	GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error)
	// SweepReady latches readiness for every due plant and notifies
	// owners. Run on an interval; harvest correctness never depends on it.
	SweepReady(ctx context.Context) (int, error)
}

type service struct {
	repo      repository.Garden
	catalog   catalog.Service
	publisher event.Bus
	rnd       func() float64
	now       func() time.Time
}

// Option configures the service
type Option func(*service)

// WithRandSource sets a custom random source for deterministic testing
func WithRandSource(rnd func() float64) Option {
	return func(s *service) {
		s.rnd = rnd
	}
}

// WithClock sets a custom clock for deterministic testing
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new garden service.
func NewService(repo repository.Garden, cat catalog.Service, publisher event.Bus, opts ...Option) Service {
	s := &service{
		repo:      repo,
		catalog:   cat,
		publisher: publisher,
		rnd:       rand.Float64,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetGrowingPlants returns the player's growing plants with progress data.
// Plants observed past maturity get their readiness latch persisted so a
// later clock skew can never make them appear un-ready again.
func (s *service) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error) {
	log := logger.FromContext(ctx)

	plants, err := s.repo.GetGrowingPlants(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get growing plants: %w", err)
	}

	now := s.now()
	views := make([]domain.GrowingPlantView, 0, len(plants))
	for i := range plants {
		plant := &plants[i]
		if !plant.IsReady && plant.IsHarvestable(now) {
			if err := s.repo.MarkPlantReady(ctx, plant.ID); err != nil {
				log.Warn("Failed to persist readiness latch", "growingPlantID", plant.ID, "error", err)
			} else {
				plant.IsReady = true
			}
		}

		seedName := fmt.Sprintf("seed #%d", plant.SeedID)
		if seed, err := s.catalog.GetSeed(ctx, plant.SeedID); err == nil {
			seedName = seed.Name
		}

		elapsed := int(now.Sub(plant.PlantedAt) / time.Second)
		if elapsed > plant.GrowthTime {
			elapsed = plant.GrowthTime
		}
		if elapsed < 0 {
			elapsed = 0
		}

		views = append(views, domain.GrowingPlantView{
			ID:             plant.ID,
			SeedName:       seedName,
			GrowthTime:     plant.GrowthTime,
			ElapsedSeconds: elapsed,
		})
	}
	return views, nil
}

// TimeRemaining reports whole seconds until the given plant matures.
func (s *service) TimeRemaining(ctx context.Context, playerID string, growingPlantID int) (int, error) {
	plants, err := s.repo.GetGrowingPlants(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get growing plants: %w", err)
	}
	for i := range plants {
		if plants[i].ID == growingPlantID {
			return plants[i].TimeRemaining(s.now()), nil
		}
	}
	return 0, fmt.Errorf("%w: id %d", domain.ErrGrowingPlantNotFound, growingPlantID)
}

// GetCodex returns the player's discovery stats straight from storage.
func (s *service) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	entries, err := s.repo.GetCodex(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get codex: %w", err)
	}
	return entries, nil
}

// SweepReady latches readiness for every plant at or past maturity and
// publishes a plant.ready event per latched plant.
func (s *service) SweepReady(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.repo.ListDuePlants(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list due plants: %w", err)
	}

	latched := 0
	for i := range due {
		plant := &due[i]
		if err := s.repo.MarkPlantReady(ctx, plant.ID); err != nil {
			log.Warn("Failed to latch readiness", "growingPlantID", plant.ID, "error", err)
			continue
		}
		latched++

		if s.publisher != nil {
			seedName := ""
			if seed, err := s.catalog.GetSeed(ctx, plant.SeedID); err == nil {
				seedName = seed.Name
			}
			if err := s.publisher.Publish(ctx, event.NewPlantReadyEvent(plant.PlayerID, plant.ID, seedName)); err != nil {
				log.Warn("Failed to publish plant.ready event", "error", err)
			}
		}
	}

	if latched > 0 {
		log.Info("Readiness sweep complete", "latched", latched)
	}
	return latched, nil
}

// rollInclusive draws a uniform integer from [min, max].
func rollInclusive(rnd func() float64, min, max int) int {
	if max <= min {
		return min
	}
	n := min + int(rnd()*float64(max-min+1))
	if n > max {
		n = max
	}
	return n
}
