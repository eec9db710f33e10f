package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

type catalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a PostgreSQL-backed content catalog.
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &catalogRepository{db: db}
}

const seedColumns = `seed_id, seed_name, seed_description, cost, min_time, max_time`

func scanSeed(row pgx.Row) (*domain.Seed, error) {
	var s domain.Seed
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Cost, &s.MinTime, &s.MaxTime)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *catalogRepository) GetSeed(ctx context.Context, seedID int) (*domain.Seed, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+seedColumns+` FROM seeds WHERE seed_id = $1`, seedID)

	seed, err := scanSeed(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrSeedNotFound, seedID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSeed, err)
	}

	if err := r.loadLootEntries(ctx, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func (r *catalogRepository) ListSeeds(ctx context.Context) ([]domain.Seed, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+seedColumns+` FROM seeds ORDER BY seed_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
	}
	defer rows.Close()

	seeds := []domain.Seed{}
	for rows.Next() {
		seed, err := scanSeed(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
		}
		seeds = append(seeds, *seed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSeeds, err)
	}

	for i := range seeds {
		if err := r.loadLootEntries(ctx, &seeds[i]); err != nil {
			return nil, err
		}
	}
	return seeds, nil
}

func (r *catalogRepository) loadLootEntries(ctx context.Context, seed *domain.Seed) error {
	rows, err := r.db.Query(ctx,
		`SELECT seed_id, plant_id, weight FROM loot_entries WHERE seed_id = $1 ORDER BY plant_id`,
		seed.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetLootEntries, err)
	}
	defer rows.Close()

	entries := []domain.LootEntry{}
	for rows.Next() {
		var e domain.LootEntry
		if err := rows.Scan(&e.SeedID, &e.PlantID, &e.Weight); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToGetLootEntries, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetLootEntries, err)
	}

	seed.LootEntries = entries
	return nil
}

const plantColumns = `plant_id, plant_name, rarity, min_value, max_value`

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var p domain.Plant
	err := row.Scan(&p.ID, &p.Name, &p.Rarity, &p.MinValue, &p.MaxValue)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) GetPlant(ctx context.Context, plantID int) (*domain.Plant, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+plantColumns+` FROM plants WHERE plant_id = $1`, plantID)

	plant, err := scanPlant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPlantNotFound, plantID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlant, err)
	}
	return plant, nil
}

func (r *catalogRepository) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+plantColumns+` FROM plants ORDER BY plant_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlants, err)
	}
	defer rows.Close()

	plants := []domain.Plant{}
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlants, err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlants, err)
	}
	return plants, nil
}
