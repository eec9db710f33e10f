package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

type gardenRepository struct {
	db *pgxpool.Pool
}

// NewGardenRepository creates a PostgreSQL-backed growing plant store.
func NewGardenRepository(db *pgxpool.Pool) repository.Garden {
	return &gardenRepository{db: db}
}

const growingPlantColumns = `growing_plant_id, player_id, seed_id, planted_at, growth_time, is_ready`

func scanGrowingPlant(row pgx.Row) (*domain.GrowingPlant, error) {
	var (
		g  domain.GrowingPlant
		id pgtype.UUID
	)
	err := row.Scan(&g.ID, &id, &g.SeedID, &g.PlantedAt, &g.GrowthTime, &g.IsReady)
	if err != nil {
		return nil, err
	}
	g.PlayerID = uuidToString(id)
	g.PlantedAt = g.PlantedAt.UTC()
	return &g, nil
}

func (r *gardenRepository) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlant, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+growingPlantColumns+` FROM growing_plants
		 WHERE player_id = $1 ORDER BY planted_at, growing_plant_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGrowingPlants, err)
	}
	defer rows.Close()

	return collectGrowingPlants(rows, ErrMsgFailedToListGrowingPlants)
}

func (r *gardenRepository) MarkPlantReady(ctx context.Context, growingPlantID int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE growing_plants SET is_ready = TRUE WHERE growing_plant_id = $1`, growingPlantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarkPlantReady, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrGrowingPlantNotFound, growingPlantID)
	}
	return nil
}

func (r *gardenRepository) ListDuePlants(ctx context.Context, now time.Time) ([]domain.GrowingPlant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+growingPlantColumns+` FROM growing_plants
		 WHERE NOT is_ready
		   AND planted_at + make_interval(secs => growth_time) <= $1
		 ORDER BY growing_plant_id`, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDuePlants, err)
	}
	defer rows.Close()

	return collectGrowingPlants(rows, ErrMsgFailedToListDuePlants)
}

func collectGrowingPlants(rows pgx.Rows, opErrMsg string) ([]domain.GrowingPlant, error) {
	plants := []domain.GrowingPlant{}
	for rows.Next() {
		plant, err := scanGrowingPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opErrMsg, err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opErrMsg, err)
	}
	return plants, nil
}

func (r *gardenRepository) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT pc.plant_id, p.plant_name, p.rarity, pc.times_grown, pc.first_discovered, pc.last_grown
		 FROM plant_codex pc
		 JOIN plants p ON p.plant_id = pc.plant_id
		 WHERE pc.player_id = $1
		 ORDER BY pc.first_discovered, pc.plant_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCodex, err)
	}
	defer rows.Close()

	entries := []domain.CodexEntry{}
	for rows.Next() {
		var e domain.CodexEntry
		if err := rows.Scan(&e.PlantID, &e.PlantName, &e.Rarity, &e.TimesGrown, &e.FirstDiscovered, &e.LastGrown); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCodex, err)
		}
		e.FirstDiscovered = e.FirstDiscovered.UTC()
		e.LastGrown = e.LastGrown.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCodex, err)
	}
	return entries, nil
}

func (r *gardenRepository) BeginTx(ctx context.Context) (repository.GardenTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &gardenTx{tx: tx}, nil
}

type gardenTx struct {
	tx pgx.Tx
}

func (t *gardenTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *gardenTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *gardenTx) GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error) {
	return getSeedStockForUpdate(ctx, t.tx, playerID, seedID)
}

func (t *gardenTx) SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error {
	return setSeedStock(ctx, t.tx, playerID, seedID, quantity)
}

func (t *gardenTx) InsertGrowingPlant(ctx context.Context, plant *domain.GrowingPlant) (int, error) {
	playerUUID, err := parsePlayerUUID(plant.PlayerID)
	if err != nil {
		return 0, err
	}

	var id int
	err = t.tx.QueryRow(ctx,
		`INSERT INTO growing_plants (player_id, seed_id, planted_at, growth_time)
		 VALUES ($1, $2, $3, $4)
		 RETURNING growing_plant_id`,
		playerUUID, plant.SeedID, plant.PlantedAt.UTC(), plant.GrowthTime).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertGrowingPlant, err)
	}
	return id, nil
}

func (t *gardenTx) GetGrowingPlantForUpdate(ctx context.Context, growingPlantID int) (*domain.GrowingPlant, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+growingPlantColumns+` FROM growing_plants
		 WHERE growing_plant_id = $1 FOR UPDATE`, growingPlantID)

	plant, err := scanGrowingPlant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrGrowingPlantNotFound, growingPlantID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGrowingPlant, err)
	}
	return plant, nil
}

func (t *gardenTx) DeleteGrowingPlant(ctx context.Context, growingPlantID int) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM growing_plants WHERE growing_plant_id = $1`, growingPlantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteGrowingPlant, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrGrowingPlantNotFound, growingPlantID)
	}
	return nil
}

func (t *gardenTx) InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error) {
	return insertPlantRecord(ctx, t.tx, record)
}

func (t *gardenTx) RecordDiscovery(ctx context.Context, playerID string, plantID int, grownAt time.Time) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	_, err = t.tx.Exec(ctx,
		`INSERT INTO plant_codex (player_id, plant_id, times_grown, first_discovered, last_grown)
		 VALUES ($1, $2, 1, $3, $3)
		 ON CONFLICT (player_id, plant_id)
		 DO UPDATE SET times_grown = plant_codex.times_grown + 1, last_grown = EXCLUDED.last_grown`,
		playerUUID, plantID, grownAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordDiscovery, err)
	}
	return nil
}
