package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/repository"
)

type economyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a PostgreSQL-backed ledger and inventory store.
func NewEconomyRepository(db *pgxpool.Pool) repository.Economy {
	return &economyRepository{db: db}
}

func (r *economyRepository) GetBalance(ctx context.Context, playerID string) (int, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	var balance int
	err = r.db.QueryRow(ctx,
		`SELECT balance FROM players WHERE player_id = $1`, playerUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPlayerNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return balance, nil
}

func (r *economyRepository) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	inventory := &domain.Inventory{
		Seeds:  []domain.SeedStock{},
		Plants: []domain.PlantRecord{},
	}

	seedRows, err := r.db.Query(ctx,
		`SELECT si.seed_id, s.seed_name, si.quantity
		 FROM seed_inventory si
		 JOIN seeds s ON s.seed_id = si.seed_id
		 WHERE si.player_id = $1
		 ORDER BY s.seed_name`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer seedRows.Close()

	for seedRows.Next() {
		stock := domain.SeedStock{PlayerID: playerID}
		if err := seedRows.Scan(&stock.SeedID, &stock.SeedName, &stock.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		inventory.Seeds = append(inventory.Seeds, stock)
	}
	if err := seedRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	plantRows, err := r.db.Query(ctx,
		`SELECT pi.plant_inventory_id, pi.plant_id, p.plant_name, p.rarity, pi.value
		 FROM plant_inventory pi
		 JOIN plants p ON p.plant_id = pi.plant_id
		 WHERE pi.player_id = $1
		 ORDER BY pi.plant_inventory_id`, playerUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}
	defer plantRows.Close()

	for plantRows.Next() {
		record := domain.PlantRecord{PlayerID: playerID}
		if err := plantRows.Scan(&record.ID, &record.PlantID, &record.PlantName, &record.Rarity, &record.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
		}
		inventory.Plants = append(inventory.Plants, record)
	}
	if err := plantRows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	return inventory, nil
}

func (r *economyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &economyTx{tx: tx}, nil
}

type economyTx struct {
	tx pgx.Tx
}

func (t *economyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *economyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *economyTx) GetBalanceForUpdate(ctx context.Context, playerID string) (int, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	var balance int
	err = t.tx.QueryRow(ctx,
		`SELECT balance FROM players WHERE player_id = $1 FOR UPDATE`, playerUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrPlayerNotFound
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return balance, nil
}

func (t *economyTx) SetBalance(ctx context.Context, playerID string, balance int) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE players SET balance = $2 WHERE player_id = $1`, playerUUID, balance)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetBalance, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (t *economyTx) GetSeedStockForUpdate(ctx context.Context, playerID string, seedID int) (int, error) {
	return getSeedStockForUpdate(ctx, t.tx, playerID, seedID)
}

func (t *economyTx) SetSeedStock(ctx context.Context, playerID string, seedID, quantity int) error {
	return setSeedStock(ctx, t.tx, playerID, seedID, quantity)
}

func (t *economyTx) InsertPlantRecord(ctx context.Context, record *domain.PlantRecord) (int, error) {
	return insertPlantRecord(ctx, t.tx, record)
}

func (t *economyTx) GetPlantRecordForUpdate(ctx context.Context, recordID int) (*domain.PlantRecord, error) {
	var (
		record domain.PlantRecord
		id     pgtype.UUID
	)
	err := t.tx.QueryRow(ctx,
		`SELECT pi.plant_inventory_id, pi.player_id, pi.plant_id, p.plant_name, p.rarity, pi.value
		 FROM plant_inventory pi
		 JOIN plants p ON p.plant_id = pi.plant_id
		 WHERE pi.plant_inventory_id = $1
		 FOR UPDATE OF pi`, recordID).
		Scan(&record.ID, &id, &record.PlantID, &record.PlantName, &record.Rarity, &record.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrRecordNotFound, recordID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlantRecord, err)
	}

	record.PlayerID = uuidToString(id)
	return &record, nil
}

func (t *economyTx) DeletePlantRecord(ctx context.Context, recordID int) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM plant_inventory WHERE plant_inventory_id = $1`, recordID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlantRecord, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrRecordNotFound, recordID)
	}
	return nil
}

// Seed stock helpers are shared with the garden transaction, which debits
// stock when planting.

func getSeedStockForUpdate(ctx context.Context, tx pgx.Tx, playerID string, seedID int) (int, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return 0, err
	}

	var quantity int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM seed_inventory WHERE player_id = $1 AND seed_id = $2 FOR UPDATE`,
		playerUUID, seedID).Scan(&quantity)
	if err != nil {
		// A missing row is simply zero stock.
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetSeedStock, err)
	}
	return quantity, nil
}

func setSeedStock(ctx context.Context, tx pgx.Tx, playerID string, seedID, quantity int) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM seed_inventory WHERE player_id = $1 AND seed_id = $2`,
			playerUUID, seedID)
	} else {
		_, err = tx.Exec(ctx,
			`INSERT INTO seed_inventory (player_id, seed_id, quantity)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (player_id, seed_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
			playerUUID, seedID, quantity)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetSeedStock, err)
	}
	return nil
}

func insertPlantRecord(ctx context.Context, tx pgx.Tx, record *domain.PlantRecord) (int, error) {
	playerUUID, err := parsePlayerUUID(record.PlayerID)
	if err != nil {
		return 0, err
	}

	var id int
	err = tx.QueryRow(ctx,
		`INSERT INTO plant_inventory (player_id, plant_id, value)
		 VALUES ($1, $2, $3)
		 RETURNING plant_inventory_id`,
		playerUUID, record.PlantID, record.Value).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlantRecord, err)
	}
	return id, nil
}
