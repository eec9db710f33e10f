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

type playerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a PostgreSQL-backed player store.
func NewPlayerRepository(db *pgxpool.Pool) repository.Player {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	playerUUID, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO players (player_id, username, balance, registered_at)
		 VALUES ($1, $2, $3, $4)`,
		playerUUID, player.Username, player.Balance, player.Registered)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

func (r *playerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT player_id, username, balance, room_id, registered_at
		 FROM players WHERE player_id = $1`, playerUUID)
	return scanPlayer(row, ErrMsgFailedToGetPlayer)
}

func (r *playerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		`SELECT player_id, username, balance, room_id, registered_at
		 FROM players WHERE username = $1`, username)
	return scanPlayer(row, ErrMsgFailedToGetPlayerByName)
}

func scanPlayer(row pgx.Row, opErrMsg string) (*domain.Player, error) {
	var (
		p      domain.Player
		id     pgtype.UUID
		roomID pgtype.Int4
	)
	err := row.Scan(&id, &p.Username, &p.Balance, &roomID, &p.Registered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", opErrMsg, err)
	}

	p.ID = uuidToString(id)
	p.RoomID = int4ToIntPtr(roomID)
	return &p, nil
}
