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

type roomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a PostgreSQL-backed room and membership store.
func NewRoomRepository(db *pgxpool.Pool) repository.Room {
	return &roomRepository{db: db}
}

const roomColumns = `room_id, room_name, created_at, is_private, join_code, max_members, owner_id`

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var (
		room     domain.Room
		joinCode pgtype.Text
		ownerID  pgtype.UUID
	)
	err := row.Scan(&room.ID, &room.Name, &room.CreatedAt, &room.IsPrivate,
		&joinCode, &room.MaxMembers, &ownerID)
	if err != nil {
		return nil, err
	}

	room.JoinCode = textToStr(joinCode)
	room.OwnerID = uuidToString(ownerID)
	return &room, nil
}

func (r *roomRepository) GetRoomByID(ctx context.Context, roomID int) (*domain.Room, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE room_id = $1`, roomID)

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrRoomNotFound, roomID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoom, err)
	}
	return room, nil
}

func (r *roomRepository) GetRoomByJoinCode(ctx context.Context, joinCode string) (*domain.Room, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE join_code = $1`, joinCode)

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoom, err)
	}
	return room, nil
}

func (r *roomRepository) SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.room_id, r.room_name, r.created_at, r.is_private, r.max_members,
		        r.owner_id, o.username,
		        (SELECT COUNT(*) FROM players m WHERE m.room_id = r.room_id) AS member_count
		 FROM rooms r
		 JOIN players o ON o.player_id = r.owner_id
		 WHERE ($1 = '' OR r.room_name ILIKE '%' || $1 || '%')
		 ORDER BY r.created_at DESC, r.room_id DESC`, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchRooms, err)
	}
	defer rows.Close()

	summaries := []domain.RoomSummary{}
	for rows.Next() {
		var (
			s       domain.RoomSummary
			ownerID pgtype.UUID
		)
		err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.IsPrivate, &s.MaxMembers,
			&ownerID, &s.OwnerName, &s.MemberCount)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchRooms, err)
		}
		s.OwnerID = uuidToString(ownerID)
		s.IsFull = s.MemberCount >= s.MaxMembers
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSearchRooms, err)
	}
	return summaries, nil
}

func (r *roomRepository) GetMembers(ctx context.Context, roomID int) ([]domain.RoomMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.player_id, p.username, (p.player_id = r.owner_id) AS is_owner
		 FROM players p
		 JOIN rooms r ON r.room_id = p.room_id
		 WHERE p.room_id = $1
		 ORDER BY is_owner DESC, p.username`, roomID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMembers, err)
	}
	defer rows.Close()

	members := []domain.RoomMember{}
	for rows.Next() {
		var (
			m  domain.RoomMember
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &m.Username, &m.IsOwner); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMembers, err)
		}
		m.PlayerID = uuidToString(id)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMembers, err)
	}
	return members, nil
}

func (r *roomRepository) GetPlayerRoom(ctx context.Context, playerID string) (*domain.Room, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT r.room_id, r.room_name, r.created_at, r.is_private, r.join_code,
		        r.max_members, r.owner_id
		 FROM players p
		 JOIN rooms r ON r.room_id = p.room_id
		 WHERE p.player_id = $1`, playerUUID)

	room, err := scanRoom(row)
	if err != nil {
		// No row means either an unknown player or a null back-reference;
		// callers only need the membership answer.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotInRoom
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoom, err)
	}
	return room, nil
}

func (r *roomRepository) JoinCodeExists(ctx context.Context, joinCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE join_code = $1)`, joinCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckJoinCode, err)
	}
	return exists, nil
}

func (r *roomRepository) BeginTx(ctx context.Context) (repository.RoomTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &roomTx{tx: tx}, nil
}

type roomTx struct {
	tx pgx.Tx
}

func (t *roomTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *roomTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *roomTx) InsertRoom(ctx context.Context, room *domain.Room) (int, error) {
	ownerUUID, err := parsePlayerUUID(room.OwnerID)
	if err != nil {
		return 0, err
	}

	var id int
	err = t.tx.QueryRow(ctx,
		`INSERT INTO rooms (room_name, created_at, is_private, join_code, max_members, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING room_id`,
		room.Name, room.CreatedAt, room.IsPrivate, strToText(room.JoinCode),
		room.MaxMembers, ownerUUID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertRoom, err)
	}
	return id, nil
}

func (t *roomTx) GetRoomForUpdate(ctx context.Context, roomID int) (*domain.Room, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE room_id = $1 FOR UPDATE`, roomID)

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrRoomNotFound, roomID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoom, err)
	}
	return room, nil
}

func (t *roomTx) GetRoomByJoinCodeForUpdate(ctx context.Context, joinCode string) (*domain.Room, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE join_code = $1 FOR UPDATE`, joinCode)

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoom, err)
	}
	return room, nil
}

func (t *roomTx) DeleteRoom(ctx context.Context, roomID int) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM rooms WHERE room_id = $1`, roomID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRoom, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrRoomNotFound, roomID)
	}
	return nil
}

func (t *roomTx) CountMembers(ctx context.Context, roomID int) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM players WHERE room_id = $1`, roomID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountMembers, err)
	}
	return count, nil
}

func (t *roomTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	row := t.tx.QueryRow(ctx,
		`SELECT player_id, username, balance, room_id, registered_at
		 FROM players WHERE player_id = $1 FOR UPDATE`, playerUUID)
	return scanPlayer(row, ErrMsgFailedToLockPlayer)
}

func (t *roomTx) SetPlayerRoom(ctx context.Context, playerID string, roomID *int) error {
	playerUUID, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE players SET room_id = $2 WHERE player_id = $1`,
		playerUUID, intPtrToInt4(roomID))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetPlayerRoom, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
