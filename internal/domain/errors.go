package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Catalog errors
	ErrMsgSeedNotFound  = "seed not found"
	ErrMsgPlantNotFound = "plant not found"
	ErrMsgEmptyLootTable = "loot table is empty"

	// Inventory/ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgRecordNotFound    = "inventory record not found"
	ErrMsgNotOwned          = "not owned by player"

	// Garden errors
	ErrMsgPlantNotReady        = "plant is not ready for harvest"
	ErrMsgGrowingPlantNotFound = "growing plant not found"

	// Room errors
	ErrMsgRoomNotFound           = "room not found"
	ErrMsgRoomFull               = "room is full"
	ErrMsgNotInRoom              = "player is not in a room"
	ErrMsgAmbiguousSelector      = "exactly one of room id or join code must be provided"
	ErrMsgPrivateRoomRequiresCode = "private rooms can only be joined using a join code"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Catalog errors
	ErrSeedNotFound  = errors.New(ErrMsgSeedNotFound)
	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)

	// EmptyLootTable indicates a broken seed definition. It is a content
	// defect, not a user error, and is surfaced as a server-side fault.
	ErrEmptyLootTable = errors.New(ErrMsgEmptyLootTable)

	// Inventory/ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrRecordNotFound    = errors.New(ErrMsgRecordNotFound)
	ErrNotOwned          = errors.New(ErrMsgNotOwned)

	// Garden errors
	ErrPlantNotReady        = errors.New(ErrMsgPlantNotReady)
	ErrGrowingPlantNotFound = errors.New(ErrMsgGrowingPlantNotFound)

	// Room errors
	ErrRoomNotFound            = errors.New(ErrMsgRoomNotFound)
	ErrRoomFull                = errors.New(ErrMsgRoomFull)
	ErrNotInRoom               = errors.New(ErrMsgNotInRoom)
	ErrAmbiguousSelector       = errors.New(ErrMsgAmbiguousSelector)
	ErrPrivateRoomRequiresCode = errors.New(ErrMsgPrivateRoomRequiresCode)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// NotReadyError is returned when a plant is harvested before maturity.
// It wraps ErrPlantNotReady and carries the remaining time so the caller
// can show a countdown.
type NotReadyError struct {
	RemainingSeconds int
}

func (e *NotReadyError) Error() string {
	return ErrMsgPlantNotReady
}

// Unwrap allows errors.Is(err, ErrPlantNotReady) to match.
func (e *NotReadyError) Unwrap() error {
	return ErrPlantNotReady
}
