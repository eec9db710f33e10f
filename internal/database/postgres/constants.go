package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgInvalidPlayerID            = "invalid player id"
	ErrMsgFailedToInsertPlayer       = "failed to insert player"
	ErrMsgFailedToGetPlayer          = "failed to get player"
	ErrMsgFailedToGetPlayerByName    = "failed to get player by username"
	ErrMsgFailedToLockPlayer         = "failed to lock player row"
	ErrMsgFailedToSetPlayerRoom      = "failed to set player room"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetSeed         = "failed to get seed"
	ErrMsgFailedToListSeeds       = "failed to list seeds"
	ErrMsgFailedToGetLootEntries  = "failed to get loot entries"
	ErrMsgFailedToGetPlant        = "failed to get plant"
	ErrMsgFailedToListPlants      = "failed to list plants"
)

// Error Messages - Economy Operations
const (
	ErrMsgFailedToGetBalance         = "failed to get balance"
	ErrMsgFailedToSetBalance         = "failed to set balance"
	ErrMsgFailedToGetSeedStock       = "failed to get seed stock"
	ErrMsgFailedToSetSeedStock       = "failed to set seed stock"
	ErrMsgFailedToGetInventory       = "failed to get inventory"
	ErrMsgFailedToInsertPlantRecord  = "failed to insert plant record"
	ErrMsgFailedToGetPlantRecord     = "failed to get plant record"
	ErrMsgFailedToDeletePlantRecord  = "failed to delete plant record"
)

// Error Messages - Garden Operations
const (
	ErrMsgFailedToListGrowingPlants  = "failed to list growing plants"
	ErrMsgFailedToInsertGrowingPlant = "failed to insert growing plant"
	ErrMsgFailedToGetGrowingPlant    = "failed to get growing plant"
	ErrMsgFailedToDeleteGrowingPlant = "failed to delete growing plant"
	ErrMsgFailedToMarkPlantReady     = "failed to mark plant ready"
	ErrMsgFailedToListDuePlants      = "failed to list due plants"
	ErrMsgFailedToGetCodex           = "failed to get plant codex"
	ErrMsgFailedToRecordDiscovery    = "failed to record plant discovery"
)

// Error Messages - Room Operations
const (
	ErrMsgFailedToInsertRoom     = "failed to insert room"
	ErrMsgFailedToGetRoom        = "failed to get room"
	ErrMsgFailedToSearchRooms    = "failed to search rooms"
	ErrMsgFailedToGetMembers     = "failed to get room members"
	ErrMsgFailedToCountMembers   = "failed to count room members"
	ErrMsgFailedToDeleteRoom     = "failed to delete room"
	ErrMsgFailedToCheckJoinCode  = "failed to check join code"
)

// Error Messages - Chat Operations
const (
	ErrMsgFailedToInsertMessage = "failed to insert chat message"
	ErrMsgFailedToListMessages  = "failed to list chat messages"
)
