package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayerHeader   = "Missing " + HeaderPlayerID + " header"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidParam      = "Invalid %s parameter"

	// Operation failure messages
	ErrMsgRegisterPlayerFailed = "Failed to register player"
	ErrMsgGetShopFailed        = "Failed to load the shop"
	ErrMsgBuySeedFailed        = "Failed to buy seed"
	ErrMsgSellPlantFailed      = "Failed to sell plant"
	ErrMsgPlantSeedFailed      = "Failed to plant seed"
	ErrMsgGetGardenFailed      = "Failed to load the garden"
	ErrMsgHarvestFailed        = "Failed to harvest plant"
	ErrMsgGetInventoryFailed   = "Failed to load inventory"
	ErrMsgCreateRoomFailed     = "Failed to create room"
	ErrMsgJoinRoomFailed       = "Failed to join room"
	ErrMsgLeaveRoomFailed      = "Failed to leave room"
	ErrMsgSearchRoomsFailed    = "Failed to search rooms"
	ErrMsgSendMessageFailed    = "Failed to send message"
	ErrMsgGetHistoryFailed     = "Failed to load chat history"
)

// HeaderPlayerID identifies the acting player on every gameplay request.
const HeaderPlayerID = "X-Player-ID"

// Success messages for API responses
const (
	MsgLeftRoomSuccess = "Left the room"
)
