package domain

const (
	// StartingBalance is granted to every newly registered player
	StartingBalance = 100

	// MaxTransactionQuantity caps a single buy to prevent abuse
	MaxTransactionQuantity = 100

	// JoinCodeLength is the length of private room join codes
	JoinCodeLength = 4

	// JoinCodeAlphabet is the character set join codes are drawn from
	JoinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Room capacity bounds
	MinRoomCapacity = 1
	MaxRoomCapacity = 10

	// MinRoomNameLength is the minimum length of a room name
	MinRoomNameLength = 3

	// MaxChatMessageLength caps a single chat message
	MaxChatMessageLength = 500
)
