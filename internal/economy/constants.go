package economy

// Log message constants
const (
	LogMsgBuySeedCalled   = "BuySeed called"
	LogMsgSeedPurchased   = "Seed purchased"
	LogMsgSellPlantCalled = "SellPlant called"
	LogMsgPlantSold       = "Plant sold"
)

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)
