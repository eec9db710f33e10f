package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
)

func testSeed() *domain.Seed {
	return &domain.Seed{
		ID:      1,
		Name:    "carrot_seed",
		Cost:    150,
		MinTime: 30,
		MaxTime: 60,
		LootEntries: []domain.LootEntry{
			{SeedID: 1, PlantID: 1, Weight: 100},
		},
	}
}

func TestBuySeed_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)
	mockCatalog := new(MockCatalogService)

	// Two seeds at 150 cost 300; balance 250 cannot cover it.
	mockCatalog.On("GetSeedByName", mock.Anything, "carrot_seed").Return(testSeed(), nil)
	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetBalanceForUpdate", mock.Anything, "player-1").Return(250, nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(mockRepo, mockCatalog, event.NewMemoryBus())

	_, err := svc.BuySeed(context.Background(), "player-1", "carrot_seed", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	mockTx.AssertNotCalled(t, "SetBalance", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBuySeed_ExactBalanceSucceeds(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)
	mockCatalog := new(MockCatalogService)

	mockCatalog.On("GetSeedByName", mock.Anything, "carrot_seed").Return(testSeed(), nil)
	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetBalanceForUpdate", mock.Anything, "player-1").Return(300, nil)
	mockTx.On("SetBalance", mock.Anything, "player-1", 0).Return(nil)
	mockTx.On("GetSeedStockForUpdate", mock.Anything, "player-1", 1).Return(3, nil)
	mockTx.On("SetSeedStock", mock.Anything, "player-1", 1, 5).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(mockRepo, mockCatalog, event.NewMemoryBus())

	result, err := svc.BuySeed(context.Background(), "player-1", "carrot_seed", 2)
	require.NoError(t, err)
	assert.Equal(t, 300, result.TotalCost)
	assert.Equal(t, 0, result.NewBalance)
	assert.Equal(t, 2, result.Quantity)

	mockTx.AssertExpectations(t)
}

func TestBuySeed_QuantityValidation(t *testing.T) {
	svc := NewService(new(MockEconomyRepository), new(MockCatalogService), nil)

	for _, quantity := range []int{0, -1, domain.MaxTransactionQuantity + 1} {
		_, err := svc.BuySeed(context.Background(), "player-1", "carrot_seed", quantity)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity %d", quantity)
	}
}

func TestBuySeed_UnknownSeed(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	mockCatalog.On("GetSeedByName", mock.Anything, "unknown_seed").Return(nil, domain.ErrSeedNotFound)

	svc := NewService(new(MockEconomyRepository), mockCatalog, nil)

	_, err := svc.BuySeed(context.Background(), "player-1", "unknown_seed", 1)
	assert.ErrorIs(t, err, domain.ErrSeedNotFound)
}

func TestBuySeed_PublishesEvent(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)
	mockCatalog := new(MockCatalogService)

	mockCatalog.On("GetSeedByName", mock.Anything, "carrot_seed").Return(testSeed(), nil)
	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetBalanceForUpdate", mock.Anything, "player-1").Return(500, nil)
	mockTx.On("SetBalance", mock.Anything, "player-1", 350).Return(nil)
	mockTx.On("GetSeedStockForUpdate", mock.Anything, "player-1", 1).Return(0, nil)
	mockTx.On("SetSeedStock", mock.Anything, "player-1", 1, 1).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.Type(domain.EventTypeSeedBought), func(ctx context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})

	svc := NewService(mockRepo, mockCatalog, bus)

	_, err := svc.BuySeed(context.Background(), "player-1", "carrot_seed", 1)
	require.NoError(t, err)
	require.Len(t, published, 1)

	payload := published[0].Payload.(domain.SeedBoughtPayload)
	assert.Equal(t, 150, payload.TotalCost)
	assert.Equal(t, 350, payload.Balance)
}

func TestSellPlant_CreditsFrozenValue(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)

	record := &domain.PlantRecord{
		ID:        42,
		PlayerID:  "player-1",
		PlantID:   2,
		PlantName: "golden_carrot",
		Value:     450,
	}

	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetPlantRecordForUpdate", mock.Anything, 42).Return(record, nil)
	mockTx.On("GetBalanceForUpdate", mock.Anything, "player-1").Return(100, nil)
	mockTx.On("DeletePlantRecord", mock.Anything, 42).Return(nil)
	mockTx.On("SetBalance", mock.Anything, "player-1", 550).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(mockRepo, new(MockCatalogService), event.NewMemoryBus())

	result, err := svc.SellPlant(context.Background(), "player-1", 42)
	require.NoError(t, err)
	assert.Equal(t, 450, result.Value)
	assert.Equal(t, 550, result.NewBalance)
	assert.Equal(t, "golden_carrot", result.PlantName)

	mockTx.AssertExpectations(t)
}

func TestSellPlant_NotOwned(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)

	record := &domain.PlantRecord{ID: 42, PlayerID: "player-2", PlantName: "carrot", Value: 20}

	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetPlantRecordForUpdate", mock.Anything, 42).Return(record, nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(mockRepo, new(MockCatalogService), nil)

	_, err := svc.SellPlant(context.Background(), "player-1", 42)
	assert.ErrorIs(t, err, domain.ErrNotOwned)

	mockTx.AssertNotCalled(t, "DeletePlantRecord", mock.Anything, mock.Anything)
}

func TestSellPlant_RecordGone(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockTx := new(MockEconomyTx)

	mockRepo.On("BeginTx", mock.Anything).Return(mockTx, nil)
	mockTx.On("GetPlantRecordForUpdate", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(mockRepo, new(MockCatalogService), nil)

	_, err := svc.SellPlant(context.Background(), "player-1", 42)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestGetBalance(t *testing.T) {
	mockRepo := new(MockEconomyRepository)
	mockRepo.On("GetBalance", mock.Anything, "player-1").Return(275, nil)

	svc := NewService(mockRepo, new(MockCatalogService), nil)

	balance, err := svc.GetBalance(context.Background(), "player-1")
	require.NoError(t, err)
	assert.Equal(t, 275, balance)
}
