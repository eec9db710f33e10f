package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
)

func harvestRequest(t *testing.T, svc *MockGameService, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/v1/garden/{id}/harvest", HandleHarvest(svc))

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(HeaderPlayerID, testPlayerID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleHarvest_Success(t *testing.T) {
	svc := new(MockGameService)
	svc.On("Harvest", mock.Anything, testPlayerID, 7).
		Return(&domain.HarvestResult{
			Plant: domain.Plant{ID: 2, Name: "golden_carrot", Rarity: domain.RarityRare},
			Value: 88,
		}, nil)

	rec := harvestRequest(t, svc, "/api/v1/garden/7/harvest")

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.HarvestResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "golden_carrot", result.Plant.Name)
	assert.Equal(t, 88, result.Value)
	svc.AssertExpectations(t)
}

func TestHandleHarvest_NotReadyCarriesCountdown(t *testing.T) {
	svc := new(MockGameService)
	svc.On("Harvest", mock.Anything, testPlayerID, 7).
		Return(nil, &domain.NotReadyError{RemainingSeconds: 23})

	rec := harvestRequest(t, svc, "/api/v1/garden/7/harvest")

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp NotReadyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ErrMsgPlantNotReadyError, resp.Error)
	assert.Equal(t, 23, resp.RemainingSeconds)
}

func TestHandleHarvest_InvalidID(t *testing.T) {
	svc := new(MockGameService)

	rec := harvestRequest(t, svc, "/api/v1/garden/seven/harvest")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Harvest", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePlantSeed_RequiresRoomMembership(t *testing.T) {
	svc := new(MockGameService)
	svc.On("PlantSeed", mock.Anything, testPlayerID, "carrot_seed").
		Return(nil, fmt.Errorf("%w: join a room before planting", domain.ErrNotInRoom))

	rec := postJSON(t, HandlePlantSeed(svc), "/api/v1/garden/plant",
		PlantSeedRequest{SeedName: "carrot_seed"}, true)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ErrMsgNotInRoomError, resp.Error)
}

func TestHandlePlantSeed_Success(t *testing.T) {
	svc := new(MockGameService)
	svc.On("PlantSeed", mock.Anything, testPlayerID, "carrot_seed").
		Return(&domain.GrowingPlant{ID: 3, PlayerID: testPlayerID, SeedID: 1, GrowthTime: 45}, nil)

	rec := postJSON(t, HandlePlantSeed(svc), "/api/v1/garden/plant",
		PlantSeedRequest{SeedName: "carrot_seed"}, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var plant domain.GrowingPlant
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&plant))
	assert.Equal(t, 45, plant.GrowthTime)
}

func TestHandleGetGrowingPlants(t *testing.T) {
	svc := new(MockGameService)
	svc.On("GetGrowingPlants", mock.Anything, testPlayerID).
		Return([]domain.GrowingPlantView{
			{ID: 3, SeedName: "carrot_seed", GrowthTime: 45, ElapsedSeconds: 10},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/garden/growing", nil)
	req.Header.Set(HeaderPlayerID, testPlayerID)
	rec := httptest.NewRecorder()
	HandleGetGrowingPlants(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var views []domain.GrowingPlantView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, "carrot_seed", views[0].SeedName)
}

func TestHandleGetCodex(t *testing.T) {
	svc := new(MockGameService)
	svc.On("GetCodex", mock.Anything, testPlayerID).
		Return([]domain.CodexEntry{
			{PlantID: 1, PlantName: "carrot", Rarity: domain.RarityCommon, TimesGrown: 7},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/garden/codex", nil)
	req.Header.Set(HeaderPlayerID, testPlayerID)
	rec := httptest.NewRecorder()
	HandleGetCodex(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []domain.CodexEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].TimesGrown)
	assert.Equal(t, domain.RarityCommon, entries[0].Rarity)
}
