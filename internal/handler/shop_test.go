package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/economy"
)

const testPlayerID = "11111111-2222-3333-4444-555555555555"

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}, withPlayer bool) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	if withPlayer {
		req.Header.Set(HeaderPlayerID, testPlayerID)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleBuySeed_Success(t *testing.T) {
	svc := new(MockGameService)
	svc.On("BuySeed", mock.Anything, testPlayerID, "carrot_seed", 3).
		Return(&economy.PurchaseResult{
			SeedName:   "carrot_seed",
			Quantity:   3,
			TotalCost:  30,
			NewBalance: 70,
		}, nil)

	rec := postJSON(t, HandleBuySeed(svc), "/api/v1/shop/buy",
		BuySeedRequest{SeedName: "carrot_seed", Quantity: 3}, true)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result economy.PurchaseResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 30, result.TotalCost)
	assert.Equal(t, 70, result.NewBalance)
	svc.AssertExpectations(t)
}

func TestHandleBuySeed_MissingPlayerHeader(t *testing.T) {
	svc := new(MockGameService)

	rec := postJSON(t, HandleBuySeed(svc), "/api/v1/shop/buy",
		BuySeedRequest{SeedName: "carrot_seed", Quantity: 1}, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "BuySeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleBuySeed_InsufficientFunds(t *testing.T) {
	svc := new(MockGameService)
	svc.On("BuySeed", mock.Anything, testPlayerID, "golden_seed", 1).
		Return(nil, fmt.Errorf("%w: need 500, have 20", domain.ErrInsufficientFunds))

	rec := postJSON(t, HandleBuySeed(svc), "/api/v1/shop/buy",
		BuySeedRequest{SeedName: "golden_seed", Quantity: 1}, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ErrMsgNotEnoughMoneyError, resp.Error)
}

func TestHandleBuySeed_ValidationRejectsZeroQuantity(t *testing.T) {
	svc := new(MockGameService)

	rec := postJSON(t, HandleBuySeed(svc), "/api/v1/shop/buy",
		map[string]interface{}{"seed_name": "carrot_seed", "quantity": 0}, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "BuySeed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSellPlant_RecordNotFound(t *testing.T) {
	svc := new(MockGameService)
	svc.On("SellPlant", mock.Anything, testPlayerID, 42).
		Return(nil, domain.ErrRecordNotFound)

	rec := postJSON(t, HandleSellPlant(svc), "/api/v1/shop/sell",
		SellPlantRequest{RecordID: 42}, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ErrMsgRecordNotFoundError, resp.Error)
}

func TestHandleGetBalance(t *testing.T) {
	svc := new(MockGameService)
	svc.On("GetBalance", mock.Anything, testPlayerID).Return(125, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance", nil)
	req.Header.Set(HeaderPlayerID, testPlayerID)
	rec := httptest.NewRecorder()
	HandleGetBalance(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 125, resp["balance"])
}
