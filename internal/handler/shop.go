package handler

import (
	"net/http"

	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// HandleListSeeds returns the seed shop with drop chances per seed.
func HandleListSeeds(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeds, err := gameService.ListShopSeeds(r.Context())
		if err != nil {
			respondServiceError(w, r, "List seeds", err)
			return
		}
		respondJSON(w, http.StatusOK, seeds)
	}
}

// HandleListPlants returns the plant codex with the seeds each plant
// can drop from.
func HandleListPlants(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plants, err := gameService.ListPlantCodex(r.Context())
		if err != nil {
			respondServiceError(w, r, "List plants", err)
			return
		}
		respondJSON(w, http.StatusOK, plants)
	}
}

// BuySeedRequest represents a seed purchase.
type BuySeedRequest struct {
	SeedName string `json:"seed_name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// HandleBuySeed handles a seed purchase for the acting player.
func HandleBuySeed(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req BuySeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy seed"); err != nil {
			return
		}

		result, err := gameService.BuySeed(r.Context(), playerID, req.SeedName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Buy seed", err)
			return
		}

		logger.FromContext(r.Context()).Info("Seed purchased",
			"player_id", playerID,
			"seed", result.SeedName,
			"quantity", result.Quantity,
			"total_cost", result.TotalCost)
		respondJSON(w, http.StatusOK, result)
	}
}

// SellPlantRequest represents a sale of one harvested plant.
type SellPlantRequest struct {
	RecordID int `json:"record_id" validate:"required,min=1"`
}

// HandleSellPlant handles selling a harvested plant from the inventory.
func HandleSellPlant(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req SellPlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell plant"); err != nil {
			return
		}

		result, err := gameService.SellPlant(r.Context(), playerID, req.RecordID)
		if err != nil {
			respondServiceError(w, r, "Sell plant", err)
			return
		}

		logger.FromContext(r.Context()).Info("Plant sold",
			"player_id", playerID,
			"plant", result.PlantName,
			"value", result.Value)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetBalance returns the acting player's coin balance.
func HandleGetBalance(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		balance, err := gameService.GetBalance(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]int{"balance": balance})
	}
}

// HandleGetInventory returns the acting player's seed and plant holdings.
func HandleGetInventory(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		inventory, err := gameService.GetInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, inventory)
	}
}
