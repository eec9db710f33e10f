package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// PlantSeedRequest represents a planting action.
type PlantSeedRequest struct {
	SeedName string `json:"seed_name" validate:"required"`
}

// HandlePlantSeed plants one seed from the acting player's inventory.
// Planting requires current room membership.
func HandlePlantSeed(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req PlantSeedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plant seed"); err != nil {
			return
		}

		plant, err := gameService.PlantSeed(r.Context(), playerID, req.SeedName)
		if err != nil {
			respondServiceError(w, r, "Plant seed", err)
			return
		}

		logger.FromContext(r.Context()).Info("Seed planted",
			"player_id", playerID,
			"seed", req.SeedName,
			"growing_plant_id", plant.ID,
			"growth_time", plant.GrowthTime)
		respondJSON(w, http.StatusCreated, plant)
	}
}

// HandleGetGrowingPlants lists the acting player's growing plants with
// elapsed progress.
func HandleGetGrowingPlants(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		plants, err := gameService.GetGrowingPlants(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get growing plants", err)
			return
		}

		respondJSON(w, http.StatusOK, plants)
	}
}

// HandleGetCodex lists the acting player's plant discovery stats.
func HandleGetCodex(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		entries, err := gameService.GetCodex(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get codex", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleHarvest harvests one matured growing plant.
func HandleHarvest(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		growingPlantID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || growingPlantID < 1 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidParam, "id"))
			return
		}

		result, err := gameService.Harvest(r.Context(), playerID, growingPlantID)
		if err != nil {
			respondServiceError(w, r, "Harvest", err)
			return
		}

		logger.FromContext(r.Context()).Info("Plant harvested",
			"player_id", playerID,
			"growing_plant_id", growingPlantID,
			"plant", result.Plant.Name,
			"rarity", result.Plant.Rarity,
			"value", result.Value)
		respondJSON(w, http.StatusOK, result)
	}
}
