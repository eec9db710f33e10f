package handler

import (
	"net/http"

	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// RegisterPlayerRequest represents the request to register a player.
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
}

// HandleRegisterPlayer handles player registration. Registration is
// idempotent by username: registering an existing name returns the
// existing player with a 200 instead of a 201.
func HandleRegisterPlayer(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		existing, lookupErr := gameService.GetPlayerByUsername(r.Context(), req.Username)
		if lookupErr == nil && existing != nil {
			log.Debug("Register hit existing player", "username", req.Username)
			respondJSON(w, http.StatusOK, existing)
			return
		}

		player, err := gameService.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register player", err)
			return
		}

		log.Info("Player registered", "player_id", player.ID, "username", player.Username)
		respondJSON(w, http.StatusCreated, player)
	}
}

// HandleGetPlayer returns the acting player's profile.
func HandleGetPlayer(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		player, err := gameService.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}

		respondJSON(w, http.StatusOK, player)
	}
}
