package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotReadyResponse is returned when a plant is harvested before maturity.
// It carries the remaining seconds so clients can render a countdown.
type NotReadyResponse struct {
	Error            string `json:"error"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError  = "Player not found"
	ErrMsgSeedNotFoundError    = "Seed not found"
	ErrMsgPlantNotFoundError   = "Plant not found"
	ErrMsgRecordNotFoundError  = "That plant is not in your inventory"
	ErrMsgGrowingNotFoundError = "Growing plant not found"
	ErrMsgRoomNotFoundError    = "Room not found"
	ErrMsgNotEnoughMoneyError  = "Not enough coins"
	ErrMsgNotEnoughSeedsError  = "You don't have that seed"
	ErrMsgNotOwnedError        = "That does not belong to you"
	ErrMsgPlantNotReadyError   = "Plant is not ready yet"
	ErrMsgRoomFullError        = "Room is full"
	ErrMsgNotInRoomError       = "You are not in a room"
	ErrMsgAmbiguousJoinError   = "Provide either a room id or a join code, not both"
	ErrMsgPrivateRoomError     = "That room is private. Join with its code"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Content defects like an empty loot table are server faults
// and surface as 500s with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrAmbiguousSelector):
		return http.StatusBadRequest, ErrMsgAmbiguousJoinError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgNotEnoughSeedsError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrSeedNotFound):
		return http.StatusNotFound, ErrMsgSeedNotFoundError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrGrowingPlantNotFound):
		return http.StatusNotFound, ErrMsgGrowingNotFoundError
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, ErrMsgRoomNotFoundError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusForbidden, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrPrivateRoomRequiresCode):
		return http.StatusForbidden, ErrMsgPrivateRoomError
	case errors.Is(err, domain.ErrRoomFull):
		return http.StatusConflict, ErrMsgRoomFullError
	case errors.Is(err, domain.ErrNotInRoom):
		return http.StatusConflict, ErrMsgNotInRoomError
	case errors.Is(err, domain.ErrPlantNotReady):
		return http.StatusConflict, ErrMsgPlantNotReadyError
	case errors.Is(err, domain.ErrEmptyLootTable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// error response. A not-ready harvest gains the countdown field.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var notReady *domain.NotReadyError
	if errors.As(err, &notReady) {
		log.Debug(opName+" rejected, plant not ready", "remaining_seconds", notReady.RemainingSeconds)
		respondJSON(w, http.StatusConflict, NotReadyResponse{
			Error:            ErrMsgPlantNotReadyError,
			RemainingSeconds: notReady.RemainingSeconds,
		})
		return
	}

	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}
