package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// SendMessageRequest represents a chat message to the player's room.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// HandleSendMessage posts a chat message to the acting player's room.
func HandleSendMessage(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req SendMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send message"); err != nil {
			return
		}

		message, err := gameService.SendChatMessage(r.Context(), playerID, req.Content)
		if err != nil {
			respondServiceError(w, r, "Send message", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Chat message sent",
			"player_id", playerID,
			"room_id", message.RoomID,
			"message_id", message.ID)
		respondJSON(w, http.StatusCreated, message)
	}
}

// HandleChatHistory replays recent chat for the acting player's room.
func HandleChatHistory(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		limit := 0
		if limitStr := GetOptionalQueryParam(r, "limit", ""); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidParam, "limit"))
				return
			}
			limit = parsed
		}

		messages, err := gameService.ChatHistory(r.Context(), playerID, limit)
		if err != nil {
			respondServiceError(w, r, "Chat history", err)
			return
		}

		respondJSON(w, http.StatusOK, messages)
	}
}
