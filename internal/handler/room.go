package handler

import (
	"net/http"

	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/logger"
)

// CreateRoomRequest represents a room creation.
type CreateRoomRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	IsPrivate  bool   `json:"is_private"`
	MaxMembers int    `json:"max_members" validate:"omitempty,min=1,max=10"`
}

// HandleCreateRoom creates a room owned by the acting player. Creating a
// room moves the player out of any room they were in.
func HandleCreateRoom(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req CreateRoomRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create room"); err != nil {
			return
		}

		detail, err := gameService.CreateRoom(r.Context(), playerID, req.Name, req.IsPrivate, req.MaxMembers)
		if err != nil {
			respondServiceError(w, r, "Create room", err)
			return
		}

		logger.FromContext(r.Context()).Info("Room created",
			"player_id", playerID,
			"room_id", detail.Room.ID,
			"private", detail.Room.IsPrivate)
		respondJSON(w, http.StatusCreated, detail)
	}
}

// JoinRoomRequest represents a join by id or by code, never both.
type JoinRoomRequest struct {
	RoomID   *int   `json:"room_id" validate:"omitempty,min=1"`
	JoinCode string `json:"join_code" validate:"omitempty,joincode"`
}

// HandleJoinRoom joins the acting player to a room.
func HandleJoinRoom(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		var req JoinRoomRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Join room"); err != nil {
			return
		}

		detail, err := gameService.JoinRoom(r.Context(), playerID, req.RoomID, req.JoinCode)
		if err != nil {
			respondServiceError(w, r, "Join room", err)
			return
		}

		logger.FromContext(r.Context()).Info("Room joined",
			"player_id", playerID,
			"room_id", detail.Room.ID)
		respondJSON(w, http.StatusOK, detail)
	}
}

// HandleLeaveRoom removes the acting player from their current room.
func HandleLeaveRoom(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		if err := gameService.LeaveRoom(r.Context(), playerID); err != nil {
			respondServiceError(w, r, "Leave room", err)
			return
		}

		logger.FromContext(r.Context()).Info("Room left", "player_id", playerID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeftRoomSuccess})
	}
}

// HandleSearchRooms searches rooms by name substring. An empty query
// lists all rooms.
func HandleSearchRooms(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := GetOptionalQueryParam(r, "q", "")

		rooms, err := gameService.SearchRooms(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Search rooms", err)
			return
		}

		respondJSON(w, http.StatusOK, rooms)
	}
}

// HandleGetCurrentRoom returns the acting player's current room with its
// member list.
func HandleGetCurrentRoom(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := PlayerIDFromRequest(r, w)
		if !ok {
			return
		}

		detail, err := gameService.GetCurrentRoom(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get current room", err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}
