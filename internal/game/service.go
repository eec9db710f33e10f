package game

import (
	"context"
	"fmt"

	"github.com/Du7chy/Seedlings/internal/catalog"
	"github.com/Du7chy/Seedlings/internal/chat"
	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/economy"
	"github.com/Du7chy/Seedlings/internal/garden"
	"github.com/Du7chy/Seedlings/internal/room"
	"github.com/Du7chy/Seedlings/internal/user"
)

// Service is the single entry point for player actions. Each method is
// one atomic game operation; the transport layer never reaches past this
// facade into the underlying services.
type Service interface {
	// Players
	Register(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	// Shop
	ListShopSeeds(ctx context.Context) ([]catalog.SeedListing, error)
	ListPlantCodex(ctx context.Context) ([]catalog.PlantListing, error)
	BuySeed(ctx context.Context, playerID, seedName string, quantity int) (*economy.PurchaseResult, error)
	SellPlant(ctx context.Context, playerID string, recordID int) (*economy.SaleResult, error)

	// Garden
	PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error)
	GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error)
	Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error)
	GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error)

	// Ledger
	GetBalance(ctx context.Context, playerID string) (int, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)

	// Rooms
	CreateRoom(ctx context.Context, playerID, name string, isPrivate bool, maxMembers int) (*room.Detail, error)
	JoinRoom(ctx context.Context, playerID string, roomID *int, joinCode string) (*room.Detail, error)
	LeaveRoom(ctx context.Context, playerID string) error
	SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error)
	GetCurrentRoom(ctx context.Context, playerID string) (*room.Detail, error)

	// Chat
	SendChatMessage(ctx context.Context, playerID, content string) (*domain.ChatMessage, error)
	ChatHistory(ctx context.Context, playerID string, limit int) ([]domain.ChatMessage, error)
}

type service struct {
	users   user.Service
	catalog catalog.Service
	economy economy.Service
	garden  garden.Service
	rooms   room.Service
	chat    chat.Service
}

// NewService wires the game facade over its component services.
func NewService(users user.Service, cat catalog.Service, eco economy.Service, gdn garden.Service, rooms room.Service, chatSvc chat.Service) Service {
	return &service{
		users:   users,
		catalog: cat,
		economy: eco,
		garden:  gdn,
		rooms:   rooms,
		chat:    chatSvc,
	}
}

func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	return s.users.Register(ctx, username)
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.users.GetPlayer(ctx, playerID)
}

func (s *service) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return s.users.GetPlayerByUsername(ctx, username)
}

func (s *service) ListShopSeeds(ctx context.Context) ([]catalog.SeedListing, error) {
	return s.catalog.ListSeeds(ctx)
}

func (s *service) ListPlantCodex(ctx context.Context) ([]catalog.PlantListing, error) {
	return s.catalog.ListPlants(ctx)
}

func (s *service) BuySeed(ctx context.Context, playerID, seedName string, quantity int) (*economy.PurchaseResult, error) {
	if _, err := s.users.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.economy.BuySeed(ctx, playerID, seedName, quantity)
}

func (s *service) SellPlant(ctx context.Context, playerID string, recordID int) (*economy.SaleResult, error) {
	return s.economy.SellPlant(ctx, playerID, recordID)
}

// PlantSeed plants a seed from the player's stock. Planting is a shared
// garden activity: it is only allowed while the player is in a room.
func (s *service) PlantSeed(ctx context.Context, playerID, seedName string) (*domain.GrowingPlant, error) {
	player, err := s.users.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.RoomID == nil {
		return nil, fmt.Errorf("%w: join a room before planting", domain.ErrNotInRoom)
	}
	return s.garden.PlantSeed(ctx, playerID, seedName)
}

func (s *service) GetGrowingPlants(ctx context.Context, playerID string) ([]domain.GrowingPlantView, error) {
	return s.garden.GetGrowingPlants(ctx, playerID)
}

func (s *service) Harvest(ctx context.Context, playerID string, growingPlantID int) (*domain.HarvestResult, error) {
	return s.garden.Harvest(ctx, playerID, growingPlantID)
}

func (s *service) GetCodex(ctx context.Context, playerID string) ([]domain.CodexEntry, error) {
	return s.garden.GetCodex(ctx, playerID)
}

func (s *service) GetBalance(ctx context.Context, playerID string) (int, error) {
	return s.economy.GetBalance(ctx, playerID)
}

func (s *service) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return s.economy.GetInventory(ctx, playerID)
}

func (s *service) CreateRoom(ctx context.Context, playerID, name string, isPrivate bool, maxMembers int) (*room.Detail, error) {
	if _, err := s.users.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.rooms.CreateRoom(ctx, playerID, name, isPrivate, maxMembers)
}

func (s *service) JoinRoom(ctx context.Context, playerID string, roomID *int, joinCode string) (*room.Detail, error) {
	return s.rooms.JoinRoom(ctx, playerID, roomID, joinCode)
}

func (s *service) LeaveRoom(ctx context.Context, playerID string) error {
	return s.rooms.LeaveRoom(ctx, playerID)
}

func (s *service) SearchRooms(ctx context.Context, query string) ([]domain.RoomSummary, error) {
	return s.rooms.SearchRooms(ctx, query)
}

func (s *service) GetCurrentRoom(ctx context.Context, playerID string) (*room.Detail, error) {
	return s.rooms.GetCurrentRoom(ctx, playerID)
}

func (s *service) SendChatMessage(ctx context.Context, playerID, content string) (*domain.ChatMessage, error) {
	player, err := s.users.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.chat.SendMessage(ctx, playerID, player.Username, content)
}

func (s *service) ChatHistory(ctx context.Context, playerID string, limit int) ([]domain.ChatMessage, error) {
	return s.chat.History(ctx, playerID, limit)
}
