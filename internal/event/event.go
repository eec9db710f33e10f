package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// EventSchemaVersion is the current schema version stamped on events.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// after the mutation that produced the event has committed; handler errors
// are collected, never propagated back into the committed operation.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Type-safe event constructors

// NewSeedBoughtEvent creates a seed purchase event.
func NewSeedBoughtEvent(playerID, seedName string, quantity, totalCost, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeSeedBought),
		Payload: domain.SeedBoughtPayload{
			PlayerID:  playerID,
			SeedName:  seedName,
			Quantity:  quantity,
			TotalCost: totalCost,
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlantSoldEvent creates a plant sale event.
func NewPlantSoldEvent(playerID, plantName string, value, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePlantSold),
		Payload: domain.PlantSoldPayload{
			PlayerID:  playerID,
			PlantName: plantName,
			Value:     value,
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSeedPlantedEvent creates a planting event.
func NewSeedPlantedEvent(playerID string, growingPlantID int, seedName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeSeedPlanted),
		Payload: domain.PlantLifecyclePayload{
			PlayerID:       playerID,
			GrowingPlantID: growingPlantID,
			SeedName:       seedName,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewPlantReadyEvent creates a maturity notification event.
func NewPlantReadyEvent(playerID string, growingPlantID int, seedName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePlantReady),
		Payload: domain.PlantLifecyclePayload{
			PlayerID:       playerID,
			GrowingPlantID: growingPlantID,
			SeedName:       seedName,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewPlantHarvestedEvent creates a harvest event.
func NewPlantHarvestedEvent(playerID string, growingPlantID int, plantName string, value int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePlantHarvested),
		Payload: domain.PlantLifecyclePayload{
			PlayerID:       playerID,
			GrowingPlantID: growingPlantID,
			PlantName:      plantName,
			Value:          value,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewMemberChangeEvent creates a membership change event for a room.
// joined selects between member_joined and member_left.
func NewMemberChangeEvent(joined bool, roomID int, playerID, username string, members []domain.RoomMember) Event {
	eventType := domain.EventTypeMemberLeft
	if joined {
		eventType = domain.EventTypeMemberJoined
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(eventType),
		Payload: domain.MemberChangePayload{
			RoomID:      roomID,
			PlayerID:    playerID,
			Username:    username,
			MemberCount: len(members),
			Members:     members,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewRoomCreatedEvent creates a room creation event.
func NewRoomCreatedEvent(room *domain.Room) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeRoomCreated),
		Payload: domain.RoomCreatedPayload{
			RoomID:     room.ID,
			RoomName:   room.Name,
			OwnerID:    room.OwnerID,
			IsPrivate:  room.IsPrivate,
			MaxMembers: room.MaxMembers,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewRoomClosedEvent creates a room closure event.
func NewRoomClosedEvent(roomID int, roomName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeRoomClosed),
		Payload: domain.RoomClosedPayload{
			RoomID:    roomID,
			RoomName:  roomName,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewChatMessageEvent creates a chat fan-out event.
func NewChatMessageEvent(message *domain.ChatMessage) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeChatMessage),
		Payload: domain.ChatMessagePayload{
			RoomID:    message.RoomID,
			MessageID: message.ID,
			PlayerID:  message.PlayerID,
			Username:  message.Username,
			Content:   message.Content,
			Timestamp: message.Timestamp.Unix(),
		},
	}
}
