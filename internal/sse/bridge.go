package sse

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
)

// bridgedEventTypes are the bus events fanned out over SSE.
var bridgedEventTypes = []string{
	domain.EventTypeSeedBought,
	domain.EventTypePlantSold,
	domain.EventTypeSeedPlanted,
	domain.EventTypePlantReady,
	domain.EventTypePlantHarvested,
	domain.EventTypeRoomCreated,
	domain.EventTypeMemberJoined,
	domain.EventTypeMemberLeft,
	domain.EventTypeRoomClosed,
	domain.EventTypeChatMessage,
}

// BridgeEventBus subscribes the hub to every game event on the bus so
// committed mutations reach connected clients.
func BridgeEventBus(hub *Hub, bus event.Bus) {
	for _, eventType := range bridgedEventTypes {
		et := eventType
		bus.Subscribe(event.Type(et), func(ctx context.Context, e event.Event) error {
			hub.Broadcast(string(e.Type), e.Payload)
			return nil
		})
	}
}
