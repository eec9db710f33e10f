package metrics

import (
	"context"

	"github.com/Du7chy/Seedlings/internal/domain"
	"github.com/Du7chy/Seedlings/internal/event"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.Type(domain.EventTypeSeedBought),
		event.Type(domain.EventTypePlantSold),
		event.Type(domain.EventTypeSeedPlanted),
		event.Type(domain.EventTypePlantReady),
		event.Type(domain.EventTypePlantHarvested),
		event.Type(domain.EventTypeRoomCreated),
		event.Type(domain.EventTypeRoomClosed),
		event.Type(domain.EventTypeChatMessage),
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.SeedBoughtPayload:
		SeedsBought.WithLabelValues(payload.SeedName).Add(float64(payload.Quantity))
		CoinsSpent.Add(float64(payload.TotalCost))

	case domain.PlantSoldPayload:
		PlantsSold.WithLabelValues(payload.PlantName).Inc()
		CoinsEarned.Add(float64(payload.Value))

	case domain.PlantLifecyclePayload:
		if evt.Type == event.Type(domain.EventTypePlantHarvested) {
			PlantsHarvested.WithLabelValues(payload.PlantName).Inc()
		}

	case domain.RoomCreatedPayload:
		RoomsCreated.Inc()

	case domain.RoomClosedPayload:
		RoomsClosed.Inc()

	case domain.ChatMessagePayload:
		ChatMessages.Inc()
	}

	return nil
}
