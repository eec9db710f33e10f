package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Du7chy/Seedlings/internal/domain"
)

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewPlantReadyEvent("player-1", 7, "carrot_seed"))
	assert.NoError(t, err)
}

func TestMemoryBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	for i := 0; i < 3; i++ {
		bus.Subscribe(Type(domain.EventTypeSeedBought), func(ctx context.Context, e Event) error {
			got = append(got, e)
			return nil
		})
	}

	err := bus.Publish(context.Background(), NewSeedBoughtEvent("player-1", "carrot_seed", 2, 50, 200))
	require.NoError(t, err)
	require.Len(t, got, 3)

	payload, ok := got[0].Payload.(domain.SeedBoughtPayload)
	require.True(t, ok)
	assert.Equal(t, "carrot_seed", payload.SeedName)
	assert.Equal(t, 50, payload.TotalCost)
	assert.Equal(t, 200, payload.Balance)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
}

func TestMemoryBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()

	called := false
	bus.Subscribe(Type(domain.EventTypePlantSold), func(ctx context.Context, e Event) error {
		return errors.New("handler boom")
	})
	bus.Subscribe(Type(domain.EventTypePlantSold), func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	err := bus.Publish(context.Background(), NewPlantSoldEvent("player-1", "carrot", 450, 550))
	assert.Error(t, err)
	assert.True(t, called)
}

func TestMemoryBus_OnlyMatchingTypeInvoked(t *testing.T) {
	bus := NewMemoryBus()

	var joined, left int
	bus.Subscribe(Type(domain.EventTypeMemberJoined), func(ctx context.Context, e Event) error {
		joined++
		return nil
	})
	bus.Subscribe(Type(domain.EventTypeMemberLeft), func(ctx context.Context, e Event) error {
		left++
		return nil
	})

	members := []domain.RoomMember{{PlayerID: "p1", Username: "alice", IsOwner: true}}
	require.NoError(t, bus.Publish(context.Background(), NewMemberChangeEvent(true, 1, "p1", "alice", members)))

	assert.Equal(t, 1, joined)
	assert.Equal(t, 0, left)
}

func TestMemoryBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewMemoryBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(Type(domain.EventTypeChatMessage), func(ctx context.Context, e Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(Type(domain.EventTypeRoomClosed), func(ctx context.Context, e Event) error { return nil })
		}()
		go func() {
			defer wg.Done()
			msg := &domain.ChatMessage{ID: 1, RoomID: 2, PlayerID: "p1", Username: "alice", Content: "hi"}
			_ = bus.Publish(context.Background(), NewChatMessageEvent(msg))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 20, count)
}
