package domain

// Event type names published on the in-process bus. The SSE layer fans
// room-scoped events out to connected clients; metrics handlers consume
// the economy events.
const (
	EventTypeSeedBought     = "seed.bought"
	EventTypePlantSold      = "plant.sold"
	EventTypeSeedPlanted    = "plant.planted"
	EventTypePlantReady     = "plant.ready"
	EventTypePlantHarvested = "plant.harvested"

	EventTypeRoomCreated  = "room.created"
	EventTypeMemberJoined = "room.member_joined"
	EventTypeMemberLeft   = "room.member_left"
	EventTypeRoomClosed   = "room.closed"
	EventTypeChatMessage  = "chat.message"
)

// SeedBoughtPayload is published after a committed purchase.
type SeedBoughtPayload struct {
	PlayerID  string `json:"player_id"`
	SeedName  string `json:"seed_name"`
	Quantity  int    `json:"quantity"`
	TotalCost int    `json:"total_cost"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// PlantSoldPayload is published after a committed sale.
type PlantSoldPayload struct {
	PlayerID  string `json:"player_id"`
	PlantName string `json:"plant_name"`
	Value     int    `json:"value"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// PlantLifecyclePayload covers planted, ready and harvested events.
type PlantLifecyclePayload struct {
	PlayerID       string `json:"player_id"`
	GrowingPlantID int    `json:"growing_plant_id"`
	SeedName       string `json:"seed_name,omitempty"`
	PlantName      string `json:"plant_name,omitempty"`
	Value          int    `json:"value,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

// MemberChangePayload is published after any committed membership mutation
// so connected clients can refresh member lists.
type MemberChangePayload struct {
	RoomID      int          `json:"room_id"`
	PlayerID    string       `json:"player_id"`
	Username    string       `json:"username"`
	MemberCount int          `json:"member_count"`
	Members     []RoomMember `json:"members"`
	Timestamp   int64        `json:"timestamp"`
}

// RoomCreatedPayload announces a new public room to browsing clients.
type RoomCreatedPayload struct {
	RoomID     int    `json:"room_id"`
	RoomName   string `json:"room_name"`
	OwnerID    string `json:"owner_id"`
	IsPrivate  bool   `json:"is_private"`
	MaxMembers int    `json:"max_members"`
	Timestamp  int64  `json:"timestamp"`
}

// RoomClosedPayload notifies remaining members that their room is gone.
type RoomClosedPayload struct {
	RoomID    int    `json:"room_id"`
	RoomName  string `json:"room_name"`
	Timestamp int64  `json:"timestamp"`
}

// ChatMessagePayload is published after a committed chat message.
type ChatMessagePayload struct {
	RoomID    int    `json:"room_id"`
	MessageID int    `json:"message_id"`
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}
