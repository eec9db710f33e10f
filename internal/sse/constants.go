package sse

// Buffer sizes for hub channels
const (
	// BroadcastBufferSize is the buffer for the central broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the per-client event buffer; slow clients drop
	// events rather than block the hub
	ClientEventBuffer = 32

	// ClientChannelBuffer is the buffer for register/unregister channels
	ClientChannelBuffer = 16
)
