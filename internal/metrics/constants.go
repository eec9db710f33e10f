package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameSeedsBought     = "seeds_bought_total"
	MetricNamePlantsHarvested = "plants_harvested_total"
	MetricNamePlantsSold      = "plants_sold_total"
	MetricNameRoomsCreated    = "rooms_created_total"
	MetricNameRoomsClosed     = "rooms_closed_total"
	MetricNameChatMessages    = "chat_messages_total"
	MetricNameCoinsEarned     = "coins_earned_total"
	MetricNameCoinsSpent      = "coins_spent_total"
	MetricNameSSEClients      = "sse_clients_connected"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished = "Total number of events published"

	HelpTextSeedsBought     = "Total number of seeds bought"
	HelpTextPlantsHarvested = "Total number of plants harvested"
	HelpTextPlantsSold      = "Total number of plants sold"
	HelpTextRoomsCreated    = "Total number of rooms created"
	HelpTextRoomsClosed     = "Total number of rooms closed"
	HelpTextChatMessages    = "Total number of chat messages sent"
	HelpTextCoinsEarned     = "Total coins earned from selling plants"
	HelpTextCoinsSpent      = "Total coins spent buying seeds"
	HelpTextSSEClients      = "Current number of connected SSE clients"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSeed   = "seed"
	LabelPlant  = "plant"
)

// HTTPLatencyBuckets covers the expected range of request latencies.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
