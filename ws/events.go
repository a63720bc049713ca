package ws

import "encoding/json"

// Inbound event names.
const (
	eventJoinRoom           = "joinRoom"
	eventTrackOrder         = "trackOrder"
	eventToggleAvailability = "toggleItemAvailability"
)

// Outbound event names owned by this package; lifecycle event names live
// in the services package next to the code that emits them.
const (
	eventConnected       = "connected"
	eventConnectionStats = "connectionStats"
	eventTrackingUpdate  = "orderTrackingUpdate"
	eventOrderNotFound   = "orderNotFound"
	eventError           = "errorMessage"
)

// Envelope is the wire shape of every realtime message, both directions:
// a tag plus a payload decoded per event.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinRoomPayload struct {
	UserType string `json:"userType"`
	UserID   string `json:"userId"`
}

type trackOrderPayload struct {
	OrderID string `json:"orderId"`
}

type toggleAvailabilityPayload struct {
	ItemID    int64 `json:"itemId"`
	Available bool  `json:"available"`
}

type connectedAck struct {
	SessionID string `json:"sessionId"`
	Room      string `json:"room"`
	Role      string `json:"role"`
}

type errorAck struct {
	Message string `json:"message"`
}
