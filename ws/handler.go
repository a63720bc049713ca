package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mohitkushwaha4020/zaika/repository"
	"github.com/mohitkushwaha4020/zaika/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the realtime surface: it upgrades connections and
// dispatches inbound events to the services. Handler errors never kill
// the connection; the client gets a scoped errorMessage ack instead.
type Handler struct {
	Hub    *Hub
	Orders *services.OrderService
	Menu   *services.MenuService
}

func NewHandler(hub *Hub, orders *services.OrderService, menu *services.MenuService) *Handler {
	return &Handler{Hub: hub, Orders: orders, Menu: menu}
}

// WS route: /ws
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	client := h.Hub.Register(conn)
	go h.readLoop(client)
}

func (h *Handler) readLoop(client *Client) {
	defer h.Hub.Disconnect(client)

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			return
		}
		h.dispatch(client, raw)
	}
}

func (h *Handler) dispatch(client *Client, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ws handler panic: %v", r)
			h.Hub.SendTo(client, eventError, errorAck{Message: "internal error"})
		}
	}()

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.Hub.SendTo(client, eventError, errorAck{Message: "invalid message"})
		return
	}

	switch env.Event {
	case eventJoinRoom:
		h.handleJoinRoom(client, env.Data)
	case eventTrackOrder:
		h.handleTrackOrder(client, env.Data)
	case eventToggleAvailability:
		h.handleToggleAvailability(client, env.Data)
	default:
		h.Hub.SendTo(client, eventError, errorAck{Message: "unknown event: " + env.Event})
	}
}

func (h *Handler) handleJoinRoom(client *Client, data json.RawMessage) {
	var payload joinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.Hub.SendTo(client, eventError, errorAck{Message: "invalid joinRoom payload"})
		return
	}
	if payload.UserType != "customer" && payload.UserType != "restaurant" {
		h.Hub.SendTo(client, eventError, errorAck{Message: "userType must be customer or restaurant"})
		return
	}

	entry := h.Hub.Join(client, payload.UserType, payload.UserID)
	h.Hub.SendTo(client, eventConnected, connectedAck{
		SessionID: client.ID,
		Room:      entry.Room,
		Role:      entry.Role,
	})
	h.Hub.BroadcastStats()
}

func (h *Handler) handleTrackOrder(client *Client, data json.RawMessage) {
	// Clients send either the bare order id or {"orderId": ...}.
	var orderID string
	if err := json.Unmarshal(data, &orderID); err != nil {
		var payload trackOrderPayload
		if err := json.Unmarshal(data, &payload); err != nil || payload.OrderID == "" {
			h.Hub.SendTo(client, eventError, errorAck{Message: "invalid trackOrder payload"})
			return
		}
		orderID = payload.OrderID
	}

	order, err := h.Orders.Get(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.Hub.SendTo(client, eventOrderNotFound, map[string]string{"orderId": orderID})
			return
		}
		h.Hub.SendTo(client, eventError, errorAck{Message: "tracking failed"})
		return
	}
	h.Hub.SendTo(client, eventTrackingUpdate, order)
}

func (h *Handler) handleToggleAvailability(client *Client, data json.RawMessage) {
	var payload toggleAvailabilityPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ItemID == 0 {
		h.Hub.SendTo(client, eventError, errorAck{Message: "invalid toggleItemAvailability payload"})
		return
	}

	if _, err := h.Menu.SetAvailability(payload.ItemID, payload.Available); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.Hub.SendTo(client, eventError, errorAck{Message: "menu item not found"})
			return
		}
		h.Hub.SendTo(client, eventError, errorAck{Message: "availability update failed"})
	}
}
