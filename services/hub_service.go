package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one frame on the notification channel. Data carries the
// event-specific payload (CameraOnlineEvent, AudioMessageEvent, ...).
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type CameraOnlineEvent struct {
	CameraNumber int    `json:"camera_number"`
	CameraName   string `json:"camera_name"`
	IPAddress    string `json:"ip_address"`
	Timestamp    string `json:"timestamp"`
}

type CameraOfflineEvent struct {
	CameraNumber int    `json:"camera_number"`
	Timestamp    string `json:"timestamp"`
}

type AudioMessageEvent struct {
	CameraNumber int    `json:"camera_number"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
}

// HubService fans out events to every connected web client. Delivery is
// best-effort and at-most-once: publishing never blocks, and a client whose
// send buffer is full has the event dropped.
type HubService struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// Client is one WebSocket subscriber attached to the hub.
type Client struct {
	hub  *HubService
	conn *websocket.Conn
	send chan Event
}

const clientSendBuffer = 16

func NewHubService() *HubService {
	return &HubService{
		clients: make(map[*Client]struct{}),
	}
}

// Broadcast publishes an event to all connected clients.
func (h *HubService) Broadcast(event string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- Event{Event: event, Data: data}:
		default:
			// Slow client, drop the event rather than block the publisher
		}
	}
}

// ClientCount returns the number of currently attached clients.
func (h *HubService) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Attach registers an upgraded WebSocket connection with the hub and starts
// its read/write pumps. The connection is owned by the hub from here on.
func (h *HubService) Attach(conn *websocket.Conn) *Client {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan Event, clientSendBuffer),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	log.Println("Client connected")

	go client.writePump()
	go client.readPump()

	return client
}

func (h *HubService) detach(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()

	log.Println("Client disconnected")
}

// readPump consumes inbound frames until the connection drops. An inbound
// audio_message frame is re-broadcast to every client: the realtime path
// uses the same global-broadcast policy as the HTTP endpoints.
func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			continue
		}

		if event.Event == "audio_message" {
			c.hub.Broadcast(event.Event, event.Data)
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}

	// Hub closed the channel, tell the peer we are going away
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
