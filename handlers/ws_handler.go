package handlers

import (
	"log"
	"net/http"

	"camera-dashboard/be/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard is served from arbitrary local origins
		return true
	},
	EnableCompression: true,
}

// WSHandler attaches web clients to the notification hub.
type WSHandler struct {
	hub *services.HubService
}

func NewWSHandler(hub *services.HubService) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve upgrades the request and hands the connection to the hub. Nothing
// may be written to the response after the upgrade attempt.
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Attach(conn)
}
