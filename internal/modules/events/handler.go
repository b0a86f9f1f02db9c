package events

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket endpoint. Browser upgrades are limited to
// the allowed origins; requests without an Origin header (non-browser
// clients, tests) pass.
func NewHandler(hub *Hub, allowedOrigins map[string]bool) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigins[origin]
			},
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Connect)
}

// Connect upgrades the request and registers the connection under the
// logged-in student. The read loop only watches for close; the server never
// expects inbound messages.
func (h *Handler) Connect(c *gin.Context) {
	studentID := c.GetInt64("student_id")
	if studentID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "Authentication required",
		}})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed student_id=%d error=%q", studentID, err)
		return
	}

	h.hub.Register(studentID, conn)

	go func() {
		defer h.hub.Unregister(studentID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
