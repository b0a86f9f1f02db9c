package notification

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dispatcher *Dispatcher
}

func NewHandler(dispatcher *Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/notify", h.Notify)
}

type notifyRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Notify sends the fixed approval email to the given address.
// This endpoint keeps its own flat response shape: {"success":true} on
// accept, {"success":false,"error":...} with status 500 on provider failure.
func (h *Handler) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "a valid email is required"})
		return
	}

	if err := h.dispatcher.NotifyApproved(c.Request.Context(), req.Email); err != nil {
		log.Printf("notify_error to=%s error=%q", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
