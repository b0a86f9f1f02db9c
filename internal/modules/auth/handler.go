package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"futsalcourt/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/logout", h.Logout)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Roll number is required.")
		return
	}

	student, token, err := h.service.Login(c.Request.Context(), req.RollNo)
	if err != nil {
		switch err {
		case ErrRollNoRequired:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Roll number is required.")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Unable to login. Please try again.")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":   token,
		"roll_no": student.RollNo,
		"student": student,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}
