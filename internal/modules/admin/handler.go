package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"futsalcourt/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public admin login; RegisterProtectedRoutes wires
// the approval endpoints behind the admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/bookings", h.ListPending)
	rg.POST("/admin/bookings/:id/approve", h.Approve)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials, ErrNotConfigured:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) ListPending(c *gin.Context) {
	bookings, err := h.service.PendingBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	result, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrAlreadyApproved:
			response.Error(c, http.StatusConflict, "ALREADY_APPROVED", "Booking already approved")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to approve booking")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
