package booking

import (
	"net/http"
	"strconv"
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
	rg.POST("/bookings", h.Submit)
	rg.GET("/bookings", h.ListMine)
	rg.GET("/bookings/confirmation", h.Confirmation)
}

// Submit accepts the booking form as multipart/form-data: repeated
// team_members fields, email, faculty, semester, booking_date, time_slot and
// the id_card file.
func (h *Handler) Submit(c *gin.Context) {
	rollNo := c.GetString("roll_no")

	semester, _ := strconv.Atoi(c.PostForm("semester"))

	draft := Draft{
		RollNo:      rollNo,
		TeamMembers: c.PostFormArray("team_members"),
		Email:       strings.TrimSpace(c.PostForm("email")),
		Faculty:     c.PostForm("faculty"),
		Semester:    semester,
		BookingDate: c.PostForm("booking_date"),
		TimeSlot:    c.PostForm("time_slot"),
	}

	if file, err := c.FormFile("id_card"); err == nil {
		draft.IDCard = file
	}

	b, err := h.service.Submit(c.Request.Context(), draft)
	if err != nil {
		switch err {
		case ErrTeamTooSmall, ErrIDCardMissing, ErrIDCardTooLarge, ErrIDCardType,
			ErrInvalidFaculty, ErrInvalidSemester, ErrDateRequired, ErrPastDate,
			ErrInvalidTimeSlot:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", capitalize(err.Error()))
		case ErrSlotTaken:
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", "This time slot is already booked")
		case ErrStudentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Student record not found")
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to create booking")
		}
		return
	}

	response.Created(c, gin.H{
		"booking": b,
		"confirmation": Confirmation{
			Date:        b.BookingDate,
			TimeSlot:    b.TimeSlot,
			TeamMembers: b.TeamMembers,
		},
	})
}

// ListMine returns the logged-in student's past bookings.
func (h *Handler) ListMine(c *gin.Context) {
	rollNo := c.GetString("roll_no")

	bookings, err := h.service.PreviousBookings(c.Request.Context(), rollNo)
	if err != nil {
		if err == ErrStudentNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Student record not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// Confirmation echoes the confirmation view's query parameters back as
// display data. Not authoritative; the booking record is.
func (h *Handler) Confirmation(c *gin.Context) {
	team := []string{}
	if raw := c.Query("team"); raw != "" {
		team = strings.Split(raw, ",")
	}

	response.Success(c, http.StatusOK, Confirmation{
		Date:        c.Query("date"),
		TimeSlot:    c.Query("time"),
		TeamMembers: team,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
