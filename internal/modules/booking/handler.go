package booking

import (
	"net/http"

	"staysync/internal/domain"
	"staysync/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.GetMyBookings)
}

// CreateBooking handles POST /bookings. The user identity comes from the
// bearer token, never from the payload.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	start, err := domain.ParseDate(req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := domain.ParseDate(req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "end_date must be YYYY-MM-DD")
		return
	}

	b, err := h.service.Commit(c.Request.Context(), req.RoomID, c.GetString("user_id"), start, end)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toBookingResponse(b))
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	bookings, err := h.service.GetMyBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}
