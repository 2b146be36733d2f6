package catalog

import (
	"net/http"
	"strconv"

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
	rg.GET("/hotels", h.GetHotels)
	rg.GET("/hotels/:id", h.GetHotel)
	rg.GET("/hotels/:id/rooms", h.GetRooms)
}

func (h *Handler) GetHotels(c *gin.Context) {
	hotels, err := h.service.GetHotels(c.Request.Context())
	if err != nil {
		response.DomainError(c, err)
		return
	}

	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, toHotelResponse(&hotels[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"hotels": out})
}

func (h *Handler) GetHotel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "invalid hotel id")
		return
	}

	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toHotelResponse(hotel))
}

func (h *Handler) GetRooms(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "invalid hotel id")
		return
	}

	rooms, err := h.service.GetRooms(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": toRoomResponses(rooms)})
}
