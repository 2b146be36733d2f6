package availability

import (
	"net/http"
	"strconv"

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
	rg.GET("/rooms/:id/blocked-ranges", h.GetBlockedRanges)
}

type blockedRangeDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GetBlockedRanges handles GET /rooms/:id/blocked-ranges. Drives the
// caller's calendar-disabling UI.
func (h *Handler) GetBlockedRanges(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "invalid room id")
		return
	}

	ranges, err := h.service.ComputeBlockedRanges(c.Request.Context(), roomID)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	out := make([]blockedRangeDTO, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, blockedRangeDTO{
			StartDate: domain.FormatDate(r.Start),
			EndDate:   domain.FormatDate(r.End),
		})
	}
	response.Success(c, http.StatusOK, gin.H{"room_id": roomID, "blocked_ranges": out})
}
