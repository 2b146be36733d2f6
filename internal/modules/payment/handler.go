package payment

import (
	"errors"
	"net/http"

	"staysync/internal/domain"
	"staysync/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	logger  *logrus.Logger
}

func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/checkout", h.InitCheckout)
}

// The callback is processor-facing: the redirect may arrive as GET
// (browser) or POST (server-to-server retry).
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/callback", h.Callback)
	rg.POST("/payments/callback", h.Callback)
}

func (h *Handler) InitCheckout(c *gin.Context) {
	var req InitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	resp, err := h.service.InitCheckout(c.Request.Context(), c.GetString("user_id"), req.BookingID, req.Currency)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

// Callback finalizes a session from the processor redirect. A repeated or
// contradictory delivery is answered 200 with the authoritative record so
// the processor stops retrying; the contradiction itself is only logged.
func (h *Handler) Callback(c *gin.Context) {
	sessionID := param(c, "session_id")
	outcome := domain.PaymentOutcome(param(c, "outcome"))
	externalRef := param(c, "external_ref")

	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "session_id is required")
		return
	}

	sess, err := h.service.Finalize(c.Request.Context(), sessionID, outcome, externalRef)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyFinalized) {
			h.logger.WithFields(logrus.Fields{
				"session_id": sessionID,
				"outcome":    outcome,
				"status":     sess.Status,
			}).Warn("contradictory payment callback ignored")
			response.Success(c, http.StatusOK, gin.H{
				"session":      toSessionResponse(sess),
				"redirect_url": h.redirectFor(sess.Status),
			})
			return
		}
		if errors.Is(err, ErrInvalidOutcome) {
			response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
			return
		}
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"session":      toSessionResponse(sess),
		"redirect_url": h.redirectFor(sess.Status),
	})
}

func (h *Handler) redirectFor(status domain.PaymentSessionStatus) string {
	if status == domain.PaymentSessionCompleted {
		return h.service.cfg.SuccessPage
	}
	return h.service.cfg.CancelPage
}

// param reads from the query string first, then the form body, matching
// both redirect styles.
func param(c *gin.Context, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.PostForm(key)
}
