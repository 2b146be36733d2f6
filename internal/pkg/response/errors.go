package response

import (
	"errors"
	"net/http"

	"staysync/internal/domain"

	"github.com/gin-gonic/gin"
)

// DomainError maps the shared error taxonomy onto HTTP. Validation
// rejections are expected outcomes and carry their reason so the caller can
// prompt a re-selection.
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		Error(c, http.StatusBadRequest, "INVALID_RANGE", domain.ErrInvalidRange.Error())
	case errors.Is(err, domain.ErrBeforeCutoff):
		Error(c, http.StatusBadRequest, "BEFORE_CUTOFF", domain.ErrBeforeCutoff.Error())
	case errors.Is(err, domain.ErrOverlap):
		Error(c, http.StatusConflict, "OVERLAP", domain.ErrOverlap.Error())
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", "please choose different dates")
	case errors.Is(err, domain.ErrAlreadyFinalized):
		Error(c, http.StatusConflict, "ALREADY_FINALIZED", domain.ErrAlreadyFinalized.Error())
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, domain.ErrUnavailable):
		Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "temporarily unavailable, retry shortly")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error")
	}
}
