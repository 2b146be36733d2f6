package payment

import "staysync/internal/domain"

type InitCheckoutRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Currency  string `json:"currency"`
}

type SessionResponse struct {
	ID          string `json:"id"`
	BookingID   int64  `json:"booking_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	ExternalRef string `json:"external_ref,omitempty"`
}

type CheckoutResponse struct {
	Session     SessionResponse `json:"session"`
	CheckoutURL string          `json:"checkout_url"`
}

func toSessionResponse(s *domain.PaymentSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		BookingID:   s.BookingID,
		Amount:      s.Amount,
		Currency:    s.Currency,
		Status:      string(s.Status),
		ExternalRef: s.ExternalRef,
	}
}
