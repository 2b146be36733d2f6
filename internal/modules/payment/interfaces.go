package payment

import (
	"context"

	"staysync/internal/domain"
)

type sessionRepo interface {
	Create(ctx context.Context, s *domain.PaymentSession) error
	GetByID(ctx context.Context, id string) (*domain.PaymentSession, error)
	GetPendingByBooking(ctx context.Context, bookingID int64) (*domain.PaymentSession, error)
	Transition(ctx context.Context, id string, newStatus domain.PaymentSessionStatus, externalRef string) (*domain.PaymentSession, error)
	FinalizeCancel(ctx context.Context, id string, externalRef string) (*domain.PaymentSession, error)
}

type bookingRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
