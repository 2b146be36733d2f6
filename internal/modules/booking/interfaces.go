package booking

import (
	"context"

	"staysync/internal/domain"
)

type BookingRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	InsertBookingIfFree(ctx context.Context, b *domain.Booking) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
