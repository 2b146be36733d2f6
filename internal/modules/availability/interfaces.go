package availability

import (
	"context"

	"staysync/internal/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type BookingRepository interface {
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
}
