package catalog

import (
	"context"

	"staysync/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type RoomRepository interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
}

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

func (s *Service) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *Service) GetRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, hotelID)
}
