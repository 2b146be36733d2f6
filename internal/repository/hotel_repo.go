package repository

import (
	"context"

	"staysync/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		First(&h, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &h, nil
}
