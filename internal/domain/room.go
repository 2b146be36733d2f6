package domain

import "time"

type Room struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	HotelID       int64  `json:"hotel_id" gorm:"index;not null"`
	RoomType      string `json:"room_type" gorm:"not null"`
	PricePerNight int64  `json:"price_per_night" gorm:"not null"` // minor currency units

	// BlockedUntil is a hard cutoff: no booking may start on or before this
	// date, independent of explicit bookings.
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
