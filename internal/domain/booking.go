package domain

import "time"

// Booking is a stay over the half-open interval [StartDate, EndDate).
// A checkout date equal to another booking's check-in date does not overlap.
// Bookings are never mutated after creation; payment cancellation deletes them.
type Booking struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	RoomID     int64     `json:"room_id" gorm:"index;not null"`
	UserID     string    `json:"user_id" gorm:"type:varchar(64);not null"`
	StartDate  time.Time `json:"-" gorm:"not null;index"`
	EndDate    time.Time `json:"-" gorm:"not null"`
	Nights     int       `json:"nights" gorm:"not null"`
	TotalPrice int64     `json:"total_price" gorm:"not null"` // nights x nightly rate, minor units
	CreatedAt  time.Time `json:"created_at"`
}

func (Booking) TableName() string { return "bookings" }
