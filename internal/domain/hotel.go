package domain

import "time"

type Hotel struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Town               string    `json:"town,omitempty"`
	State              string    `json:"state,omitempty"`
	StarRating         int       `json:"star_rating,omitempty"`
	PropertyType       string    `json:"property_type,omitempty"`
	DistanceFromCenter float64   `json:"distance_from_center,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

func (Hotel) TableName() string { return "hotels" }
