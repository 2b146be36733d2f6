package booking

import "staysync/internal/domain"

type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type BookingResponse struct {
	ID         int64  `json:"id"`
	RoomID     int64  `json:"room_id"`
	UserID     string `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Nights     int    `json:"nights"`
	TotalPrice int64  `json:"total_price"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		UserID:     b.UserID,
		StartDate:  domain.FormatDate(b.StartDate),
		EndDate:    domain.FormatDate(b.EndDate),
		Nights:     b.Nights,
		TotalPrice: b.TotalPrice,
	}
}
