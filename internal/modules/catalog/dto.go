package catalog

import "staysync/internal/domain"

type RoomResponse struct {
	ID            int64  `json:"id"`
	HotelID       int64  `json:"hotel_id"`
	RoomType      string `json:"room_type"`
	PricePerNight int64  `json:"price_per_night"`
	BlockedUntil  string `json:"blocked_until,omitempty"`
}

type HotelResponse struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	Town               string         `json:"town,omitempty"`
	State              string         `json:"state,omitempty"`
	StarRating         int            `json:"star_rating,omitempty"`
	PropertyType       string         `json:"property_type,omitempty"`
	DistanceFromCenter float64        `json:"distance_from_center,omitempty"`
	Rooms              []RoomResponse `json:"rooms,omitempty"`
}

// Dates cross the wire as YYYY-MM-DD, never as timestamps.
func toRoomResponse(r *domain.Room) RoomResponse {
	out := RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
	}
	if r.BlockedUntil != nil {
		out.BlockedUntil = domain.FormatDate(*r.BlockedUntil)
	}
	return out
}

func toRoomResponses(rooms []domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return out
}

func toHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:                 h.ID,
		Name:               h.Name,
		Town:               h.Town,
		State:              h.State,
		StarRating:         h.StarRating,
		PropertyType:       h.PropertyType,
		DistanceFromCenter: h.DistanceFromCenter,
		Rooms:              toRoomResponses(h.Rooms),
	}
}
