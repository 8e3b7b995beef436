package room

type UpsertRoomRequest struct {
	HotelID       int64  `json:"hotelId" binding:"required"`
	RoomType      string `json:"roomType"`
	PricePerNight string `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
	Amenities     string `json:"amenities"`
	IsAvailable   bool   `json:"isAvailable"`
}
