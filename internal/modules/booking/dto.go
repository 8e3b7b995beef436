package booking

type CreateBookingRequest struct {
	RoomID       string `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type UpdateBookingRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	IsConfirmed  *bool  `json:"isConfirmed"`
}
