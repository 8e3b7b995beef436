package payment

type CreatePaymentRequest struct {
	BookingID     int64  `json:"bookingId" binding:"required"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
}
