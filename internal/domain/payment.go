package domain

import "time"

type PaymentMethod string

const (
	MethodCard  PaymentMethod = "card"
	MethodMpesa PaymentMethod = "mpesa"
)

type Payment struct {
	ID        int64 `json:"paymentId" gorm:"primaryKey"`
	BookingID int64 `json:"bookingId" gorm:"index" validate:"required"`
	UserID    int64 `json:"userId" gorm:"index" validate:"required"`
	// Amount is a string numeral, same reasoning as Room.PricePerNight.
	Amount        string        `json:"amount"`
	IsPaid        bool          `json:"isPaid"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`
	PaymentDate   *time.Time    `json:"paymentDate"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
