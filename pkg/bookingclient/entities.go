package bookingclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// StringBool marshals as the "true"/"false" string literals the user
// management API speaks, while accepting plain booleans too.
type StringBool bool

func (b StringBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

func (b *StringBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return fmt.Errorf("invalid string bool %s", data)
	}
	return nil
}

type Hotel struct {
	HotelID      int64  `json:"hotelId"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Address      string `json:"address,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Category     string `json:"category"`
	Rating       string `json:"rating,omitempty"`
}

type Room struct {
	RoomID        int64  `json:"roomId"`
	HotelID       int64  `json:"hotelId"`
	RoomType      string `json:"roomType"`
	PricePerNight string `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
	Amenities     string `json:"amenities,omitempty"`
	IsAvailable   bool   `json:"isAvailable"`
}

type User struct {
	UserID       int64      `json:"userId"`
	Firstname    string     `json:"firstname"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	ContactPhone string     `json:"contactPhone,omitempty"`
	Address      string     `json:"address,omitempty"`
	IsAdmin      StringBool `json:"isAdmin"`
	IsVerified   StringBool `json:"isVerified"`
}

type Booking struct {
	BookingID    int64   `json:"bookingId"`
	UserID       int64   `json:"userId"`
	RoomID       string  `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	TotalAmount  float64 `json:"totalAmount"`
	IsConfirmed  bool    `json:"isConfirmed"`
}

type Payment struct {
	PaymentID     int64      `json:"paymentId"`
	BookingID     int64      `json:"bookingId"`
	UserID        int64      `json:"userId"`
	Amount        string     `json:"amount"`
	IsPaid        bool       `json:"isPaid"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	PaymentDate   *time.Time `json:"paymentDate"`
}

type SupportTicket struct {
	TicketID    int64  `json:"ticketId"`
	UserID      int64  `json:"userId"`
	Reference   string `json:"reference,omitempty"`
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// Stores bundles one store per entity over the canonical plural paths.
type Stores struct {
	Hotels   *Store[Hotel]
	Rooms    *Store[Room]
	Users    *Store[User]
	Bookings *Store[Booking]
	Payments *Store[Payment]
	Tickets  *Store[SupportTicket]
}

func NewStores(client *Client) *Stores {
	return &Stores{
		Hotels: NewStore(
			NewGateway[Hotel](client, "/hotels", "hotels", "hotel"),
			func(h Hotel) string { return strconv.FormatInt(h.HotelID, 10) },
		),
		Rooms: NewStore(
			NewGateway[Room](client, "/rooms", "rooms", "room"),
			func(r Room) string { return strconv.FormatInt(r.RoomID, 10) },
		),
		Users: NewStore(
			NewGateway[User](client, "/users", "users", "user"),
			func(u User) string { return strconv.FormatInt(u.UserID, 10) },
		),
		Bookings: NewStore(
			NewGateway[Booking](client, "/bookings", "bookings", "booking"),
			func(b Booking) string { return strconv.FormatInt(b.BookingID, 10) },
		),
		Payments: NewStore(
			NewGateway[Payment](client, "/payments", "payments", "payment"),
			func(p Payment) string { return strconv.FormatInt(p.PaymentID, 10) },
		),
		Tickets: NewStore(
			NewGateway[SupportTicket](client, "/support-tickets", "tickets", "ticket"),
			func(t SupportTicket) string { return strconv.FormatInt(t.TicketID, 10) },
		),
	}
}

var _ json.Marshaler = StringBool(false)
var _ json.Unmarshaler = (*StringBool)(nil)
