package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// RoomReader resolves the room a booking points at.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// HotelReader resolves the hotel for pricing.
type HotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
