package booking

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/pricing"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomReader
	hotels   HotelReader
}

func NewService(bookings BookingRepository, rooms RoomReader, hotels HotelReader) *Service {
	return &Service{bookings: bookings, rooms: rooms, hotels: hotels}
}

// CreateBooking prices the stay server-side: whatever total the client
// computed for display is recomputed here from the room's hotel
// category before anything is stored.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	roomID, err := strconv.ParseInt(req.RoomID, 10, 64)
	if err != nil {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return nil, err
	}

	total, err := pricing.TotalAmount(req.CheckInDate, req.CheckOutDate, hotel.Category)
	if err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		UserID:       userID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalAmount:  total,
		IsConfirmed:  false,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateBooking lets the booking owner (or an admin) move dates or flip
// the confirmation flag. Date changes reprice the stay.
func (s *Service) UpdateBooking(ctx context.Context, id, actorID int64, isAdmin bool, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && !isAdmin {
		return nil, ErrForbidden
	}

	if req.CheckInDate != "" {
		b.CheckInDate = req.CheckInDate
	}
	if req.CheckOutDate != "" {
		b.CheckOutDate = req.CheckOutDate
	}
	if req.CheckInDate != "" || req.CheckOutDate != "" {
		roomID, err := strconv.ParseInt(b.RoomID, 10, 64)
		if err != nil {
			return nil, ErrValidation
		}
		room, err := s.rooms.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		hotel, err := s.hotels.GetByID(ctx, room.HotelID)
		if err != nil {
			return nil, err
		}
		total, err := pricing.TotalAmount(b.CheckInDate, b.CheckOutDate, hotel.Category)
		if err != nil {
			return nil, ErrValidation
		}
		b.TotalAmount = total
	}
	if req.IsConfirmed != nil {
		b.IsConfirmed = *req.IsConfirmed
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, id, actorID int64, isAdmin bool) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != actorID && !isAdmin {
		return ErrForbidden
	}
	return s.bookings.Delete(ctx, id)
}
