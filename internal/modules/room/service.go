package room

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	rooms  *repository.RoomRepository
	hotels *repository.HotelRepository
}

func NewService(rooms *repository.RoomRepository, hotels *repository.HotelRepository) *Service {
	return &Service{rooms: rooms, hotels: hotels}
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRoomRequest) (*domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if err := validPrice(req.PricePerNight); err != nil {
		return nil, err
	}

	r := &domain.Room{
		HotelID:       req.HotelID,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		IsAvailable:   req.IsAvailable,
	}
	if err := s.rooms.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRoomRequest) (*domain.Room, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validPrice(req.PricePerNight); err != nil {
		return nil, err
	}

	r.RoomType = req.RoomType
	r.PricePerNight = req.PricePerNight
	r.Capacity = req.Capacity
	r.Amenities = req.Amenities
	r.IsAvailable = req.IsAvailable

	if err := s.rooms.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// validPrice accepts the price string only when it parses as a
// non-negative number. The string itself is stored untouched.
func validPrice(price string) error {
	if price == "" {
		return nil
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil || v < 0 {
		return ErrValidation
	}
	return nil
}
