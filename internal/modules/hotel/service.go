package hotel

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	hotels *repository.HotelRepository
}

func NewService(hotels *repository.HotelRepository) *Service {
	return &Service{hotels: hotels}
}

func (s *Service) List(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

// ListTopRated returns hotels ordered by their parsed rating, highest
// first. Unparseable ratings sort as 0.
func (s *Service) ListTopRated(ctx context.Context, limit int) ([]domain.Hotel, error) {
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].RatingValue() > hotels[j].RatingValue()
	})
	if limit > 0 && limit < len(hotels) {
		hotels = hotels[:limit]
	}
	return hotels, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, req UpsertHotelRequest) (*domain.Hotel, error) {
	h := &domain.Hotel{
		Name:         req.Name,
		Location:     req.Location,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
		Category:     normalizeCategory(req.Category),
		Rating:       normalizeRating(req.Rating),
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertHotelRequest) (*domain.Hotel, error) {
	h, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	h.Name = req.Name
	h.Location = req.Location
	h.Address = req.Address
	h.ContactPhone = req.ContactPhone
	h.Category = normalizeCategory(req.Category)
	h.Rating = normalizeRating(req.Rating)

	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.hotels.Delete(ctx, id)
}

func normalizeCategory(c string) domain.HotelCategory {
	switch domain.HotelCategory(c) {
	case domain.CategoryLuxury:
		return domain.CategoryLuxury
	case domain.CategoryPremium:
		return domain.CategoryPremium
	default:
		return domain.CategoryStandard
	}
}

// normalizeRating keeps the stored rating a clean string numeral;
// anything unparseable becomes "0".
func normalizeRating(r string) string {
	if r == "" {
		return "0"
	}
	if _, err := strconv.ParseFloat(r, 64); err != nil {
		return "0"
	}
	return r
}
