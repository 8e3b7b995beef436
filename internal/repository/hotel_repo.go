package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	if err := r.db.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Hotel{}, id).Error
}
