package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := r.db.WithContext(ctx).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}
