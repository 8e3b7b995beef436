package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.WithContext(ctx).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Payment{}, id).Error
}
