package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.SupportTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) List(ctx context.Context) ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket
	if err := r.db.WithContext(ctx).Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.SupportTicket) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.SupportTicket{}, id).Error
}
