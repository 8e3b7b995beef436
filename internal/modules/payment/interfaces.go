package payment

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// MpesaGateway is the slice of the Daraja client the service needs:
// an OAuth token and a timestamped STK password.
type MpesaGateway interface {
	AccessToken(ctx context.Context) (string, error)
	Password(t time.Time) (string, error)
}
