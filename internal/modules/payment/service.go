package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type Service struct {
	payments paymentRepo
	bookings bookingReader
	mpesa    MpesaGateway // nil leaves only the simulated gateway

	// simulateDelay stands in for gateway latency on the simulated
	// path; tests set it to zero.
	simulateDelay time.Duration
	now           func() time.Time
}

func NewService(payments paymentRepo, bookings bookingReader, mpesa MpesaGateway) *Service {
	return &Service{
		payments:      payments,
		bookings:      bookings,
		mpesa:         mpesa,
		simulateDelay: 500 * time.Millisecond,
		now:           time.Now,
	}
}

// CreatePayment charges a booking. The simulated gateway waits a fixed
// delay and always succeeds; the mpesa path only prepares credentials
// (token + STK password) and leaves the payment pending, since no
// callback handling exists.
func (s *Service) CreatePayment(ctx context.Context, userID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	amount := strings.TrimSpace(req.Amount)
	if amount == "" {
		amount = strconv.FormatFloat(booking.TotalAmount, 'f', 2, 64)
	} else if _, err := strconv.ParseFloat(amount, 64); err != nil {
		return nil, ErrValidation
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = domain.MethodCard
	}

	p := &domain.Payment{
		BookingID:     booking.ID,
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: method,
		TransactionID: s.newTransactionID(),
	}

	switch method {
	case domain.MethodMpesa:
		if s.mpesa == nil {
			return nil, ErrMpesaUnavailable
		}
		if _, err := s.mpesa.AccessToken(ctx); err != nil {
			return nil, fmt.Errorf("mpesa token: %w", err)
		}
		if _, err := s.mpesa.Password(s.now()); err != nil {
			return nil, fmt.Errorf("mpesa password: %w", err)
		}
		// Push initiated; stays unpaid until someone reconciles it.
	default:
		select {
		case <-time.After(s.simulateDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		paidAt := s.now()
		p.IsPaid = true
		p.PaymentDate = &paidAt
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return s.payments.ListByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// MarkPaid settles a pending payment, stamping the payment date.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPaid {
		paidAt := s.now()
		p.IsPaid = true
		p.PaymentDate = &paidAt
		if err := s.payments.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Delete removes a payment record; owners may delete their own, admins
// anyone's.
func (s *Service) Delete(ctx context.Context, id, actorID int64, isAdmin bool) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != actorID && !isAdmin {
		return ErrForbidden
	}
	return s.payments.Delete(ctx, id)
}

func (s *Service) newTransactionID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TXN_%d_%s", s.now().UnixMilli(), suffix)
}
