package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type mockBookingReader struct {
	booking *domain.Booking
}

func (m *mockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.booking == nil || m.booking.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.booking, nil
}

type mockPaymentRepo struct {
	created *domain.Payment
	stored  map[int64]*domain.Payment
	updates int
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	p.ID = 1
	m.created = p
	return nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	if p, ok := m.stored[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) { return nil, nil }
func (m *mockPaymentRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	return nil, nil
}
func (m *mockPaymentRepo) Update(ctx context.Context, p *domain.Payment) error {
	m.updates++
	return nil
}
func (m *mockPaymentRepo) Delete(ctx context.Context, id int64) error {
	delete(m.stored, id)
	return nil
}

type mockMpesa struct {
	tokenErr error
	calls    int
}

func (m *mockMpesa) AccessToken(ctx context.Context) (string, error) {
	m.calls++
	return "tok", m.tokenErr
}

func (m *mockMpesa) Password(t time.Time) (string, error) { return "pw", nil }

func fixedClock() time.Time {
	return time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo *mockPaymentRepo, bookings *mockBookingReader, mpesa MpesaGateway) *Service {
	svc := NewService(repo, bookings, mpesa)
	svc.simulateDelay = 0
	svc.now = fixedClock
	return svc
}

func TestCreatePayment_SimulatedGatewaySucceeds(t *testing.T) {
	repo := &mockPaymentRepo{}
	bookings := &mockBookingReader{booking: &domain.Booking{ID: 5, TotalAmount: 2250}}
	svc := newTestService(repo, bookings, nil)

	p, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsPaid || p.PaymentDate == nil {
		t.Fatalf("simulated payment should settle immediately: %+v", p)
	}
	if p.Amount != "2250.00" {
		t.Fatalf("amount should default to the booking total, got %q", p.Amount)
	}
	if !strings.HasPrefix(p.TransactionID, "TXN_") {
		t.Fatalf("transaction id %q missing TXN_ prefix", p.TransactionID)
	}
}

func TestCreatePayment_BookingMissing(t *testing.T) {
	svc := newTestService(&mockPaymentRepo{}, &mockBookingReader{}, nil)

	_, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5})
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCreatePayment_BadAmount(t *testing.T) {
	bookings := &mockBookingReader{booking: &domain.Booking{ID: 5}}
	svc := newTestService(&mockPaymentRepo{}, bookings, nil)

	_, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5, Amount: "lots"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreatePayment_MpesaNotConfigured(t *testing.T) {
	bookings := &mockBookingReader{booking: &domain.Booking{ID: 5}}
	svc := newTestService(&mockPaymentRepo{}, bookings, nil)

	_, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5, PaymentMethod: "mpesa"})
	if !errors.Is(err, ErrMpesaUnavailable) {
		t.Fatalf("expected ErrMpesaUnavailable, got %v", err)
	}
}

func TestCreatePayment_MpesaStaysPending(t *testing.T) {
	repo := &mockPaymentRepo{}
	bookings := &mockBookingReader{booking: &domain.Booking{ID: 5, TotalAmount: 100}}
	gw := &mockMpesa{}
	svc := newTestService(repo, bookings, gw)

	p, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5, PaymentMethod: "mpesa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsPaid || p.PaymentDate != nil {
		t.Fatalf("mpesa payment must stay pending: %+v", p)
	}
	if gw.calls != 1 {
		t.Fatalf("expected one token fetch, got %d", gw.calls)
	}
}

func TestCreatePayment_MpesaTokenFailure(t *testing.T) {
	bookings := &mockBookingReader{booking: &domain.Booking{ID: 5}}
	gw := &mockMpesa{tokenErr: errors.New("boom")}
	svc := newTestService(&mockPaymentRepo{}, bookings, gw)

	_, err := svc.CreatePayment(context.Background(), 42, CreatePaymentRequest{BookingID: 5, PaymentMethod: "mpesa"})
	if err == nil || !strings.Contains(err.Error(), "mpesa token") {
		t.Fatalf("expected wrapped token error, got %v", err)
	}
}

func TestDelete_OwnerAndAdminRules(t *testing.T) {
	repo := &mockPaymentRepo{stored: map[int64]*domain.Payment{
		7: {ID: 7, UserID: 42},
	}}
	svc := newTestService(repo, &mockBookingReader{}, nil)

	if err := svc.Delete(context.Background(), 7, 99, false); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete should be forbidden, got %v", err)
	}
	if _, ok := repo.stored[7]; !ok {
		t.Fatalf("forbidden delete must not remove the payment")
	}

	if err := svc.Delete(context.Background(), 7, 42, false); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.stored[7]; ok {
		t.Fatalf("payment should be gone")
	}

	repo.stored[8] = &domain.Payment{ID: 8, UserID: 42}
	if err := svc.Delete(context.Background(), 8, 1, true); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 8, 1, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing payment, got %v", err)
	}
}

func TestMarkPaid_Idempotent(t *testing.T) {
	paidAt := fixedClock()
	repo := &mockPaymentRepo{stored: map[int64]*domain.Payment{
		7: {ID: 7, IsPaid: true, PaymentDate: &paidAt},
	}}
	svc := newTestService(repo, &mockBookingReader{}, nil)

	p, err := svc.MarkPaid(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("already-paid payment must not be rewritten")
	}
	if !p.PaymentDate.Equal(paidAt) {
		t.Fatalf("payment date must be preserved")
	}
}
