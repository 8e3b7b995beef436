package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type TicketRepository interface {
	Create(ctx context.Context, t *domain.SupportTicket) error
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
	List(ctx context.Context) ([]domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error)
	Update(ctx context.Context, t *domain.SupportTicket) error
	Delete(ctx context.Context, id int64) error
}

// EventSink receives status-change notifications; the websocket hub
// implements it.
type EventSink interface {
	SendToUser(userID int64, event StatusEvent) bool
}

type Service struct {
	tickets TicketRepository
	events  EventSink // nil disables notifications
}

func NewService(tickets TicketRepository, events EventSink) *Service {
	return &Service{tickets: tickets, events: events}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateTicketRequest) (*domain.SupportTicket, error) {
	t := &domain.SupportTicket{
		UserID:      userID,
		Reference:   fmt.Sprintf("TCK-%s", uuid.NewString()[:8]),
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.TicketOpen,
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.tickets.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	t, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update edits ticket fields. Only admins change status; a status
// change outside the closed set is rejected, and a successful one is
// pushed to the ticket owner's websocket if connected.
func (s *Service) Update(ctx context.Context, id, actorID int64, isAdmin bool, req UpdateTicketRequest) (*domain.SupportTicket, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != actorID && !isAdmin {
		return nil, ErrForbidden
	}

	if req.Subject != "" {
		t.Subject = req.Subject
	}
	if req.Description != "" {
		t.Description = req.Description
	}

	statusChanged := false
	if req.Status != "" {
		if !isAdmin {
			return nil, ErrForbidden
		}
		next := domain.TicketStatus(req.Status)
		if !domain.ValidTicketStatus(next) {
			return nil, ErrInvalidStatus
		}
		statusChanged = next != t.Status
		t.Status = next
	}

	if err := s.tickets.Update(ctx, t); err != nil {
		return nil, err
	}

	if statusChanged && s.events != nil {
		s.events.SendToUser(t.UserID, StatusEvent{TicketID: t.ID, Status: string(t.Status)})
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID int64, isAdmin bool) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.UserID != actorID && !isAdmin {
		return ErrForbidden
	}
	return s.tickets.Delete(ctx, id)
}
