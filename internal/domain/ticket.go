package domain

import "time"

type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketClosed     TicketStatus = "Closed"
)

// ValidTicketStatus reports whether s belongs to the closed status set.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

type SupportTicket struct {
	ID          int64        `json:"ticketId" gorm:"primaryKey"`
	UserID      int64        `json:"userId" gorm:"index" validate:"required"`
	Reference   string       `json:"reference,omitempty" gorm:"size:64"`
	Subject     string       `json:"subject" validate:"required"`
	Description string       `json:"description,omitempty" gorm:"type:text"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
