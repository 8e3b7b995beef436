package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID               int64     `json:"userId" gorm:"primaryKey"`
	Firstname        string    `json:"firstname" validate:"required"`
	Lastname         string    `json:"lastname" validate:"required"`
	Email            string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash     string    `json:"-"`
	ContactPhone     string    `json:"contactPhone,omitempty"`
	Address          string    `json:"address,omitempty"`
	IsAdmin          bool      `json:"isAdmin"`
	IsVerified       bool      `json:"isVerified"`
	VerificationCode string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Role derives the access role from the admin flag. The flag is the
// stored truth; the role only exists inside tokens and middleware.
func (u *User) Role() UserRole {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleClient
}
