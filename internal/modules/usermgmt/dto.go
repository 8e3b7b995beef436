package usermgmt

import (
	"hotelbooking/internal/domain"
)

// UserView is the admin wire shape. The dashboard this API grew up with
// sent isAdmin/isVerified as "true"/"false" strings, so the conversion
// from the boolean domain fields happens here and nowhere else.
type UserView struct {
	UserID           int64  `json:"userId"`
	Firstname        string `json:"firstname"`
	Lastname         string `json:"lastname"`
	Email            string `json:"email"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	Address          string `json:"address,omitempty"`
	IsAdmin          string `json:"isAdmin"`
	IsVerified       string `json:"isVerified"`
	VerificationCode string `json:"verificationCode,omitempty"`
}

type UpdateUserRequest struct {
	Firstname    string  `json:"firstname"`
	Lastname     string  `json:"lastname"`
	ContactPhone string  `json:"contactPhone"`
	Address      string  `json:"address"`
	IsAdmin      *string `json:"isAdmin"`
	IsVerified   *string `json:"isVerified"`
}

func viewOf(u *domain.User) UserView {
	return UserView{
		UserID:           u.ID,
		Firstname:        u.Firstname,
		Lastname:         u.Lastname,
		Email:            u.Email,
		ContactPhone:     u.ContactPhone,
		Address:          u.Address,
		IsAdmin:          boolString(u.IsAdmin),
		IsVerified:       boolString(u.IsVerified),
		VerificationCode: u.VerificationCode,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseBoolString(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
