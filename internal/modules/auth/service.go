package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validate"
)

type jwtService interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validate.Phone(req.ContactPhone); err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Firstname:        req.Firstname,
		Lastname:         req.Lastname,
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:     string(hash),
		ContactPhone:     req.ContactPhone,
		Address:          req.Address,
		VerificationCode: uuid.NewString(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapCreateError(err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role())
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.ContactPhone != "" {
		if err := validate.Phone(req.ContactPhone); err != nil {
			return nil, err
		}
		user.ContactPhone = req.ContactPhone
	}
	if req.Firstname != "" {
		user.Firstname = req.Firstname
	}
	if req.Lastname != "" {
		user.Lastname = req.Lastname
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeleteAccount(ctx context.Context, userID int64) error {
	return s.users.Delete(ctx, userID)
}

// mapCreateError turns a unique-violation on the email column into
// ErrEmailTaken. Postgres reports it through pgconn; SQLite surfaces a
// "UNIQUE constraint failed" string.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	if strings.Contains(strings.ToLower(err.Error()), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrEmailTaken
	}
	return err
}
