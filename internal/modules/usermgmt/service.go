package usermgmt

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/pkg/validate"
	"hotelbooking/internal/repository"
)

// Service is the admin-facing user management surface.
type Service struct {
	users *repository.UserRepository
}

func NewService(users *repository.UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]UserView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*UserView, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := viewOf(u)
	return &v, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*UserView, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Firstname != "" {
		u.Firstname = req.Firstname
	}
	if req.Lastname != "" {
		u.Lastname = req.Lastname
	}
	if req.ContactPhone != "" {
		if err := validate.Phone(req.ContactPhone); err != nil {
			return nil, ErrValidation
		}
		u.ContactPhone = req.ContactPhone
	}
	if req.Address != "" {
		u.Address = req.Address
	}
	if req.IsAdmin != nil {
		v, ok := parseBoolString(*req.IsAdmin)
		if !ok {
			return nil, ErrValidation
		}
		u.IsAdmin = v
	}
	if req.IsVerified != nil {
		v, ok := parseBoolString(*req.IsVerified)
		if !ok {
			return nil, ErrValidation
		}
		u.IsVerified = v
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	view := viewOf(u)
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
