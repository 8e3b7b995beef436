package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, id).Error
}
