package repositories

import (
	"errors"

	"servhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	FindByID(id string) (*models.Booking, error)
	FindByClient(clientID string, limit, offset int) ([]models.Booking, int64, error)
	Create(booking *models.Booking) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Service").Preload("Offering").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByClient(clientID string, limit, offset int) ([]models.Booking, int64, error) {
	var total int64
	if err := r.db.Model(&models.Booking{}).Where("client_id = ?", clientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := r.db.Preload("Service").Preload("Offering").
		Where("client_id = ?", clientID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}
