package repositories

import (
	"time"

	"servhub_backend/internal/models"

	"gorm.io/gorm"
)

// InvalidatedTokenRepository - журнал отозванных токенов.
// Запись живёт ровно до истечения срока самого токена: дальше токен
// и так невалиден, держать его в журнале незачем.
type InvalidatedTokenRepository interface {
	Record(token string, expiresAt time.Time) error
	IsInvalidated(token string) (bool, error)
	DeleteExpired() (int64, error)
}

type InvalidatedTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewInvalidatedTokenRepository(db *gorm.DB) InvalidatedTokenRepository {
	return &InvalidatedTokenRepositoryImpl{db: db}
}

func (r *InvalidatedTokenRepositoryImpl) Record(token string, expiresAt time.Time) error {
	entry := models.InvalidatedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	// Повторный logout с тем же токеном не ошибка
	err := r.db.Create(&entry).Error
	if err != nil {
		var count int64
		if r.db.Model(&models.InvalidatedToken{}).Where("token = ?", token).Count(&count); count > 0 {
			return nil
		}
		return err
	}
	return nil
}

func (r *InvalidatedTokenRepositoryImpl) IsInvalidated(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.InvalidatedToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InvalidatedTokenRepositoryImpl) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.InvalidatedToken{})
	return result.RowsAffected, result.Error
}
