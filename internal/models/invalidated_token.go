package models

import "time"

// InvalidatedToken - запись о явно отозванном токене (logout).
// Хранится до истечения срока действия токена, после чего вычищается воркером.
type InvalidatedToken struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
