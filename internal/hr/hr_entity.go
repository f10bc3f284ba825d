package hr

import (
	"time"

	"github.com/google/uuid"
)

type HR struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_hr_email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Department   string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (HR) TableName() string {
	return "hrs"
}
