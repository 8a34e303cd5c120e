package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Code string `gorm:"unique;not null"` // e.g. "admin", "manager", "member"
	Name string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
