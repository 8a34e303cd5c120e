package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission is one row of the fixed catalog, seeded at startup and never
// deleted at runtime.
type Permission struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Code        string `gorm:"unique;not null"` // e.g. "lead.create", "workspace.manage"
	Description string

	CreatedAt time.Time
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
